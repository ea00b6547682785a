// Package core builds the fixed-grammar text record that Polish banking apps
// read from a domestic-transfer QR code.
package core

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

type RecipientType string

const (
	RecipientCompany RecipientType = "company"
	RecipientPerson  RecipientType = "person"
)

const (
	maxRecordLength = 160
	maxAmountGrosze = 999999

	maxRecipientNameLength = 20
	maxPaymentTitleLength  = 32
	maxReserved1Length     = 20
	maxReserved2Length     = 12
	maxReserved3Length     = 24
)

var validate = validator.New()

// RecordBuilder accumulates the fields of one transfer record. Setters
// validate and normalize on assignment; Build re-checks every mandatory field
// so that values never set fail there instead. A builder is not safe for
// concurrent use.
type RecordBuilder struct {
	recipientType RecipientType
	vatID         string
	bankAccount   string
	recipientName string
	countryCode   string
	paymentTitle  string
	amountGrosze  int64
	amountSet     bool
	reserved1     string
	reserved2     string
	reserved3     string
}

func NewRecordBuilder(recipientType RecipientType) (*RecordBuilder, error) {
	if recipientType != RecipientCompany && recipientType != RecipientPerson {
		return nil, fmt.Errorf("recipient type %q: %w", recipientType, ErrConfiguration)
	}

	return &RecordBuilder{recipientType: recipientType}, nil
}

// SetVATID accepts a string (hyphens stripped, whitespace trimmed), an int
// (zero-padded to 10 digits) or nil (no VAT id). Company recipients must end
// up with a non-empty id.
func (b *RecordBuilder) SetVATID(value any) error {
	var vatID string
	switch v := value.(type) {
	case nil:
		vatID = ""
	case string:
		vatID = strings.TrimSpace(strings.ReplaceAll(v, "-", ""))
	case int:
		vatID = fmt.Sprintf("%010d", v)
	default:
		return fmt.Errorf("vat id must be a string or an int, got %T: %w", value, ErrType)
	}

	if err := b.validateVATID(vatID); err != nil {
		return err
	}

	b.vatID = vatID
	return nil
}

func (b *RecordBuilder) validateVATID(vatID string) error {
	if vatID == "" {
		if b.recipientType == RecipientCompany {
			return fmt.Errorf("vat id is mandatory for company recipients: %w", ErrRequiredField)
		}
		return nil
	}

	if err := validate.Var(vatID, "number,len=10"); err != nil {
		return fmt.Errorf("vat id %q must be exactly 10 digits: %w", vatID, ErrFormat)
	}

	return nil
}

// SetBankAccount stores the recipient NRB account number. Spaces are stripped
// before the 26-digit check.
func (b *RecordBuilder) SetBankAccount(value string) error {
	account := strings.ReplaceAll(value, " ", "")

	if err := validateBankAccount(account); err != nil {
		return err
	}

	b.bankAccount = account
	return nil
}

func validateBankAccount(account string) error {
	if account == "" {
		return fmt.Errorf("bank account is mandatory: %w", ErrRequiredField)
	}

	if err := validate.Var(account, "number,len=26"); err != nil {
		return fmt.Errorf("bank account %q must be exactly 26 digits: %w", account, ErrFormat)
	}

	return nil
}

func (b *RecordBuilder) SetRecipientName(value string) error {
	name := truncate(value, maxRecipientNameLength)

	if err := validateRecipientName(name); err != nil {
		return err
	}

	b.recipientName = name
	return nil
}

func validateRecipientName(name string) error {
	if name == "" {
		return fmt.Errorf("recipient name is mandatory: %w", ErrRequiredField)
	}

	return nil
}

// SetCountryCode uppercases and stores a two-letter country code. The field
// is optional, so an empty value is accepted.
func (b *RecordBuilder) SetCountryCode(value string) error {
	code := strings.ToUpper(value)

	if code != "" {
		if err := validate.Var(code, "alpha,len=2"); err != nil {
			return fmt.Errorf("country code %q must be exactly 2 letters: %w", code, ErrFormat)
		}
	}

	b.countryCode = code
	return nil
}

func (b *RecordBuilder) SetPaymentTitle(value string) error {
	title := truncate(strings.TrimSpace(value), maxPaymentTitleLength)

	if err := validatePaymentTitle(title); err != nil {
		return err
	}

	b.paymentTitle = title
	return nil
}

func validatePaymentTitle(title string) error {
	if title == "" {
		return fmt.Errorf("payment title is mandatory: %w", ErrRequiredField)
	}

	return nil
}

// SetAmount stores the transfer amount in grosze. Integer input is taken as
// grosze directly; float input is multiplied by 100 and truncated toward
// zero, so binary representation error can lose a grosz (19.99 -> 1998).
// Callers holding textual amounts should go through ParseAmount instead.
func (b *RecordBuilder) SetAmount(value any) error {
	var grosze int64
	switch v := value.(type) {
	case nil:
		return fmt.Errorf("amount is mandatory: %w", ErrRequiredField)
	case int:
		grosze = int64(v)
	case int64:
		grosze = v
	case float64:
		grosze = int64(v * 100)
	case float32:
		grosze = int64(float64(v) * 100)
	default:
		return fmt.Errorf("amount must be an int or a float, got %T: %w", value, ErrType)
	}

	if grosze < 0 {
		return fmt.Errorf("amount %d cannot be negative: %w", grosze, ErrRange)
	}

	if grosze > maxAmountGrosze {
		return fmt.Errorf("amount %d exceeds %d grosze: %w", grosze, maxAmountGrosze, ErrRange)
	}

	b.amountGrosze = grosze
	b.amountSet = true
	return nil
}

func (b *RecordBuilder) SetReserved1(value string) error {
	b.reserved1 = truncate(value, maxReserved1Length)
	return nil
}

func (b *RecordBuilder) SetReserved2(value string) error {
	b.reserved2 = truncate(value, maxReserved2Length)
	return nil
}

func (b *RecordBuilder) SetReserved3(value string) error {
	b.reserved3 = truncate(value, maxReserved3Length)
	return nil
}

// SetRefID is the conventional name of the first reserved field.
func (b *RecordBuilder) SetRefID(value string) error {
	return b.SetReserved1(value)
}

// SetInvobill is the conventional name of the second reserved field.
func (b *RecordBuilder) SetInvobill(value string) error {
	return b.SetReserved2(value)
}

// Build re-validates every mandatory field against its stored value and
// returns the assembled record. It does not mutate the builder, so it can be
// called again, with or without further setter calls in between.
func (b *RecordBuilder) Build() (string, error) {
	if err := validateBankAccount(b.bankAccount); err != nil {
		return "", err
	}

	if err := validateRecipientName(b.recipientName); err != nil {
		return "", err
	}

	if err := b.validateVATID(b.vatID); err != nil {
		return "", err
	}

	if err := validatePaymentTitle(b.paymentTitle); err != nil {
		return "", err
	}

	if !b.amountSet {
		return "", fmt.Errorf("amount is mandatory: %w", ErrRequiredField)
	}

	record := strings.Join([]string{
		b.vatID,
		b.countryCode,
		b.bankAccount,
		fmt.Sprintf("%06d", b.amountGrosze),
		b.recipientName,
		b.paymentTitle,
		b.reserved1,
		b.reserved2,
		b.reserved3,
	}, "|")

	// Unreachable as long as the field widths above sum below the limit.
	if length := utf8.RuneCountInString(record); length > maxRecordLength {
		return "", fmt.Errorf("record is %d characters, limit is %d: %w", length, maxRecordLength, ErrRecordTooLong)
	}

	return record, nil
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}

	return string(runes[:limit])
}
