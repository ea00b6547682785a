package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"qrtransfer/internal/core"
)

type generateFlags struct {
	recipientType string
	vatID         string
	account       string
	name          string
	title         string
	amount        string
	country       string
	refID         string
	invobill      string
	reserved3     string
}

var genFlags generateFlags

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build a single transfer record from flags",
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genFlags.recipientType, "type", "", "recipient type: person or company (default from QRTRANSFER_DEFAULT_RECIPIENT_TYPE)")
	f.StringVar(&genFlags.vatID, "vat-id", "", "recipient VAT id, 10 digits, mandatory for companies")
	f.StringVar(&genFlags.account, "account", "", "recipient bank account, 26 digits, spaces allowed")
	f.StringVar(&genFlags.name, "name", "", "recipient name")
	f.StringVar(&genFlags.title, "title", "", "payment title")
	f.StringVar(&genFlags.amount, "amount", "", "amount in zloty, e.g. 150.50")
	f.StringVar(&genFlags.country, "country", "", "two-letter country code (default from QRTRANSFER_DEFAULT_COUNTRY_CODE)")
	f.StringVar(&genFlags.refID, "ref-id", "", "payment reference id")
	f.StringVar(&genFlags.invobill, "invobill", "", "invobill identifier")
	f.StringVar(&genFlags.reserved3, "reserved3", "", "third reserved field")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	recipientType := genFlags.recipientType
	if recipientType == "" {
		recipientType = cfg.DefaultRecipientType
	}

	country := genFlags.country
	if country == "" {
		country = cfg.DefaultCountryCode
	}

	builder, err := core.NewRecordBuilder(core.RecipientType(strings.ToLower(recipientType)))
	if err != nil {
		return err
	}

	if genFlags.vatID != "" {
		if err := builder.SetVATID(genFlags.vatID); err != nil {
			return err
		}
	}

	if err := builder.SetBankAccount(genFlags.account); err != nil {
		return err
	}

	if err := builder.SetRecipientName(genFlags.name); err != nil {
		return err
	}

	if country != "" {
		if err := builder.SetCountryCode(country); err != nil {
			return err
		}
	}

	if err := builder.SetPaymentTitle(genFlags.title); err != nil {
		return err
	}

	grosze, err := core.ParseAmount(genFlags.amount)
	if err != nil {
		return err
	}

	if err := builder.SetAmount(grosze); err != nil {
		return err
	}

	if err := builder.SetRefID(genFlags.refID); err != nil {
		return err
	}

	if err := builder.SetInvobill(genFlags.invobill); err != nil {
		return err
	}

	if err := builder.SetReserved3(genFlags.reserved3); err != nil {
		return err
	}

	record, err := builder.Build()
	if err != nil {
		return err
	}

	slog.Debug("record built", "length", len(record))

	fmt.Fprintln(cmd.OutOrStdout(), record)
	return nil
}
