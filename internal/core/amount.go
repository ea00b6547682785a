package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAmount converts a decimal zloty amount such as "150.50" to grosze. It
// parses digit-wise rather than through a float, so every representable
// amount converts exactly. At most two fraction digits are accepted and
// signs are rejected.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("amount cannot be empty: %w", ErrRequiredField)
	}

	whole, fraction, hasFraction := strings.Cut(amount, ".")

	if err := validate.Var(whole, "number"); err != nil {
		return 0, fmt.Errorf("invalid amount format %q: %w", amount, ErrFormat)
	}

	if hasFraction {
		if len(fraction) > 2 {
			return 0, fmt.Errorf("amount %q has more than two decimal places: %w", amount, ErrFormat)
		}
		if err := validate.Var(fraction, "number"); err != nil {
			return 0, fmt.Errorf("invalid amount format %q: %w", amount, ErrFormat)
		}
	}

	for len(fraction) < 2 {
		fraction += "0"
	}

	grosze, err := strconv.ParseInt(whole+fraction, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount format %q: %w", amount, ErrFormat)
	}

	return grosze, nil
}
