package lohnsteuer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountKind classifies the outcome of NormalizeAmount.
type AmountKind int

const (
	AmountValid AmountKind = iota
	// AmountPlaceholder marks a field the certificate prints as a dash run.
	AmountPlaceholder
	// AmountInvalid means one of the parts is not a number.
	AmountInvalid
)

func (k AmountKind) String() string {
	switch k {
	case AmountValid:
		return "valid"
	case AmountPlaceholder:
		return "placeholder"
	case AmountInvalid:
		return "invalid"
	}
	return fmt.Sprintf("AmountKind(%d)", int(k))
}

var (
	placeholderIntegerRe = regexp.MustCompile(`^-{3,}$`)
	signedDigitsRe       = regexp.MustCompile(`^-?\d+$`)
)

const fractionalPlaceholder = "--"

// NormalizeAmount converts the euro and cent columns of a printed value into a euro
// amount, computed as |euros + cents/100|. The euro column uses "." as thousands
// separator. A euro column made of three or more dashes is a placeholder. An empty or
// "--" cent column counts as zero cents.
func NormalizeAmount(integerPart, fractionalPart string) (decimal.Decimal, AmountKind) {
	integerPart = strings.TrimSpace(integerPart)
	fractionalPart = strings.TrimSpace(fractionalPart)

	if placeholderIntegerRe.MatchString(integerPart) {
		return decimal.Zero, AmountPlaceholder
	}

	integerPart = strings.ReplaceAll(integerPart, ".", "")
	if !signedDigitsRe.MatchString(integerPart) {
		return decimal.Zero, AmountInvalid
	}
	euros, err := decimal.NewFromString(integerPart)
	if err != nil {
		return decimal.Zero, AmountInvalid
	}

	cents := decimal.Zero
	if fractionalPart != "" && fractionalPart != fractionalPlaceholder {
		if !signedDigitsRe.MatchString(fractionalPart) {
			return decimal.Zero, AmountInvalid
		}
		cents, err = decimal.NewFromString(fractionalPart)
		if err != nil {
			return decimal.Zero, AmountInvalid
		}
	}

	return euros.Add(cents.Shift(-2)).Abs(), AmountValid
}
