package domain

import (
	"bytes"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a money value as exchanged with the API. Decoding is lenient:
// a value that is not a number leaves the amount at zero and sets
// Malformed, so partial backend data never breaks a whole list.
type Amount struct {
	decimal.Decimal
	Malformed bool
}

// NewAmount wraps a decimal
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// AmountFromString parses s, returning a malformed zero amount on failure
func AmountFromString(s string) Amount {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{Decimal: decimal.Zero, Malformed: true}
	}
	return Amount{Decimal: d}
}

// MustAmount parses s and panics on failure. Intended for fixtures.
func MustAmount(s string) Amount {
	return Amount{Decimal: decimal.RequireFromString(s)}
}

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = Amount{Decimal: decimal.Zero, Malformed: true}
		return nil
	}
	*a = AmountFromString(strings.Trim(string(data), `"`))
	return nil
}

// MarshalJSON writes the amount as a bare JSON number
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// IsPositive reports whether the amount is a well-formed value above zero
func (a Amount) IsPositive() bool {
	return !a.Malformed && a.Decimal.GreaterThan(decimal.Zero)
}
