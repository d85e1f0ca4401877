package values

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount represents a recharge amount in MXN. Amounts are exact decimals;
// the carrier rejects zero and negative values, so construction does too.
type Amount struct {
	value decimal.Decimal
}

// NewAmount creates a new Amount value object with validation.
func NewAmount(value decimal.Decimal) (Amount, error) {
	if !value.IsPositive() {
		return Amount{}, fmt.Errorf("amount must be greater than zero: %s", value.String())
	}
	return Amount{value: value}, nil
}

// NewAmountFromString creates an Amount from its decimal string form.
func NewAmountFromString(value string) (Amount, error) {
	dec, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount: %w", err)
	}
	return NewAmount(dec)
}

// MustNewAmount creates an Amount and panics on error (for constants/tests).
func MustNewAmount(value string) Amount {
	a, err := NewAmountFromString(value)
	if err != nil {
		panic(err)
	}
	return a
}

// Decimal returns the exact decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// String returns the decimal string form.
func (a Amount) String() string {
	return a.value.String()
}

// Equal checks if two Amount values are numerically equal.
func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

// MarshalJSON implements JSON marshaling.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.value.MarshalJSON()
}

// UnmarshalJSON implements JSON unmarshaling. Accepts both quoted and bare
// decimal forms.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var dec decimal.Decimal
	if err := json.Unmarshal(data, &dec); err != nil {
		return err
	}
	amount, err := NewAmount(dec)
	if err != nil {
		return err
	}
	*a = amount
	return nil
}
