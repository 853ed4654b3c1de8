package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// DisplayPlaces is the number of fractional digits used when an Amount is
// rendered for people. Arithmetic never rounds.
const DisplayPlaces = 2

// Amount is an exact decimal currency quantity.
// It is immutable - all operations return new Amount instances.
type Amount struct {
	value decimal.Decimal
}

// ZeroAmount returns the identity for summation
func ZeroAmount() Amount {
	return Amount{value: decimal.Zero}
}

// NewAmount wraps a decimal value
func NewAmount(d decimal.Decimal) Amount {
	return Amount{value: d}
}

// NewAmountFromInt creates an Amount from a whole number
func NewAmountFromInt(v int64) Amount {
	return Amount{value: decimal.NewFromInt(v)}
}

// NewAmountFromString parses an Amount from its decimal text form, e.g. "150.00"
func NewAmountFromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount string: %w", err)
	}
	return Amount{value: d}, nil
}

// MustAmount parses s and panics on failure. Intended for constants and tests.
func MustAmount(s string) Amount {
	a, err := NewAmountFromString(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Decimal returns the underlying decimal value
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Add returns a + other
func (a Amount) Add(other Amount) Amount {
	return Amount{value: a.value.Add(other.value)}
}

// Sub returns a - other
func (a Amount) Sub(other Amount) Amount {
	return Amount{value: a.value.Sub(other.value)}
}

// Neg returns -a
func (a Amount) Neg() Amount {
	return Amount{value: a.value.Neg()}
}

// Cmp compares a and other: -1 if a < other, 0 if equal, +1 if a > other
func (a Amount) Cmp(other Amount) int {
	return a.value.Cmp(other.value)
}

// Equal reports whether both amounts have the same numeric value
func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

// IsZero returns true if the amount is zero
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// IsPositive returns true if the amount is greater than zero
func (a Amount) IsPositive() bool {
	return a.value.IsPositive()
}

// IsNegative returns true if the amount is less than zero
func (a Amount) IsNegative() bool {
	return a.value.IsNegative()
}

// String renders the amount with DisplayPlaces fractional digits
func (a Amount) String() string {
	return a.value.StringFixed(DisplayPlaces)
}

// Format renders the amount the way the partner pages show it: comma as
// the decimal separator followed by the euro sign, e.g. "1250,50 €".
func (a Amount) Format() string {
	s := a.value.StringFixed(DisplayPlaces)
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			s = s[:i] + "," + s[i+1:]
			break
		}
	}
	return s + " €"
}

// MarshalJSON encodes the amount as an exact JSON number with at least
// DisplayPlaces fractional digits. Finer precision is kept, never rounded.
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.value.Exponent() < -DisplayPlaces {
		return []byte(a.value.String()), nil
	}
	return []byte(a.value.StringFixed(DisplayPlaces)), nil
}

// UnmarshalJSON accepts both JSON numbers and quoted decimal strings
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	a.value = d
	return nil
}

// Value implements driver.Valuer for database storage
func (a Amount) Value() (driver.Value, error) {
	return a.value.String(), nil
}

// Scan implements sql.Scanner for database retrieval
func (a *Amount) Scan(value any) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return fmt.Errorf("cannot scan %T into Amount: %w", value, err)
	}
	a.value = d
	return nil
}

// Sum adds up amounts exactly
func Sum(amounts ...Amount) Amount {
	total := ZeroAmount()
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
