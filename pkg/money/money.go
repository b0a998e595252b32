package money

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeResult = errors.New("negative result")
)

// Money is a non-negative decimal amount with exactly two fraction digits.
// All arithmetic rounds half-up to two places.
type Money struct {
	d decimal.Decimal
}

var Zero = Money{}

// Parse builds a Money from a decimal string. Values that are negative,
// non-numeric or carry more than two fraction digits are rejected; callers
// that want truncation must round explicitly before parsing.
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return fromDecimal(d)
}

// MustParse is a test and fixture helper; it panics on malformed input.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

func fromDecimal(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s is negative", ErrInvalidAmount, d)
	}
	rounded := d.Round(2)
	if !rounded.Equal(d) {
		return Money{}, fmt.Errorf("%w: %s has more than 2 fraction digits", ErrInvalidAmount, d)
	}
	return Money{d: d}, nil
}

func (m Money) Add(other Money) Money {
	return Money{d: m.d.Add(other.d).Round(2)}
}

// Sub fails with ErrNegativeResult when other exceeds m.
func (m Money) Sub(other Money) (Money, error) {
	res := m.d.Sub(other.d).Round(2)
	if res.IsNegative() {
		return Money{}, ErrNegativeResult
	}
	return Money{d: res}, nil
}

// SubFloor subtracts and clamps at zero. Used for outstanding balances,
// where an overpayment leaves nothing owed rather than a credit.
func (m Money) SubFloor(other Money) Money {
	res := m.d.Sub(other.d)
	if res.IsNegative() {
		return Money{d: decimal.Zero}
	}
	return Money{d: res.Round(2)}
}

// MulRate multiplies by a decimal rate (e.g. 0.38) rounding half-up.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{d: m.d.Mul(rate).Round(2)}
}

func (m Money) Cmp(other Money) int {
	return m.d.Cmp(other.d)
}

func (m Money) Equal(other Money) bool {
	return m.d.Equal(other.d)
}

func (m Money) IsZero() bool {
	return m.d.IsZero()
}

func (m Money) IsPositive() bool {
	return m.d.IsPositive()
}

func (m Money) String() string {
	return m.d.StringFixed(2)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Scan implements sql.Scanner so NUMERIC columns scan straight into Money.
func (m *Money) Scan(value interface{}) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return err
	}
	parsed, err := fromDecimal(d)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}
