package domain

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Money is a currency-tagged fixed-point amount. Arithmetic between
// different currencies is refused rather than silently converted.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

func MoneyFromFloat(amount float64, currency string) (Money, error) {
	d, err := decimal.NewFromFloat64(amount)
	if err != nil {
		return Money{}, fmt.Errorf("bad amount %v: %w", amount, err)
	}
	return Money{Amount: d, Currency: currency}, nil
}

func MustMoney(amount string, currency string) Money {
	return Money{Amount: decimal.MustParse(amount), Currency: currency}
}

func ZeroMoney(currency string) Money {
	return Money{Amount: decimal.Zero, Currency: currency}
}

func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, ErrCurrencyMismatch
	}
	sum, err := m.Amount.Add(other.Amount)
	if err != nil {
		return Money{}, fmt.Errorf("math error: %w", err)
	}
	return Money{Amount: sum, Currency: m.Currency}, nil
}

func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, ErrCurrencyMismatch
	}
	diff, err := m.Amount.Sub(other.Amount)
	if err != nil {
		return Money{}, fmt.Errorf("math error: %w", err)
	}
	return Money{Amount: diff, Currency: m.Currency}, nil
}

// MulInt scales the amount by a whole quantity, e.g. a line subtotal.
func (m Money) MulInt(n int32) (Money, error) {
	q, err := decimal.New(int64(n), 0)
	if err != nil {
		return Money{}, fmt.Errorf("math error: %w", err)
	}
	product, err := m.Amount.Mul(q)
	if err != nil {
		return Money{}, fmt.Errorf("math error: %w", err)
	}
	return Money{Amount: product, Currency: m.Currency}, nil
}

func (m Money) Cmp(other Money) (int, error) {
	if m.Currency != other.Currency {
		return 0, ErrCurrencyMismatch
	}
	return m.Amount.Cmp(other.Amount), nil
}

func (m Money) IsPositive() bool {
	return m.Amount.Sign() > 0
}

func (m Money) IsZero() bool {
	return m.Amount.Sign() == 0
}

func (m Money) IsNegative() bool {
	return m.Amount.Sign() < 0
}

func (m Money) String() string {
	return m.Amount.String() + " " + m.Currency
}
