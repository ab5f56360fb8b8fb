package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// Discount is an order-level discount code resolved through the pricing
// collaborator.
type Discount struct {
	Code      string
	Type      DiscountType
	Value     decimal.Decimal
	Active    bool
	ValidFrom time.Time
	ValidTo   time.Time
}

func (d *Discount) IsValid(now time.Time) bool {
	return d.Active && !now.Before(d.ValidFrom) && !now.After(d.ValidTo)
}

// AmountFor computes the discount against an order subtotal.
func (d *Discount) AmountFor(subtotal Money) (Money, error) {
	switch d.Type {
	case DiscountTypePercentage:
		pct, err := subtotal.Amount.Mul(d.Value)
		if err != nil {
			return Money{}, err
		}
		amount, err := pct.Quo(decimal.Hundred)
		if err != nil {
			return Money{}, err
		}
		return Money{Amount: amount, Currency: subtotal.Currency}, nil
	case DiscountTypeFixed:
		return Money{Amount: d.Value, Currency: subtotal.Currency}, nil
	}
	return Money{}, ErrInvalidDiscountCode
}
