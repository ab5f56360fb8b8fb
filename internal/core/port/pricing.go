package port

import (
	"context"

	"github.com/rwooga/paycore/internal/core/domain"
)

// Quote is a priced catalog line with any per-item discount already applied.
type Quote struct {
	UnitPrice domain.Money
}

//go:generate mockgen -source=pricing.go -destination=mock/pricing.go -package=mock
type PricingService interface {
	Quote(ctx context.Context, productRef string, quantity int32) (*Quote, error)

	// ResolveDiscountCode returns domain.ErrDataNotFound for unknown codes.
	ResolveDiscountCode(ctx context.Context, code string) (*domain.Discount, error)
}
