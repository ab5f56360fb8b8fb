package port

import (
	"context"

	"github.com/rwooga/paycore/internal/core/domain"
)

// TransferResult is the outcome of a single initiation round trip. Transport
// faults never surface as Go errors across this boundary: OK is false and the
// raw error text is kept for diagnostics.
type TransferResult struct {
	OK             bool
	ProviderRef    string
	ProviderStatus string
	Error          string
}

//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type PaymentGateway interface {
	// InitiateTransfer performs one bounded cash-in call against the provider.
	InitiateTransfer(ctx context.Context, amount domain.Money, destination string) TransferResult

	// QueryStatus fetches the latest provider status for a reference. An empty
	// status with a nil error means the provider has no record yet, which the
	// caller must treat as still unknown.
	QueryStatus(ctx context.Context, providerRef string) (string, error)
}
