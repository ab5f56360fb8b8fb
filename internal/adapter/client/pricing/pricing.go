package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/govalues/decimal"
	"github.com/rwooga/paycore/internal/adapter/config"
	"github.com/rwooga/paycore/internal/core/domain"
	"github.com/rwooga/paycore/internal/core/port"
	"go.uber.org/zap"
)

// CatalogClient resolves product prices and discount codes from the catalog
// service. Order totals are frozen at creation, so this is only consulted
// while an order is being built.
type CatalogClient struct {
	host     string
	currency string
	logger   *zap.Logger
}

func NewCatalogClient(cfg *config.Catalog, business *config.Business, logger *zap.Logger) (*CatalogClient, error) {
	return &CatalogClient{
		host:     cfg.HostString,
		currency: business.Currency,
		logger:   logger,
	}, nil
}

type productResponse struct {
	Ref      string  `json:"ref"`
	Price    float64 `json:"price"`
	Discount float64 `json:"discount"`
}

type discountResponse struct {
	Code      string    `json:"code"`
	Type      string    `json:"type"`
	Value     float64   `json:"value"`
	Active    bool      `json:"active"`
	ValidFrom time.Time `json:"valid_from"`
	ValidTo   time.Time `json:"valid_to"`
}

func (c *CatalogClient) get(ctx context.Context, path string, out any) error {
	requestStr := "http://" + c.host + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestStr, http.NoBody)
	if err != nil {
		return fmt.Errorf("error on %s : %w", requestStr, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request error %s : %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrDataNotFound
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("unexpected status from catalog",
			zap.String("path", path), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("bad response %v for request %s", resp.StatusCode, requestStr)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error on response decode: %w", err)
	}
	return nil
}

func (c *CatalogClient) Quote(ctx context.Context, productRef string, quantity int32) (*port.Quote, error) {
	var product productResponse
	if err := c.get(ctx, "/api/products/"+productRef, &product); err != nil {
		return nil, err
	}

	price, err := domain.MoneyFromFloat(product.Price, c.currency)
	if err != nil {
		return nil, err
	}

	// Per-item catalog discounts go straight into the captured price, so the
	// frozen order total already reflects them.
	if product.Discount > 0 {
		lineDiscount, err := domain.MoneyFromFloat(product.Discount, c.currency)
		if err != nil {
			return nil, err
		}
		price, err = price.Sub(lineDiscount)
		if err != nil {
			return nil, err
		}
	}

	return &port.Quote{UnitPrice: price}, nil
}

func (c *CatalogClient) ResolveDiscountCode(ctx context.Context, code string) (*domain.Discount, error) {
	var disc discountResponse
	if err := c.get(ctx, "/api/discounts/"+code, &disc); err != nil {
		return nil, err
	}

	value, err := decimal.NewFromFloat64(disc.Value)
	if err != nil {
		return nil, fmt.Errorf("bad discount value %v: %w", disc.Value, err)
	}

	return &domain.Discount{
		Code:      disc.Code,
		Type:      domain.DiscountType(disc.Type),
		Value:     value,
		Active:    disc.Active,
		ValidFrom: disc.ValidFrom,
		ValidTo:   disc.ValidTo,
	}, nil
}
