package paypack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rwooga/paycore/internal/adapter/config"
	"github.com/rwooga/paycore/internal/core/domain"
	"github.com/rwooga/paycore/internal/core/port"
	"go.uber.org/zap"
)

// Client talks to the Paypack mobile-money API. It implements
// port.PaymentGateway: transport and provider refusals come back inside
// TransferResult, never as Go errors.
type Client struct {
	cfg    *config.Paypack
	http   *http.Client
	tokens *TokenCache
	logger *zap.Logger
}

func NewClient(cfg *config.Paypack, logger *zap.Logger) (*Client, error) {
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout()},
		tokens: NewTokenCache(),
		logger: logger,
	}, nil
}

type authRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type authResponse struct {
	Access    string `json:"access"`
	ExpiresIn int    `json:"expires_in"`
}

type cashinRequest struct {
	Amount float64 `json:"amount"`
	Number string  `json:"number"`
}

type cashinResponse struct {
	Ref    string  `json:"ref"`
	Status string  `json:"status"`
	Amount float64 `json:"amount"`
}

type eventsResponse struct {
	Transactions []struct {
		Data struct {
			Ref    string `json:"ref"`
			Status string `json:"status"`
		} `json:"data"`
	} `json:"transactions"`
}

// normalizePhone converts international Rwandan numbers to the local format
// the cashin endpoint expects: +2507XXXXXXXX and 2507XXXXXXXX become
// 07XXXXXXXX.
func normalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	phone = strings.TrimPrefix(phone, "+250")
	if len(phone) == 12 && strings.HasPrefix(phone, "250") {
		phone = phone[3:]
	}
	if !strings.HasPrefix(phone, "0") {
		phone = "0" + phone
	}
	return phone
}

func (c *Client) authenticate(ctx context.Context) (string, time.Duration, error) {
	body, err := json.Marshal(authRequest{
		ClientID:     c.cfg.ClientID,
		ClientSecret: c.cfg.ClientSecret,
	})
	if err != nil {
		return "", 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/auth/agents/authorize", bytes.NewReader(body))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("paypack authorize request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("paypack authorize: unexpected status %d", resp.StatusCode)
	}

	var auth authResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return "", 0, fmt.Errorf("paypack authorize decode: %w", err)
	}
	if auth.Access == "" {
		return "", 0, fmt.Errorf("paypack authorize: empty access token")
	}

	return auth.Access, time.Duration(auth.ExpiresIn) * time.Second, nil
}

func (c *Client) newAuthorizedRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	token, err := c.tokens.GetValidToken(ctx, c.authenticate)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if c.cfg.Mode != "production" {
		req.Header.Set("X-Webhook-Mode", c.cfg.Mode)
	}
	return req, nil
}

func (c *Client) InitiateTransfer(ctx context.Context, amount domain.Money, destination string) port.TransferResult {
	value, ok := amount.Amount.Float64()
	if !ok {
		return port.TransferResult{Error: "amount out of range"}
	}

	body, err := json.Marshal(cashinRequest{
		Amount: value,
		Number: normalizePhone(destination),
	})
	if err != nil {
		return port.TransferResult{Error: err.Error()}
	}

	req, err := c.newAuthorizedRequest(ctx, http.MethodPost,
		c.cfg.BaseURL+"/transactions/cashin", bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Paypack cashin auth", zap.Error(err))
		return port.TransferResult{Error: err.Error()}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("Paypack cashin request", zap.Error(err))
		return port.TransferResult{Error: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		// Token revoked before its reported expiry; refresh on next call.
		c.tokens.Invalidate()
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("Paypack cashin refused",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", raw))
		return port.TransferResult{
			Error: fmt.Sprintf("provider status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))),
		}
	}

	var cashin cashinResponse
	if err := json.NewDecoder(resp.Body).Decode(&cashin); err != nil {
		return port.TransferResult{Error: fmt.Sprintf("decode response: %v", err)}
	}

	return port.TransferResult{
		OK:             true,
		ProviderRef:    cashin.Ref,
		ProviderStatus: cashin.Status,
	}
}

func (c *Client) QueryStatus(ctx context.Context, providerRef string) (string, error) {
	req, err := c.newAuthorizedRequest(ctx, http.MethodGet,
		c.cfg.BaseURL+"/events/transactions?ref="+providerRef, http.NoBody)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("paypack events request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		c.tokens.Invalidate()
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("paypack events: unexpected status %d", resp.StatusCode)
	}

	var events eventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return "", fmt.Errorf("paypack events decode: %w", err)
	}
	if len(events.Transactions) == 0 {
		// Provider has no event for this reference yet.
		return "", nil
	}

	return events.Transactions[0].Data.Status, nil
}
