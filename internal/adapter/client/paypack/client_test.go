package paypack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rwooga/paycore/internal/adapter/config"
	"github.com/rwooga/paycore/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger, _ := zap.NewProduction()
	client, err := NewClient(&config.Paypack{
		BaseURL:        server.URL,
		ClientID:       "agent-1",
		ClientSecret:   "secret",
		Mode:           "production",
		TimeoutSeconds: 2,
	}, logger)
	require.NoError(t, err)
	return client
}

func TestClient_InitiateTransfer(t *testing.T) {
	authCalls := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/agents/authorize", func(w http.ResponseWriter, r *http.Request) {
		authCalls++
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "agent-1", body["client_id"])
		assert.Equal(t, "secret", body["client_secret"])
		_ = json.NewEncoder(w).Encode(map[string]any{"access": "tok-1", "expires_in": 900})
	})
	mux.HandleFunc("/transactions/cashin", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "0781234567", body["number"])
		assert.Equal(t, float64(5000), body["amount"])
		_ = json.NewEncoder(w).Encode(map[string]any{"ref": "pp-ref-1", "status": "pending", "amount": 5000})
	})

	client := newTestClient(t, mux)

	result := client.InitiateTransfer(context.Background(),
		domain.MustMoney("5000", "RWF"), "+250781234567")
	require.True(t, result.OK, result.Error)
	assert.Equal(t, "pp-ref-1", result.ProviderRef)
	assert.Equal(t, "pending", result.ProviderStatus)

	// Second transfer reuses the cached token.
	result = client.InitiateTransfer(context.Background(),
		domain.MustMoney("5000", "RWF"), "0781234567")
	require.True(t, result.OK, result.Error)
	assert.Equal(t, 1, authCalls)
}

func TestClient_InitiateTransferRefused(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/agents/authorize", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"access": "tok-1", "expires_in": 900})
	})
	mux.HandleFunc("/transactions/cashin", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"invalid number"}`))
	})

	client := newTestClient(t, mux)

	result := client.InitiateTransfer(context.Background(),
		domain.MustMoney("5000", "RWF"), "123")
	assert.False(t, result.OK)
	assert.Contains(t, result.Error, "invalid number")
}

func TestClient_QueryStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/agents/authorize", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"access": "tok-1", "expires_in": 900})
	})
	mux.HandleFunc("/events/transactions", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("ref") != "pp-ref-1" {
			_ = json.NewEncoder(w).Encode(map[string]any{"transactions": []any{}})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"transactions": []map[string]any{
				{"data": map[string]any{"ref": "pp-ref-1", "status": "successful"}},
			},
		})
	})

	client := newTestClient(t, mux)

	status, err := client.QueryStatus(context.Background(), "pp-ref-1")
	require.NoError(t, err)
	assert.Equal(t, "successful", status)

	// No event yet: empty status, no error.
	status, err = client.QueryStatus(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Empty(t, status)
}

func TestClient_AuthFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/agents/authorize", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	client := newTestClient(t, mux)

	result := client.InitiateTransfer(context.Background(),
		domain.MustMoney("5000", "RWF"), "0781234567")
	assert.False(t, result.OK)
	assert.NotEmpty(t, result.Error)
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"+250781234567", "0781234567"},
		{"250781234567", "0781234567"},
		{"0781234567", "0781234567"},
		{"781234567", "0781234567"},
		{" 0781234567 ", "0781234567"},
	}
	for _, test := range tests {
		assert.Equal(t, test.out, normalizePhone(test.in), test.in)
	}
}

func TestTokenCache_Margin(t *testing.T) {
	cache := NewTokenCache()

	calls := 0
	auth := func(ctx context.Context) (string, time.Duration, error) {
		calls++
		return "tok", 15 * time.Minute, nil
	}

	token, err := cache.GetValidToken(context.Background(), auth)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	_, err = cache.GetValidToken(context.Background(), auth)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	cache.Invalidate()
	_, err = cache.GetValidToken(context.Background(), auth)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
