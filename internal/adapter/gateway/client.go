package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"creatorpay/internal/config/configs"
)

// Client is the outbound adapter for the external payment gateway. It
// speaks the provider's JSON transfer API over HTTP with bearer auth. Each
// call carries a fresh Idempotency-Key so a retried settlement attempt is a
// new transfer from the provider's point of view, while a network-level
// retry of the same attempt is not double-charged.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

// NewClient builds a gateway client from configuration. The HTTP client
// timeout is the transfer timeout: an expired call is reported as an error
// and treated by the settlement engine exactly like a declined transfer.
func NewClient(cfg configs.Gateway) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

type transferRequest struct {
	Destination string `json:"destination"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
}

type transferResponse struct {
	ID string `json:"id"`
}

// CreateTransfer requests a single funds transfer and returns the
// provider's transfer reference.
func (c *Client) CreateTransfer(ctx context.Context, account string, amount decimal.Decimal, currency string) (string, error) {
	body, err := json.Marshal(transferRequest{
		Destination: account,
		Amount:      amount.StringFixed(2),
		Currency:    currency,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/transfers", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("gateway request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("gateway returned %d: %s", resp.StatusCode, msg)
	}

	var out transferResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("gateway response: %w", err)
	}
	if out.ID == "" {
		return "", fmt.Errorf("gateway response missing transfer id")
	}
	return out.ID, nil
}
