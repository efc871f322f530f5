package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"creatorpay/internal/config/configs"
)

func newTestClient(url string, timeout time.Duration) *Client {
	return NewClient(configs.Gateway{
		BaseURL: url,
		APIKey:  "test-key",
		Timeout: timeout,
	})
}

// TestCreateTransferSuccess checks the request shape and that the
// provider's transfer reference is returned.
func TestCreateTransferSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/transfers" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}
		if r.Header.Get("Idempotency-Key") == "" {
			t.Error("missing idempotency key")
		}
		var req struct {
			Destination string `json:"destination"`
			Amount      string `json:"amount"`
			Currency    string `json:"currency"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Destination != "acct_1" || req.Amount != "80.00" || req.Currency != "USD" {
			t.Errorf("unexpected request: %+v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"tr_123"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, time.Second)
	id, err := c.CreateTransfer(context.Background(), "acct_1", decimal.NewFromInt(80), "USD")
	if err != nil {
		t.Fatalf("CreateTransfer error: %v", err)
	}
	if id != "tr_123" {
		t.Fatalf("transfer id = %s, want tr_123", id)
	}
}

// TestCreateTransferDeclined treats any non-2xx response as a failure.
func TestCreateTransferDeclined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "insufficient provider balance", http.StatusPaymentRequired)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, time.Second)
	if _, err := c.CreateTransfer(context.Background(), "acct_1", decimal.NewFromInt(80), "USD"); err == nil {
		t.Fatal("expected error for declined transfer")
	}
}

// TestCreateTransferTimeout verifies the configured timeout bounds the
// call; a timed-out transfer reports an error like any other failure.
func TestCreateTransferTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c := newTestClient(srv.URL, 50*time.Millisecond)
	start := time.Now()
	_, err := c.CreateTransfer(context.Background(), "acct_1", decimal.NewFromInt(80), "USD")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("call was not bounded by the timeout, took %s", elapsed)
	}
}

// TestCreateTransferMissingID rejects a success response without a
// transfer reference, so a submission can never be marked paid without one.
func TestCreateTransferMissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, time.Second)
	if _, err := c.CreateTransfer(context.Background(), "acct_1", decimal.NewFromInt(80), "USD"); err == nil {
		t.Fatal("expected error for missing transfer id")
	}
}
