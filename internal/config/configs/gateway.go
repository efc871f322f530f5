package configs

import "time"

// Gateway holds configuration for the external payment gateway client.
type Gateway struct {
	// BaseURL is the root of the provider's HTTP API.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8090"`
	// APIKey authenticates outbound transfer requests.
	APIKey string `env:"API_KEY"`
	// Timeout bounds a single transfer call. An expired call is treated
	// like a declined transfer and the payout batch is released.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
	// Currency is the settlement currency for all transfers.
	Currency string `env:"CURRENCY" envDefault:"USD"`
}
