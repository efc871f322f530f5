package port

import (
	"context"

	"github.com/shopspring/decimal"
)

// TransferGateway is the external payment provider executing the actual
// money movement. It is treated as a fallible remote call: implementations
// must honor context cancellation, and a timeout is indistinguishable from
// a failure for the caller.
type TransferGateway interface {
	// CreateTransfer moves amount in the given currency to the destination
	// account and returns the provider's transfer reference.
	CreateTransfer(ctx context.Context, account string, amount decimal.Decimal, currency string) (string, error)
}

// Notifier is the fire-and-forget notification sink. Delivery failures are
// the caller's to log; they never affect settlement outcomes.
type Notifier interface {
	Notify(ctx context.Context, recipient, kind string, payload any) error
}
