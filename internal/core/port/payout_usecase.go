package port

import (
	"context"

	"github.com/shopspring/decimal"

	"creatorpay/internal/core/domain"
)

// PayoutUseCase defines the business operations exposed by the payout core.
// This interface is the primary port into the application domain. Mock
// implementations can be generated from this interface for testing.
type PayoutUseCase interface {
	// ReviewSubmission applies an external moderation verdict. An approval
	// locks in the earned amount for the reported view count, bounded by
	// the campaign's remaining budget; a rejection is terminal. Both
	// directions are idempotent. Returns ErrInsufficientBudget when the
	// campaign pool is exhausted; the submission then stays pending.
	ReviewSubmission(ctx context.Context, submissionID string, verdict ReviewVerdict) (*ReviewResult, error)

	// SettlePayout batches the creator's approved, unpaid submissions into
	// a single gateway transfer and marks them paid on success. Returns
	// ErrNoEligibleSubmissions when there is nothing to pay and a
	// *TransferFailedError when the gateway call fails; in the latter case
	// the batch has been released and is retryable.
	SettlePayout(ctx context.Context, creatorID string) (*SettlementResult, error)

	// RemainingBudget reports the campaign's unspent budget headroom.
	RemainingBudget(ctx context.Context, campaignID string) (decimal.Decimal, error)

	// EarningsStats returns aggregated earnings for a period.
	EarningsStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// ReviewVerdict is the opaque moderation outcome delivered for a pending
// submission, together with the view count reported at verdict time.
type ReviewVerdict struct {
	Approved bool
	Views    int64
}

// ReviewResult is the submission record after the verdict was applied.
type ReviewResult struct {
	Submission domain.Submission
	Earned     decimal.Decimal
}

// SettlementResult describes one successful settlement: the transfer
// reference, the total amount moved and the submissions it covered.
type SettlementResult struct {
	TransferID    string
	Amount        decimal.Decimal
	SubmissionIDs []string
}
