package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"creatorpay/internal/core/domain"
)

// PayoutRepository defines the persistence layer for the budget ledger and
// submission records. It is an outbound port in hexagonal architecture.
// Implementations must apply the budget commit and the batch reservation
// atomically: approvals of submissions in the same campaign are serialized
// against each other, and a submission reserved by one settlement run must
// not be selectable by a concurrent run.
type PayoutRepository interface {
	// GetCreator returns a creator by id, or ErrCreatorNotFound.
	GetCreator(ctx context.Context, id string) (*domain.Creator, error)

	// ApproveSubmission atomically computes the earned amount for the
	// reported view count against the campaign's remaining budget, commits
	// it to the ledger and moves the submission to approved. Approving an
	// already approved (or further progressed) submission is a no-op that
	// returns the stored record. Returns ErrInsufficientBudget when no
	// positive amount can be committed.
	ApproveSubmission(ctx context.Context, submissionID string, views int64) (*domain.Submission, error)

	// RejectSubmission moves a pending submission to rejected. Rejecting an
	// already rejected submission is a no-op.
	RejectSubmission(ctx context.Context, submissionID string) (*domain.Submission, error)

	// ReservePayoutBatch atomically marks all of the creator's approved,
	// unpaid submissions as payout_pending and returns them. A concurrent
	// reservation for the same creator observes an empty result.
	ReservePayoutBatch(ctx context.Context, creatorID string) ([]domain.Submission, error)

	// CompletePayoutBatch moves a reserved batch to paid, stamping the same
	// transfer reference on every submission. Applies to the whole batch or
	// fails.
	CompletePayoutBatch(ctx context.Context, submissionIDs []string, transferID string) error

	// ReleasePayoutBatch returns a reserved batch to the eligible set.
	ReleasePayoutBatch(ctx context.Context, submissionIDs []string) error

	// RemainingBudget returns budget_pool minus committed for a campaign.
	RemainingBudget(ctx context.Context, campaignID string) (decimal.Decimal, error)

	// EarningsStats returns aggregated earnings for a period.
	EarningsStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// StatsReq selects the aggregation period and an optional single campaign.
type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *string
}

// StatsResp contains aggregated earnings over submissions approved in the
// period. TotalEarned sums earned over all committed states, TotalPaid only
// over submissions whose transfer completed.
type StatsResp struct {
	ApprovedCount int64
	PaidCount     int64
	TotalEarned   decimal.Decimal
	TotalPaid     decimal.Decimal
}
