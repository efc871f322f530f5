package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"creatorpay/internal/core/domain"
	"creatorpay/internal/core/port"
	"creatorpay/internal/metrics"
)

// PayoutUseCase implements the port.PayoutUseCase operations: applying
// moderation verdicts and settling creator payouts. It orchestrates the
// repository (which owns atomicity), the transfer gateway and the
// notification sink.
type PayoutUseCase struct {
	repo     port.PayoutRepository
	gateway  port.TransferGateway
	notifier port.Notifier
	logger   *slog.Logger

	// transferTimeout bounds the single gateway call of a settlement. A
	// timeout releases the reservation like any other gateway failure.
	transferTimeout time.Duration
	currency        string
}

// NewPayoutUseCase creates the usecase with its collaborators.
func NewPayoutUseCase(
	repo port.PayoutRepository,
	gateway port.TransferGateway,
	notifier port.Notifier,
	logger *slog.Logger,
	transferTimeout time.Duration,
	currency string,
) *PayoutUseCase {
	return &PayoutUseCase{
		repo:            repo,
		gateway:         gateway,
		notifier:        notifier,
		logger:          logger,
		transferTimeout: transferTimeout,
		currency:        currency,
	}
}

// ReviewSubmission applies a moderation verdict. Approval and the budget
// commit happen atomically in the repository; this layer only maps the
// verdict direction and records metrics.
func (u *PayoutUseCase) ReviewSubmission(ctx context.Context, submissionID string, verdict port.ReviewVerdict) (*port.ReviewResult, error) {
	if !verdict.Approved {
		sub, err := u.repo.RejectSubmission(ctx, submissionID)
		if err != nil {
			return nil, err
		}
		metrics.SubmissionsReviewed.WithLabelValues("rejected").Inc()
		return &port.ReviewResult{Submission: *sub}, nil
	}

	sub, err := u.repo.ApproveSubmission(ctx, submissionID, verdict.Views)
	if err != nil {
		if errors.Is(err, port.ErrInsufficientBudget) {
			metrics.SubmissionsReviewed.WithLabelValues("budget_exhausted").Inc()
			u.logger.Info("approval blocked by exhausted budget",
				slog.String("submission_id", submissionID))
		}
		return nil, err
	}
	metrics.SubmissionsReviewed.WithLabelValues("approved").Inc()
	metrics.EarnedCommitted.Add(minorUnits(sub.Earned))
	return &port.ReviewResult{Submission: *sub, Earned: sub.Earned}, nil
}

// SettlePayout reserves the creator's eligible submissions, drives one
// gateway transfer for their sum and finalizes the whole batch. The batch
// is never partially settled: success and failure both apply to every
// reserved submission.
func (u *PayoutUseCase) SettlePayout(ctx context.Context, creatorID string) (*port.SettlementResult, error) {
	creator, err := u.repo.GetCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if !creator.Payable() {
		return nil, port.ErrNoPayoutAccount
	}

	batch, err := u.repo.ReservePayoutBatch(ctx, creatorID)
	if err != nil {
		metrics.Settlements.WithLabelValues("error").Inc()
		return nil, err
	}
	if len(batch) == 0 {
		metrics.Settlements.WithLabelValues("no_eligible").Inc()
		return nil, port.ErrNoEligibleSubmissions
	}

	ids := make([]string, 0, len(batch))
	total := decimal.Zero
	for _, sub := range batch {
		ids = append(ids, sub.ID)
		total = total.Add(sub.Earned)
	}
	if total.Sign() == 0 {
		// Nothing to transfer; hand the reservation back untouched.
		if err = u.repo.ReleasePayoutBatch(ctx, ids); err != nil {
			return nil, err
		}
		metrics.Settlements.WithLabelValues("no_eligible").Inc()
		return nil, port.ErrNoEligibleSubmissions
	}

	gwCtx, cancel := context.WithTimeout(ctx, u.transferTimeout)
	transferID, err := u.gateway.CreateTransfer(gwCtx, *creator.PayoutAccount, total, u.currency)
	cancel()
	if err != nil {
		released := true
		if relErr := u.repo.ReleasePayoutBatch(ctx, ids); relErr != nil {
			// The reservation could not be released; the batch stays
			// payout_pending and needs operator attention.
			released = false
			u.logger.Error("failed to release payout reservation",
				slog.String("creator_id", creatorID),
				slog.Any("error", relErr))
		}
		metrics.Settlements.WithLabelValues("transfer_failed").Inc()
		u.logger.Warn("transfer failed",
			slog.String("creator_id", creatorID),
			slog.Int("batch_size", len(ids)),
			slog.Bool("released", released),
			slog.Any("error", err))
		return nil, &port.TransferFailedError{SubmissionIDs: ids, Released: released, Err: err}
	}

	if err = u.repo.CompletePayoutBatch(ctx, ids, transferID); err != nil {
		metrics.Settlements.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.Settlements.WithLabelValues("completed").Inc()
	metrics.AmountSettled.Add(minorUnits(total))
	metrics.BatchSize.Observe(float64(len(ids)))

	if err = u.notifier.Notify(ctx, creatorID, domain.NotificationPayoutCompleted, map[string]any{
		"transfer_id":    transferID,
		"amount":         total.StringFixed(2),
		"currency":       u.currency,
		"submission_ids": ids,
	}); err != nil {
		// Fire-and-forget: the money has moved, delivery can lag.
		u.logger.Error("payout notification failed",
			slog.String("creator_id", creatorID),
			slog.Any("error", err))
	}

	u.logger.Info("payout settled",
		slog.String("creator_id", creatorID),
		slog.String("transfer_id", transferID),
		slog.String("amount", total.StringFixed(2)),
		slog.Int("batch_size", len(ids)))

	return &port.SettlementResult{
		TransferID:    transferID,
		Amount:        total,
		SubmissionIDs: ids,
	}, nil
}

// RemainingBudget reports the campaign's unspent headroom.
func (u *PayoutUseCase) RemainingBudget(ctx context.Context, campaignID string) (decimal.Decimal, error) {
	return u.repo.RemainingBudget(ctx, campaignID)
}

// EarningsStats returns aggregated earnings for a period.
func (u *PayoutUseCase) EarningsStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return u.repo.EarningsStats(ctx, req)
}

func minorUnits(amount decimal.Decimal) float64 {
	return amount.Shift(2).InexactFloat64()
}
