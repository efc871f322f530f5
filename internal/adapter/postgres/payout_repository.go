package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"creatorpay/internal/core/domain"
	"creatorpay/internal/core/port"
)

// maxCommitRetries bounds the internal retries on serialization conflicts
// before the failure is surfaced as port.ErrConflict.
const maxCommitRetries = 3

// PayoutRepository implements port.PayoutRepository using pgxpool for
// PostgreSQL. Budget commits run in serializable transactions that lock the
// campaign row, so approvals within one campaign are serialized while
// different campaigns proceed in parallel. Batch reservation relies on a
// single conditional UPDATE, which makes concurrent settlements for the
// same creator mutually exclusive without an application-level lock.
type PayoutRepository struct {
	pool *pgxpool.Pool
}

// NewPayoutRepository returns a new repository instance.
func NewPayoutRepository(pool *pgxpool.Pool) *PayoutRepository {
	return &PayoutRepository{pool: pool}
}

// GetCreator returns a creator by id.
func (r *PayoutRepository) GetCreator(ctx context.Context, id string) (*domain.Creator, error) {
	var c domain.Creator
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, payout_account, created_at, updated_at FROM creators WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.PayoutAccount, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCreatorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ApproveSubmission commits the earned amount and the approved state in one
// serializable transaction. The campaign row is locked first, the remaining
// budget is re-read under the lock and the earned amount is computed and
// clamped against it, so no two approvals can consume the same headroom.
func (r *PayoutRepository) ApproveSubmission(ctx context.Context, submissionID string, views int64) (*domain.Submission, error) {
	var sub *domain.Submission
	err := withSerializableRetry(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		sub, err = r.approveInTx(ctx, tx, submissionID, views)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// approvalDecision computes the outcome of an approval against the locked
// submission and campaign rows. It returns the earned amount to commit and
// whether anything has to be written at all: a re-approval of an already
// committed submission is an idempotent no-op with the stored earned.
func approvalDecision(sub *domain.Submission, camp *domain.Campaign, views int64) (decimal.Decimal, bool, error) {
	if sub.Committed() {
		return sub.Earned, false, nil
	}
	if sub.State == domain.SubmissionStateRejected {
		return decimal.Zero, false, port.ErrSubmissionFinalized
	}
	if camp.Status != domain.CampaignStatusActive {
		return decimal.Zero, false, port.ErrCampaignNotActive
	}
	earned := domain.Earnings(views, camp.RPM, camp.Remaining())
	if earned.Sign() <= 0 {
		return decimal.Zero, false, port.ErrInsufficientBudget
	}
	return earned, true, nil
}

func (r *PayoutRepository) approveInTx(ctx context.Context, tx pgx.Tx, submissionID string, views int64) (*domain.Submission, error) {
	sub, err := lockSubmission(ctx, tx, submissionID)
	if err != nil {
		return nil, err
	}
	// Re-approval returns the stored earned without locking the campaign.
	if sub.Committed() {
		return sub, nil
	}

	camp, err := lockCampaign(ctx, tx, sub.CampaignID)
	if err != nil {
		return nil, err
	}

	earned, apply, err := approvalDecision(sub, camp, views)
	if err != nil {
		return nil, err
	}
	if !apply {
		return sub, nil
	}
	if err = sub.Approve(views, earned); err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx,
		`UPDATE campaigns SET committed = committed + $1, updated_at = now() WHERE id = $2`,
		earned, sub.CampaignID)
	if err != nil {
		return nil, err
	}
	_, err = tx.Exec(ctx,
		`UPDATE submissions SET state = $1, views = $2, earned = $3, approved_at = $4, updated_at = now() WHERE id = $5`,
		sub.State, sub.Views, sub.Earned, sub.ApprovedAt, sub.ID)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// RejectSubmission moves a pending submission to the terminal rejected
// state. Repeated rejections are no-ops.
func (r *PayoutRepository) RejectSubmission(ctx context.Context, submissionID string) (*domain.Submission, error) {
	var sub *domain.Submission
	err := withSerializableRetry(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		sub, err = lockSubmission(ctx, tx, submissionID)
		if err != nil {
			return err
		}
		if sub.State == domain.SubmissionStateRejected {
			return nil
		}
		if sub.Committed() {
			return port.ErrSubmissionFinalized
		}
		if err = sub.Reject(); err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`UPDATE submissions SET state = $1, updated_at = now() WHERE id = $2`,
			sub.State, sub.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// ReservePayoutBatch atomically claims every approved submission of the
// creator. The conditional UPDATE is the per-creator mutual exclusion: a
// settlement running concurrently matches zero rows and correctly observes
// an empty eligible set.
func (r *PayoutRepository) ReservePayoutBatch(ctx context.Context, creatorID string) ([]domain.Submission, error) {
	rows, err := r.pool.Query(ctx,
		`UPDATE submissions SET state = $1, updated_at = now()
		 WHERE creator_id = $2 AND state = $3
		 RETURNING id, campaign_id, creator_id, video_url, views, state, earned, transfer_id, approved_at, created_at, updated_at`,
		domain.SubmissionStatePayoutPending, creatorID, domain.SubmissionStateApproved)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanSubmission)
}

// CompletePayoutBatch stamps the transfer reference and the paid state on
// every submission of the batch. A row count mismatch means the batch was
// mutated outside the settlement flow and is surfaced as a conflict.
func (r *PayoutRepository) CompletePayoutBatch(ctx context.Context, submissionIDs []string, transferID string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE submissions SET state = $1, transfer_id = $2, updated_at = now()
		 WHERE id = ANY($3) AND state = $4`,
		domain.SubmissionStatePaid, transferID, submissionIDs, domain.SubmissionStatePayoutPending)
	if err != nil {
		return err
	}
	if int(tag.RowsAffected()) != len(submissionIDs) {
		return fmt.Errorf("%w: completed %d of %d reserved submissions",
			port.ErrConflict, tag.RowsAffected(), len(submissionIDs))
	}
	return nil
}

// ReleasePayoutBatch returns a reserved batch to the eligible set after a
// failed transfer. Releasing an already released batch matches no rows and
// is harmless.
func (r *PayoutRepository) ReleasePayoutBatch(ctx context.Context, submissionIDs []string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE submissions SET state = $1, updated_at = now()
		 WHERE id = ANY($2) AND state = $3`,
		domain.SubmissionStateApproved, submissionIDs, domain.SubmissionStatePayoutPending)
	return err
}

// RemainingBudget returns budget_pool minus the committed counter.
func (r *PayoutRepository) RemainingBudget(ctx context.Context, campaignID string) (decimal.Decimal, error) {
	var remaining decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT budget_pool - committed FROM campaigns WHERE id = $1`, campaignID).
		Scan(&remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, port.ErrCampaignNotFound
	}
	if err != nil {
		return decimal.Zero, err
	}
	return remaining, nil
}

// EarningsStats returns aggregated earnings over the period. Approval
// aggregates are windowed on approved_at, which is stamped once at approval
// and never moves, so a later settlement touching the row cannot push it
// out of the window. Paid aggregates use updated_at: paid is terminal, so
// the last touch of a paid row is the settlement itself.
func (r *PayoutRepository) EarningsStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []interface{}{req.From, req.To}
	whereCampaign := ""
	if req.CampaignID != nil {
		whereCampaign = "WHERE campaign_id = $3"
		args = append(args, *req.CampaignID)
	}
	query := fmt.Sprintf(`
		SELECT
			COALESCE(count(*) FILTER (WHERE approved_at >= $1 AND approved_at <= $2), 0),
			COALESCE(count(*) FILTER (WHERE state = 'paid' AND updated_at >= $1 AND updated_at <= $2), 0),
			COALESCE(sum(earned) FILTER (WHERE approved_at >= $1 AND approved_at <= $2), 0),
			COALESCE(sum(earned) FILTER (WHERE state = 'paid' AND updated_at >= $1 AND updated_at <= $2), 0)
		FROM submissions
		%s`, whereCampaign)

	resp := &port.StatsResp{}
	err := r.pool.QueryRow(ctx, query, args...).
		Scan(&resp.ApprovedCount, &resp.PaidCount, &resp.TotalEarned, &resp.TotalPaid)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// txBeginner is the slice of pgxpool.Pool the transaction helpers need.
type txBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// withSerializableRetry runs fn in a serializable transaction, retrying a
// bounded number of times on serialization failures and deadlocks. Under
// serializable isolation those failures routinely surface at COMMIT, so the
// commit error must feed the retry check like any error from fn.
func withSerializableRetry(ctx context.Context, db txBeginner, fn func(tx pgx.Tx) error) error {
	var err error
	for attempt := 0; attempt < maxCommitRetries; attempt++ {
		err = inTx(ctx, db, fn)
		if !retryable(err) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", port.ErrConflict, err)
}

// inTx names its error result so the deferred commit's error reaches the
// caller instead of being dropped on the floor.
func inTx(ctx context.Context, db txBeginner, fn func(tx pgx.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()
	return fn(tx)
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	// 40001 serialization_failure, 40P01 deadlock_detected
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

func lockCampaign(ctx context.Context, tx pgx.Tx, id string) (*domain.Campaign, error) {
	var camp domain.Campaign
	err := tx.QueryRow(ctx,
		`SELECT id, budget_pool, committed, rpm, status FROM campaigns WHERE id = $1 FOR UPDATE`, id).
		Scan(&camp.ID, &camp.BudgetPool, &camp.Committed, &camp.RPM, &camp.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &camp, nil
}

func lockSubmission(ctx context.Context, tx pgx.Tx, id string) (*domain.Submission, error) {
	row, err := tx.Query(ctx,
		`SELECT id, campaign_id, creator_id, video_url, views, state, earned, transfer_id, approved_at, created_at, updated_at
		 FROM submissions WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		return nil, err
	}
	sub, err := pgx.CollectOneRow(row, scanSubmission)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrSubmissionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func scanSubmission(row pgx.CollectableRow) (domain.Submission, error) {
	var (
		s          domain.Submission
		earned     decimal.NullDecimal
		transferID *string
	)
	err := row.Scan(&s.ID, &s.CampaignID, &s.CreatorID, &s.VideoURL, &s.Views,
		&s.State, &earned, &transferID, &s.ApprovedAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return s, err
	}
	if earned.Valid {
		s.Earned = earned.Decimal
	}
	if transferID != nil {
		s.TransferID = *transferID
	}
	return s, nil
}
