package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SubmissionState is the single tagged lifecycle state of a submission.
// Payout progress is folded into the same enum so that combinations like
// "rejected but reserved for payout" cannot be represented at all.
//
//	pending ──► rejected                      (terminal)
//	pending ──► approved                      (earned locked in)
//	approved ──► payout_pending               (reserved by a settlement batch)
//	payout_pending ──► paid                   (transfer confirmed, terminal)
//	payout_pending ──► approved               (reservation released, retryable)
type SubmissionState string

const (
	SubmissionStatePending       SubmissionState = "pending"
	SubmissionStateRejected      SubmissionState = "rejected"
	SubmissionStateApproved      SubmissionState = "approved"
	SubmissionStatePayoutPending SubmissionState = "payout_pending"
	SubmissionStatePaid          SubmissionState = "paid"
)

// ErrInvalidTransition is returned by state machine methods when the
// requested transition is not allowed from the current state.
var ErrInvalidTransition = errors.New("invalid submission state transition")

// Submission is a creator's piece of content submitted against a campaign.
// Earned is set exactly once, when the submission is approved, and is never
// recomputed afterwards even if Views keeps growing. TransferID is set
// exactly once, when the payout transfer is confirmed.
type Submission struct {
	ID         string
	CampaignID string
	CreatorID  string
	VideoURL   string
	Views      int64
	State      SubmissionState
	Earned     decimal.Decimal
	TransferID string
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Approve moves a pending submission to approved, locking in the view count
// and the earned amount. Views only ever grow, so a stale lower report does
// not decrease the stored count.
func (s *Submission) Approve(views int64, earned decimal.Decimal) error {
	if s.State != SubmissionStatePending {
		return fmt.Errorf("%w: approve from %s", ErrInvalidTransition, s.State)
	}
	if earned.Sign() < 0 {
		return fmt.Errorf("negative earned amount %s", earned)
	}
	if views > s.Views {
		s.Views = views
	}
	s.State = SubmissionStateApproved
	s.Earned = earned
	// The approval timestamp anchors period reporting; later payout
	// transitions touch UpdatedAt but never move it.
	now := time.Now().UTC()
	s.ApprovedAt = &now
	return nil
}

// Reject moves a pending submission to the terminal rejected state.
func (s *Submission) Reject() error {
	if s.State != SubmissionStatePending {
		return fmt.Errorf("%w: reject from %s", ErrInvalidTransition, s.State)
	}
	s.State = SubmissionStateRejected
	return nil
}

// Reserve marks an approved submission as part of an in-flight payout batch.
func (s *Submission) Reserve() error {
	if s.State != SubmissionStateApproved {
		return fmt.Errorf("%w: reserve from %s", ErrInvalidTransition, s.State)
	}
	s.State = SubmissionStatePayoutPending
	return nil
}

// CompletePayout confirms the external transfer for a reserved submission
// and stamps the transfer reference.
func (s *Submission) CompletePayout(transferID string) error {
	if s.State != SubmissionStatePayoutPending {
		return fmt.Errorf("%w: complete payout from %s", ErrInvalidTransition, s.State)
	}
	if transferID == "" {
		return errors.New("empty transfer id")
	}
	s.State = SubmissionStatePaid
	s.TransferID = transferID
	return nil
}

// ReleasePayout returns a reserved submission to the eligible set after a
// failed or timed-out transfer, so a later settlement run can retry it.
func (s *Submission) ReleasePayout() error {
	if s.State != SubmissionStatePayoutPending {
		return fmt.Errorf("%w: release payout from %s", ErrInvalidTransition, s.State)
	}
	s.State = SubmissionStateApproved
	return nil
}

// Committed reports whether the submission's earned amount counts against
// its campaign's budget pool.
func (s *Submission) Committed() bool {
	switch s.State {
	case SubmissionStateApproved, SubmissionStatePayoutPending, SubmissionStatePaid:
		return true
	}
	return false
}
