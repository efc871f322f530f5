package port

import (
	"errors"
	"fmt"
)

var (
	// ErrCampaignNotFound is returned when the referenced campaign does not exist.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrSubmissionNotFound is returned when the referenced submission does not exist.
	ErrSubmissionNotFound = errors.New("submission not found")
	// ErrCreatorNotFound is returned when the referenced creator does not exist.
	ErrCreatorNotFound = errors.New("creator not found")

	// ErrCampaignNotActive is returned when approving against a draft or
	// closed campaign.
	ErrCampaignNotActive = errors.New("campaign is not active")
	// ErrSubmissionFinalized is returned when a moderation verdict arrives
	// for a submission that already left the pending state in the opposite
	// direction (e.g. approving a rejected submission).
	ErrSubmissionFinalized = errors.New("submission already finalized")

	// ErrInsufficientBudget is a first-class outcome: the campaign has no
	// budget headroom left, so the submission cannot be approved with a
	// positive earned amount. The submission stays pending.
	ErrInsufficientBudget = errors.New("insufficient budget")

	// ErrNoEligibleSubmissions is the non-erroneous outcome of a settlement
	// run that found nothing to pay, including the case where a concurrent
	// run already holds the reservation.
	ErrNoEligibleSubmissions = errors.New("no eligible submissions")
	// ErrNoPayoutAccount is returned when the creator has not connected an
	// external payment account.
	ErrNoPayoutAccount = errors.New("creator has no payout account")

	// ErrConflict is returned when conditional updates kept conflicting
	// after the bounded internal retries.
	ErrConflict = errors.New("persistence conflict")
)

// TransferFailedError reports a failed or timed-out gateway transfer. The
// IDs are carried so operators can inspect or manually retry the batch.
// Released tells whether the reservation was handed back to the eligible
// set: when false, releasing failed too and the batch is stuck in
// payout_pending until an operator intervenes.
type TransferFailedError struct {
	SubmissionIDs []string
	Released      bool
	Err           error
}

func (e *TransferFailedError) Error() string {
	if !e.Released {
		return fmt.Sprintf("transfer failed for %d submissions (reservation not released): %v",
			len(e.SubmissionIDs), e.Err)
	}
	return fmt.Sprintf("transfer failed for %d submissions: %v", len(e.SubmissionIDs), e.Err)
}

func (e *TransferFailedError) Unwrap() error { return e.Err }
