package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func pendingSubmission() *Submission {
	return &Submission{
		ID:         "sub-1",
		CampaignID: "camp-1",
		CreatorID:  "creator-1",
		Views:      1000,
		State:      SubmissionStatePending,
	}
}

// TestSubmissionHappyPath walks a submission through the full lifecycle:
// approval, batch reservation, confirmed transfer.
func TestSubmissionHappyPath(t *testing.T) {
	sub := pendingSubmission()

	if err := sub.Approve(5000, dec("50")); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if sub.State != SubmissionStateApproved || !sub.Earned.Equal(dec("50")) {
		t.Fatalf("after approve: state=%s earned=%s", sub.State, sub.Earned)
	}
	if sub.Views != 5000 {
		t.Fatalf("views not updated: %d", sub.Views)
	}
	if sub.ApprovedAt == nil {
		t.Fatal("approval timestamp not set")
	}

	if err := sub.Reserve(); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if err := sub.CompletePayout("tr_1"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if sub.State != SubmissionStatePaid || sub.TransferID != "tr_1" {
		t.Fatalf("after complete: state=%s transfer=%s", sub.State, sub.TransferID)
	}
}

// TestSubmissionReleaseAndRetry checks that a failed transfer returns the
// submission to the eligible set and it can be reserved again.
func TestSubmissionReleaseAndRetry(t *testing.T) {
	sub := pendingSubmission()
	if err := sub.Approve(5000, dec("50")); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if err := sub.Reserve(); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if err := sub.ReleasePayout(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if sub.State != SubmissionStateApproved {
		t.Fatalf("after release: state=%s", sub.State)
	}
	if err := sub.Reserve(); err != nil {
		t.Fatalf("re-reserve: %v", err)
	}
}

// TestSubmissionIllegalTransitions verifies that every transition outside
// the state machine is rejected.
func TestSubmissionIllegalTransitions(t *testing.T) {
	rejected := pendingSubmission()
	if err := rejected.Reject(); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if err := rejected.Approve(100, dec("1")); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("approve after reject: %v", err)
	}
	if err := rejected.Reserve(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("reserve after reject: %v", err)
	}

	pending := pendingSubmission()
	if err := pending.Reserve(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("reserve while pending: %v", err)
	}
	if err := pending.CompletePayout("tr_1"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("complete while pending: %v", err)
	}

	paid := pendingSubmission()
	_ = paid.Approve(100, dec("1"))
	_ = paid.Reserve()
	_ = paid.CompletePayout("tr_1")
	if err := paid.ReleasePayout(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("release after paid: %v", err)
	}
	if err := paid.Reject(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("reject after paid: %v", err)
	}
}

// TestSubmissionApprovalTimestampStable checks that the approval timestamp
// is set once at approval and survives the payout transitions unchanged,
// so period reporting keyed on it cannot drift.
func TestSubmissionApprovalTimestampStable(t *testing.T) {
	sub := pendingSubmission()
	if sub.ApprovedAt != nil {
		t.Fatal("pending submission must have no approval timestamp")
	}
	if err := sub.Approve(5000, dec("50")); err != nil {
		t.Fatalf("approve: %v", err)
	}
	approvedAt := sub.ApprovedAt
	if approvedAt == nil {
		t.Fatal("approval timestamp not set")
	}
	_ = sub.Reserve()
	_ = sub.CompletePayout("tr_1")
	if sub.ApprovedAt != approvedAt {
		t.Fatal("approval timestamp moved during payout")
	}
}

// TestSubmissionViewsMonotonic checks that a stale lower view report at
// approval time does not decrease the stored count.
func TestSubmissionViewsMonotonic(t *testing.T) {
	sub := pendingSubmission()
	sub.Views = 9000
	if err := sub.Approve(5000, dec("50")); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if sub.Views != 9000 {
		t.Fatalf("views decreased to %d", sub.Views)
	}
}

// TestSubmissionCompleteRequiresTransferID checks that a payout cannot be
// confirmed without a transfer reference.
func TestSubmissionCompleteRequiresTransferID(t *testing.T) {
	sub := pendingSubmission()
	_ = sub.Approve(100, dec("1"))
	_ = sub.Reserve()
	if err := sub.CompletePayout(""); err == nil {
		t.Fatal("expected error for empty transfer id")
	}
	if sub.State != SubmissionStatePayoutPending {
		t.Fatalf("state mutated on failed complete: %s", sub.State)
	}
}

// TestSubmissionCommitted checks which states count against the campaign
// budget pool.
func TestSubmissionCommitted(t *testing.T) {
	committed := map[SubmissionState]bool{
		SubmissionStatePending:       false,
		SubmissionStateRejected:      false,
		SubmissionStateApproved:      true,
		SubmissionStatePayoutPending: true,
		SubmissionStatePaid:          true,
	}
	for state, want := range committed {
		sub := &Submission{State: state, Earned: decimal.Zero}
		if got := sub.Committed(); got != want {
			t.Fatalf("Committed() for %s = %v, want %v", state, got, want)
		}
	}
}
