package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"creatorpay/internal/core/domain"
	"creatorpay/internal/core/port"
	"creatorpay/internal/core/port/mocks"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newUseCase(repo port.PayoutRepository, gw port.TransferGateway, n port.Notifier) *PayoutUseCase {
	return NewPayoutUseCase(repo, gw, n, testLogger(), time.Second, "USD")
}

func payableCreator(id string) *domain.Creator {
	acct := "acct_" + id
	return &domain.Creator{ID: id, Name: id, PayoutAccount: &acct}
}

func approvedSubmission(id, creatorID, earned string) domain.Submission {
	return domain.Submission{
		ID:         id,
		CampaignID: "camp-1",
		CreatorID:  creatorID,
		State:      domain.SubmissionStatePayoutPending,
		Earned:     dec(earned),
	}
}

// TestSettleBatchSuccess settles two approved submissions earning 50 and 30
// with a single transfer of 80 and marks the whole batch paid under the
// same transfer reference.
func TestSettleBatchSuccess(t *testing.T) {
	repo := mocks.NewMockPayoutRepository(t)
	gw := mocks.NewMockTransferGateway(t)
	notifier := mocks.NewMockNotifier(t)

	batch := []domain.Submission{
		approvedSubmission("sub-1", "creator-1", "50"),
		approvedSubmission("sub-2", "creator-1", "30"),
	}

	repo.EXPECT().GetCreator(mock.Anything, "creator-1").Return(payableCreator("creator-1"), nil)
	repo.EXPECT().ReservePayoutBatch(mock.Anything, "creator-1").Return(batch, nil)
	gw.EXPECT().
		CreateTransfer(
			mock.Anything,
			"acct_creator-1",
			mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("80")) }),
			"USD",
		).
		Return("tr_80", nil)
	repo.EXPECT().CompletePayoutBatch(mock.Anything, []string{"sub-1", "sub-2"}, "tr_80").Return(nil)
	notifier.EXPECT().
		Notify(mock.Anything, "creator-1", domain.NotificationPayoutCompleted, mock.Anything).
		Return(nil)

	svc := newUseCase(repo, gw, notifier)
	res, err := svc.SettlePayout(context.Background(), "creator-1")
	if err != nil {
		t.Fatalf("SettlePayout error: %v", err)
	}
	if res.TransferID != "tr_80" {
		t.Fatalf("transfer id = %s, want tr_80", res.TransferID)
	}
	if !res.Amount.Equal(dec("80")) {
		t.Fatalf("amount = %s, want 80", res.Amount)
	}
	if len(res.SubmissionIDs) != 2 {
		t.Fatalf("submission ids = %v", res.SubmissionIDs)
	}
}

// TestSettleTransferFailed releases the whole batch when the gateway call
// fails and surfaces the reserved submission IDs for inspection.
func TestSettleTransferFailed(t *testing.T) {
	repo := mocks.NewMockPayoutRepository(t)
	gw := mocks.NewMockTransferGateway(t)
	notifier := mocks.NewMockNotifier(t)

	batch := []domain.Submission{
		approvedSubmission("sub-1", "creator-1", "50"),
		approvedSubmission("sub-2", "creator-1", "30"),
	}

	repo.EXPECT().GetCreator(mock.Anything, "creator-1").Return(payableCreator("creator-1"), nil)
	repo.EXPECT().ReservePayoutBatch(mock.Anything, "creator-1").Return(batch, nil)
	gw.EXPECT().
		CreateTransfer(mock.Anything, "acct_creator-1", mock.Anything, "USD").
		Return("", context.DeadlineExceeded)
	repo.EXPECT().ReleasePayoutBatch(mock.Anything, []string{"sub-1", "sub-2"}).Return(nil)

	svc := newUseCase(repo, gw, notifier)
	_, err := svc.SettlePayout(context.Background(), "creator-1")

	var transferErr *port.TransferFailedError
	if !errors.As(err, &transferErr) {
		t.Fatalf("expected TransferFailedError, got %v", err)
	}
	if len(transferErr.SubmissionIDs) != 2 {
		t.Fatalf("error carries %v, want both reserved ids", transferErr.SubmissionIDs)
	}
	if !transferErr.Released {
		t.Fatal("reservation was handed back, error must say so")
	}
}

// TestSettleReleaseFailureMarksBatchStuck keeps the error honest when the
// release after a failed transfer fails too: the batch stays reserved and
// the error must not claim it was handed back.
func TestSettleReleaseFailureMarksBatchStuck(t *testing.T) {
	repo := mocks.NewMockPayoutRepository(t)
	gw := mocks.NewMockTransferGateway(t)
	notifier := mocks.NewMockNotifier(t)

	batch := []domain.Submission{approvedSubmission("sub-1", "creator-1", "50")}

	repo.EXPECT().GetCreator(mock.Anything, "creator-1").Return(payableCreator("creator-1"), nil)
	repo.EXPECT().ReservePayoutBatch(mock.Anything, "creator-1").Return(batch, nil)
	gw.EXPECT().
		CreateTransfer(mock.Anything, "acct_creator-1", mock.Anything, "USD").
		Return("", errors.New("gateway down"))
	repo.EXPECT().ReleasePayoutBatch(mock.Anything, []string{"sub-1"}).
		Return(errors.New("database down"))

	svc := newUseCase(repo, gw, notifier)
	_, err := svc.SettlePayout(context.Background(), "creator-1")

	var transferErr *port.TransferFailedError
	if !errors.As(err, &transferErr) {
		t.Fatalf("expected TransferFailedError, got %v", err)
	}
	if transferErr.Released {
		t.Fatal("release failed, error must not report the batch as released")
	}
}

// TestSettleNoEligibleSubmissions returns the non-erroneous empty outcome
// without touching the gateway or any record.
func TestSettleNoEligibleSubmissions(t *testing.T) {
	repo := mocks.NewMockPayoutRepository(t)
	gw := mocks.NewMockTransferGateway(t)
	notifier := mocks.NewMockNotifier(t)

	repo.EXPECT().GetCreator(mock.Anything, "creator-1").Return(payableCreator("creator-1"), nil)
	repo.EXPECT().ReservePayoutBatch(mock.Anything, "creator-1").Return(nil, nil)

	svc := newUseCase(repo, gw, notifier)
	_, err := svc.SettlePayout(context.Background(), "creator-1")
	if !errors.Is(err, port.ErrNoEligibleSubmissions) {
		t.Fatalf("expected ErrNoEligibleSubmissions, got %v", err)
	}
}

// TestSettleWithoutPayoutAccount rejects settlement before reserving
// anything when the creator has no external account connected.
func TestSettleWithoutPayoutAccount(t *testing.T) {
	repo := mocks.NewMockPayoutRepository(t)
	gw := mocks.NewMockTransferGateway(t)
	notifier := mocks.NewMockNotifier(t)

	repo.EXPECT().GetCreator(mock.Anything, "creator-1").
		Return(&domain.Creator{ID: "creator-1", Name: "creator-1"}, nil)

	svc := newUseCase(repo, gw, notifier)
	_, err := svc.SettlePayout(context.Background(), "creator-1")
	if !errors.Is(err, port.ErrNoPayoutAccount) {
		t.Fatalf("expected ErrNoPayoutAccount, got %v", err)
	}
}

// TestSettleNotificationFailureIsNotFatal verifies that a failing
// notification sink does not fail an otherwise completed settlement.
func TestSettleNotificationFailureIsNotFatal(t *testing.T) {
	repo := mocks.NewMockPayoutRepository(t)
	gw := mocks.NewMockTransferGateway(t)
	notifier := mocks.NewMockNotifier(t)

	batch := []domain.Submission{approvedSubmission("sub-1", "creator-1", "50")}

	repo.EXPECT().GetCreator(mock.Anything, "creator-1").Return(payableCreator("creator-1"), nil)
	repo.EXPECT().ReservePayoutBatch(mock.Anything, "creator-1").Return(batch, nil)
	gw.EXPECT().CreateTransfer(mock.Anything, "acct_creator-1", mock.Anything, "USD").Return("tr_50", nil)
	repo.EXPECT().CompletePayoutBatch(mock.Anything, []string{"sub-1"}, "tr_50").Return(nil)
	notifier.EXPECT().
		Notify(mock.Anything, "creator-1", domain.NotificationPayoutCompleted, mock.Anything).
		Return(errors.New("sink down"))

	svc := newUseCase(repo, gw, notifier)
	res, err := svc.SettlePayout(context.Background(), "creator-1")
	if err != nil {
		t.Fatalf("SettlePayout error: %v", err)
	}
	if res.TransferID != "tr_50" {
		t.Fatalf("transfer id = %s", res.TransferID)
	}
}

// TestConcurrentSettlement runs two settlements for the same creator at
// once. The reservation hands the batch to exactly one of them; the other
// observes an empty eligible set, and only one transfer goes out.
func TestConcurrentSettlement(t *testing.T) {
	repo := mocks.NewMockPayoutRepository(t)
	gw := mocks.NewMockTransferGateway(t)
	notifier := mocks.NewMockNotifier(t)

	var (
		mu       sync.Mutex
		eligible = []domain.Submission{
			approvedSubmission("sub-1", "creator-1", "50"),
			approvedSubmission("sub-2", "creator-1", "30"),
		}
	)

	repo.EXPECT().GetCreator(mock.Anything, "creator-1").Return(payableCreator("creator-1"), nil)
	// First caller drains the eligible set, the second reserves nothing.
	repo.EXPECT().ReservePayoutBatch(mock.Anything, "creator-1").
		RunAndReturn(func(ctx context.Context, creatorID string) ([]domain.Submission, error) {
			mu.Lock()
			defer mu.Unlock()
			batch := eligible
			eligible = nil
			return batch, nil
		})
	gw.EXPECT().CreateTransfer(mock.Anything, "acct_creator-1", mock.Anything, "USD").Return("tr_80", nil).Once()
	repo.EXPECT().CompletePayoutBatch(mock.Anything, []string{"sub-1", "sub-2"}, "tr_80").Return(nil).Once()
	notifier.EXPECT().
		Notify(mock.Anything, "creator-1", domain.NotificationPayoutCompleted, mock.Anything).
		Return(nil).Once()

	svc := newUseCase(repo, gw, notifier)

	var wg sync.WaitGroup
	results := make(chan error, 2)
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.SettlePayout(context.Background(), "creator-1")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var settled, empty int
	for err := range results {
		switch {
		case err == nil:
			settled++
		case errors.Is(err, port.ErrNoEligibleSubmissions):
			empty++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if settled != 1 || empty != 1 {
		t.Fatalf("settled=%d empty=%d, want exactly one of each", settled, empty)
	}
}

// TestReviewApprove passes the verdict through to the atomic repository
// commit and returns the locked-in earned amount.
func TestReviewApprove(t *testing.T) {
	repo := mocks.NewMockPayoutRepository(t)

	approved := &domain.Submission{
		ID:         "sub-1",
		CampaignID: "camp-1",
		CreatorID:  "creator-1",
		Views:      5000,
		State:      domain.SubmissionStateApproved,
		Earned:     dec("50"),
	}
	repo.EXPECT().ApproveSubmission(mock.Anything, "sub-1", int64(5000)).Return(approved, nil)

	svc := newUseCase(repo, mocks.NewMockTransferGateway(t), mocks.NewMockNotifier(t))
	res, err := svc.ReviewSubmission(context.Background(), "sub-1", port.ReviewVerdict{Approved: true, Views: 5000})
	if err != nil {
		t.Fatalf("ReviewSubmission error: %v", err)
	}
	if !res.Earned.Equal(dec("50")) {
		t.Fatalf("earned = %s, want 50", res.Earned)
	}
	if res.Submission.State != domain.SubmissionStateApproved {
		t.Fatalf("state = %s", res.Submission.State)
	}
}

// TestReviewReject maps a negative verdict to the terminal rejection.
func TestReviewReject(t *testing.T) {
	repo := mocks.NewMockPayoutRepository(t)

	rejected := &domain.Submission{ID: "sub-1", State: domain.SubmissionStateRejected}
	repo.EXPECT().RejectSubmission(mock.Anything, "sub-1").Return(rejected, nil)

	svc := newUseCase(repo, mocks.NewMockTransferGateway(t), mocks.NewMockNotifier(t))
	res, err := svc.ReviewSubmission(context.Background(), "sub-1", port.ReviewVerdict{Approved: false})
	if err != nil {
		t.Fatalf("ReviewSubmission error: %v", err)
	}
	if res.Submission.State != domain.SubmissionStateRejected {
		t.Fatalf("state = %s", res.Submission.State)
	}
}

// TestReviewInsufficientBudget surfaces budget exhaustion as the
// first-class outcome it is.
func TestReviewInsufficientBudget(t *testing.T) {
	repo := mocks.NewMockPayoutRepository(t)
	repo.EXPECT().ApproveSubmission(mock.Anything, "sub-1", int64(9000)).
		Return(nil, port.ErrInsufficientBudget)

	svc := newUseCase(repo, mocks.NewMockTransferGateway(t), mocks.NewMockNotifier(t))
	_, err := svc.ReviewSubmission(context.Background(), "sub-1", port.ReviewVerdict{Approved: true, Views: 9000})
	if !errors.Is(err, port.ErrInsufficientBudget) {
		t.Fatalf("expected ErrInsufficientBudget, got %v", err)
	}
}
