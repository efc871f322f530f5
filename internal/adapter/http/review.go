package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"creatorpay/internal/core/port"
)

type reviewRequest struct {
	Approved bool  `json:"approved"`
	Views    int64 `json:"views"`
}

type reviewResponse struct {
	SubmissionID string `json:"submission_id"`
	State        string `json:"state"`
	Earned       string `json:"earned,omitempty"`
}

// handleReviewSubmission applies a moderation verdict to a submission. The
// body carries the verdict direction and the view count reported at verdict
// time. Budget exhaustion is a first-class outcome reported as HTTP 409
// with its own error code; the submission then stays pending. Verdicts for
// unknown submissions produce 404, verdicts conflicting with a final state
// produce 409.
func (h *Handler) handleReviewSubmission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Views < 0 {
		http.Error(w, "views must be non-negative", http.StatusBadRequest)
		return
	}

	res, err := h.svc.ReviewSubmission(r.Context(), id, port.ReviewVerdict{
		Approved: req.Approved,
		Views:    req.Views,
	})
	if err != nil {
		switch {
		case errors.Is(err, port.ErrSubmissionNotFound), errors.Is(err, port.ErrCampaignNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, port.ErrInsufficientBudget):
			writeJSON(w, http.StatusConflict, map[string]string{"error": "insufficient_budget"})
		case errors.Is(err, port.ErrSubmissionFinalized), errors.Is(err, port.ErrCampaignNotActive):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			h.logger.Error("review error", slog.String("submission_id", id), slog.Any("error", err))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	resp := reviewResponse{
		SubmissionID: res.Submission.ID,
		State:        string(res.Submission.State),
	}
	if res.Submission.Committed() {
		resp.Earned = res.Submission.Earned.StringFixed(2)
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
