package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"creatorpay/internal/core/port"
)

type settleResponse struct {
	TransferID    string   `json:"transfer_id"`
	Amount        string   `json:"amount"`
	SubmissionIDs []string `json:"submission_ids"`
}

// handleSettlePayout runs one settlement attempt for a creator. An empty
// eligible set is not an error and maps to HTTP 200 with a zero batch. A
// failed gateway transfer maps to 502 and includes the submission IDs that
// were reserved plus whether the reservation was released, so operators
// can tell a retryable batch from a stuck one.
func (h *Handler) handleSettlePayout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.svc.SettlePayout(r.Context(), id)
	if err != nil {
		var transferErr *port.TransferFailedError
		switch {
		case errors.Is(err, port.ErrNoEligibleSubmissions):
			writeJSON(w, http.StatusOK, settleResponse{Amount: "0.00", SubmissionIDs: []string{}})
		case errors.Is(err, port.ErrCreatorNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, port.ErrNoPayoutAccount):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.As(err, &transferErr):
			writeJSON(w, http.StatusBadGateway, map[string]any{
				"error":          "transfer_failed",
				"submission_ids": transferErr.SubmissionIDs,
				"released":       transferErr.Released,
			})
		default:
			h.logger.Error("settlement error", slog.String("creator_id", id), slog.Any("error", err))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, settleResponse{
		TransferID:    res.TransferID,
		Amount:        res.Amount.StringFixed(2),
		SubmissionIDs: res.SubmissionIDs,
	})
}
