package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"creatorpay/internal/core/port"
)

// handleRemainingBudget reports the unspent headroom of a campaign's budget
// pool. Unknown campaigns produce HTTP 404.
func (h *Handler) handleRemainingBudget(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	remaining, err := h.svc.RemainingBudget(r.Context(), id)
	if err != nil {
		if errors.Is(err, port.ErrCampaignNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.logger.Error("budget error", slog.String("campaign_id", id), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"campaign_id": id,
		"remaining":   remaining.StringFixed(2),
	})
}
