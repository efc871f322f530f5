package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"creatorpay/internal/core/port"
)

// handleEarningsStats returns aggregated earnings for a period. It accepts
// optional `from`, `to` (RFC3339 timestamps) and `campaign_id` query
// parameters. If no period is provided, it defaults to the last 24 hours.
// Invalid parameters result in HTTP 400. Internal errors produce HTTP 500.
func (h *Handler) handleEarningsStats(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     port.StatsReq
		err     error
	)

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "invalid 'from' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.From = time.Now().Add(-24 * time.Hour)
	}

	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "invalid 'to' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.To = time.Now()
	}

	if cid := q.Get("campaign_id"); cid != "" {
		req.CampaignID = &cid
	}

	stats, err := h.svc.EarningsStats(r.Context(), req)
	if err != nil {
		h.logger.Error("stats error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"approved_count": stats.ApprovedCount,
		"paid_count":     stats.PaidCount,
		"total_earned":   stats.TotalEarned.StringFixed(2),
		"total_paid":     stats.TotalPaid.StringFixed(2),
	})
}
