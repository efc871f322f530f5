// Package metrics exposes Prometheus instrumentation for the payout core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SubmissionsReviewed counts moderation verdicts applied, labelled by
// outcome: approved, rejected or budget_exhausted.
var SubmissionsReviewed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "creatorpay_submissions_reviewed_total",
	Help: "Moderation verdicts applied to submissions by outcome.",
}, []string{"outcome"})

// EarnedCommitted accumulates earned amounts committed against campaign
// budgets, in currency minor units.
var EarnedCommitted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "creatorpay_earned_committed_minor_units_total",
	Help: "Total earned amount committed to the budget ledger, in minor units.",
})

// Settlements counts settlement attempts by outcome: completed,
// no_eligible, transfer_failed or error.
var Settlements = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "creatorpay_settlements_total",
	Help: "Settlement attempts by outcome.",
}, []string{"outcome"})

// AmountSettled accumulates successfully transferred amounts, in currency
// minor units.
var AmountSettled = promauto.NewCounter(prometheus.CounterOpts{
	Name: "creatorpay_amount_settled_minor_units_total",
	Help: "Total amount transferred to creators, in minor units.",
})

// BatchSize observes how many submissions each successful settlement
// covered.
var BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "creatorpay_settlement_batch_size",
	Help:    "Number of submissions settled per successful batch.",
	Buckets: prometheus.ExponentialBuckets(1, 2, 8),
})
