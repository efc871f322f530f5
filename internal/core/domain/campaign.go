package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignStatus is the lifecycle status of a campaign.
type CampaignStatus string

const (
	CampaignStatusDraft  CampaignStatus = "draft"
	CampaignStatusActive CampaignStatus = "active"
	CampaignStatusClosed CampaignStatus = "closed"
)

// Campaign represents a brand-funded campaign with a fixed budget pool and
// a per-mille payout rate. BudgetPool is fixed at creation. Committed is a
// running counter of earnings locked in by approved submissions; it is
// mutated only through the atomic approval commit and never exceeds
// BudgetPool.
type Campaign struct {
	ID         string
	Name       string
	BudgetPool decimal.Decimal
	Committed  decimal.Decimal
	RPM        decimal.Decimal // earnings per 1000 views
	Status     CampaignStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Remaining returns the budget headroom still available for new approvals.
func (c *Campaign) Remaining() decimal.Decimal {
	return c.BudgetPool.Sub(c.Committed)
}
