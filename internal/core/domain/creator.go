package domain

import "time"

// Creator is a content creator submitting to campaigns. PayoutAccount is
// the reference to the creator's account at the external payment provider;
// it is nil until the creator connects one, and a creator without it never
// enters the settlement eligible set.
type Creator struct {
	ID            string
	Name          string
	PayoutAccount *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Payable reports whether the creator can receive transfers.
func (c *Creator) Payable() bool {
	return c.PayoutAccount != nil && *c.PayoutAccount != ""
}
