package domain

import "github.com/shopspring/decimal"

// Earnings converts a view count and a campaign's per-mille rate into the
// amount a submission earns, clamped by the campaign's remaining budget.
//
// The raw amount is views/1000 * rpm computed exactly (a digit shift, no
// intermediate rounding). Rounding to the currency minor unit happens once,
// on the final clamped result, using round-half-even. The result is never
// negative. A zero remaining budget yields zero regardless of views, which
// signals budget exhaustion rather than an error.
func Earnings(views int64, rpm, remaining decimal.Decimal) decimal.Decimal {
	if views <= 0 || rpm.Sign() <= 0 || remaining.Sign() <= 0 {
		return decimal.Zero
	}
	earned := decimal.NewFromInt(views).Mul(rpm).Shift(-3)
	if earned.GreaterThan(remaining) {
		earned = remaining
	}
	return earned.RoundBank(2)
}
