package entity

import (
	"math"
	"time"
)

// ProgressPercent returns the share of a product's price covered by the
// allocated amount, rounded and capped at 100. The allocated amount itself
// is never capped; only the displayed percentage is.
func ProgressPercent(price, allocated float64) int {
	if price <= 0 {
		return 0
	}
	return int(math.Round(math.Min(100, allocated/price*100)))
}

// RemainingAmount returns how much is still missing toward the price,
// clamped at zero once the allocation overshoots.
func RemainingAmount(price, allocated float64) float64 {
	return math.Max(0, price-allocated)
}

// RemainingDays returns the number of days until the target date, rounded
// up. The result is negative once the target date has passed; callers
// display it as-is.
func RemainingDays(target, now time.Time) int {
	return int(math.Ceil(target.Sub(now).Hours() / 24))
}
