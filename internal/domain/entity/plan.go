package entity

import (
	"time"
)

// Frequency is the contribution cadence of a savings plan.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// ParseFrequency validates and converts a frequency string.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return Frequency(s), nil
	}
	return "", &ValidationError{Field: "frequency", Reason: "frequency must be daily, weekly or monthly"}
}

// Periods estimates the number of contribution periods in the given number
// of months. Daily and weekly counts are approximations (30 days and 4.33
// weeks per month), a known source of drift against real calendars.
func (f Frequency) Periods(months int) float64 {
	switch f {
	case FrequencyDaily:
		return float64(months) * 30
	case FrequencyWeekly:
		return float64(months) * 4.33
	default:
		return float64(months)
	}
}

// SavingsPlan is a per-product contribution schedule. At most one plan
// exists per product. The amount allocated toward the product is not stored
// here; it is derived from the wallet transactions tied to the product.
type SavingsPlan struct {
	ProductID          string    `json:"product_id"`
	Frequency          Frequency `json:"frequency"`
	ContributionAmount float64   `json:"contribution_amount"`
	TargetDate         time.Time `json:"target_date"`
}

// PlanUpdate carries the mutable fields of a savings plan.
type PlanUpdate struct {
	Frequency          Frequency
	ContributionAmount float64
	TargetDate         time.Time
}

// Validate ensures the update meets all requirements.
func (u PlanUpdate) Validate() error {
	if _, err := ParseFrequency(string(u.Frequency)); err != nil {
		return err
	}
	if u.ContributionAmount <= 0 {
		return &ValidationError{Field: "contribution_amount", Reason: "contribution amount must be a positive value"}
	}
	if u.TargetDate.IsZero() {
		return &ValidationError{Field: "target_date", Reason: "target date must be set"}
	}
	return nil
}
