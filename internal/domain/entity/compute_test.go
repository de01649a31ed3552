package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgressPercent(t *testing.T) {
	t.Run("Partial progress", func(t *testing.T) {
		assert.Equal(t, 14, ProgressPercent(55699, 8000))
		assert.Equal(t, 20, ProgressPercent(24990, 5000))
	})

	t.Run("Exact boundary", func(t *testing.T) {
		assert.Equal(t, 100, ProgressPercent(90000, 90000))
	})

	t.Run("Overshoot is capped at 100", func(t *testing.T) {
		assert.Equal(t, 100, ProgressPercent(90000, 150000))
	})

	t.Run("Zero allocation", func(t *testing.T) {
		assert.Equal(t, 0, ProgressPercent(90000, 0))
	})

	t.Run("Non-positive price", func(t *testing.T) {
		assert.Equal(t, 0, ProgressPercent(0, 5000))
	})
}

func TestRemainingAmount(t *testing.T) {
	assert.Equal(t, 47699.0, RemainingAmount(55699, 8000))
	assert.Equal(t, 0.0, RemainingAmount(90000, 90000))
	// Overshoot clamps at zero
	assert.Equal(t, 0.0, RemainingAmount(90000, 150000))
	assert.Equal(t, 55699.0, RemainingAmount(55699, 0))
}

func TestRemainingDays(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Future target rounds up", func(t *testing.T) {
		target := now.Add(36 * time.Hour)
		assert.Equal(t, 2, RemainingDays(target, now))
	})

	t.Run("Whole days", func(t *testing.T) {
		target := now.AddDate(0, 0, 10)
		assert.Equal(t, 10, RemainingDays(target, now))
	})

	t.Run("Past target is negative, not clamped", func(t *testing.T) {
		target := now.Add(-72 * time.Hour)
		assert.Equal(t, -3, RemainingDays(target, now))
	})

	t.Run("Same instant", func(t *testing.T) {
		assert.Equal(t, 0, RemainingDays(now, now))
	})
}

func TestFrequencyPeriods(t *testing.T) {
	assert.Equal(t, 360.0, FrequencyDaily.Periods(12))
	assert.InDelta(t, 51.96, FrequencyWeekly.Periods(12), 0.001)
	assert.Equal(t, 12.0, FrequencyMonthly.Periods(12))
}

func TestParseFrequency(t *testing.T) {
	for _, valid := range []string{"daily", "weekly", "monthly"} {
		f, err := ParseFrequency(valid)
		assert.NoError(t, err)
		assert.Equal(t, Frequency(valid), f)
	}

	_, err := ParseFrequency("yearly")
	assert.Error(t, err)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
