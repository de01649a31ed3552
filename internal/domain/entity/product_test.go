package entity

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProductValidate(t *testing.T) {
	product := &Product{
		ID:        "prod1",
		Name:      "Samsung S24",
		Price:     55699,
		DateAdded: time.Now(),
		PriceHistory: []PricePoint{
			{Date: time.Now(), Price: 55699},
		},
	}
	assert.NoError(t, product.Validate())

	t.Run("Blank name", func(t *testing.T) {
		p := *product
		p.Name = ""
		err := p.Validate()
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "name", validationErr.Field)
	})

	t.Run("Non-positive price", func(t *testing.T) {
		for _, price := range []float64{0, -10, math.NaN(), math.Inf(1)} {
			p := *product
			p.Price = price
			assert.Error(t, p.Validate())
		}
	})
}

func TestTransactionValidate(t *testing.T) {
	tx := &Transaction{
		ID:          "trans1",
		Amount:      5000,
		Date:        time.Now(),
		Description: "UPI",
		Kind:        KindDeposit,
		ProductID:   "prod1",
	}
	assert.NoError(t, tx.Validate())

	t.Run("Non-positive amount", func(t *testing.T) {
		bad := *tx
		bad.Amount = -5000
		assert.Error(t, bad.Validate())
	})

	t.Run("Unknown kind", func(t *testing.T) {
		bad := *tx
		bad.Kind = "withdrawal"
		assert.Error(t, bad.Validate())
	})
}

func TestTransactionBalanceEffect(t *testing.T) {
	deposit := &Transaction{Amount: 5000, Kind: KindDeposit}
	assert.Equal(t, 5000.0, deposit.BalanceEffect())

	// Allocation entries are historical records only
	allocation := &Transaction{Amount: 8000, Kind: KindAllocation}
	assert.Equal(t, 0.0, allocation.BalanceEffect())
}

func TestPlanUpdateValidate(t *testing.T) {
	upd := PlanUpdate{
		Frequency:          FrequencyMonthly,
		ContributionAmount: 5000,
		TargetDate:         time.Now().AddDate(0, 6, 0),
	}
	assert.NoError(t, upd.Validate())

	t.Run("Bad frequency", func(t *testing.T) {
		bad := upd
		bad.Frequency = "yearly"
		assert.Error(t, bad.Validate())
	})

	t.Run("Non-positive contribution", func(t *testing.T) {
		bad := upd
		bad.ContributionAmount = 0
		assert.Error(t, bad.Validate())
	})

	t.Run("Zero target date", func(t *testing.T) {
		bad := upd
		bad.TargetDate = time.Time{}
		assert.Error(t, bad.Validate())
	})
}
