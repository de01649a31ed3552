package cache

import (
	"testing"
	"time"

	"github.com/pricepal/pricepal-server/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestSummaryCachePutGet(t *testing.T) {
	c := NewSummaryCache()

	summary := &entity.ProductSummary{
		ProductID: "prod1",
		Progress:  14,
		Allocated: 8000,
	}

	assert.Nil(t, c.Get("prod1"))

	c.Put(summary)
	got := c.Get("prod1")
	assert.NotNil(t, got)
	assert.Equal(t, 14, got.Progress)
	assert.Equal(t, 1, c.Size())
}

func TestSummaryCacheInvalidate(t *testing.T) {
	c := NewSummaryCache()
	c.Put(&entity.ProductSummary{ProductID: "prod1"})
	c.Put(&entity.ProductSummary{ProductID: "prod2"})

	c.Invalidate("prod1")
	assert.Nil(t, c.Get("prod1"))
	assert.NotNil(t, c.Get("prod2"))

	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestSummaryCacheExpiration(t *testing.T) {
	c := NewSummaryCache()
	c.SetExpiration(10 * time.Millisecond)

	c.Put(&entity.ProductSummary{ProductID: "prod1"})
	assert.NotNil(t, c.Get("prod1"))

	time.Sleep(20 * time.Millisecond)
	assert.Nil(t, c.Get("prod1"))
}
