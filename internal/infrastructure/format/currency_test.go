package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestINR(t *testing.T) {
	assert.Equal(t, "₹5,000", INR(5000))
	assert.Equal(t, "₹55,699", INR(55699))
	// Indian grouping kicks in past five digits
	assert.Equal(t, "₹5,56,990", INR(556990))
	assert.Equal(t, "₹0", INR(0))
}
