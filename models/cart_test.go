package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCartTotalPriceEmpty(t *testing.T) {
	cart := Cart{}
	assert.True(t, cart.TotalPrice().IsZero())
	assert.Equal(t, 0, cart.TotalItems())
}

func TestCartTotals(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{ProductPrice: decimal.NewFromInt(10), Quantity: 2},
		{ProductPrice: decimal.NewFromInt(5), Quantity: 3},
	}}

	assert.True(t, cart.TotalPrice().Equal(decimal.NewFromInt(35)),
		"got %s", cart.TotalPrice())
	assert.Equal(t, 5, cart.TotalItems())
}
