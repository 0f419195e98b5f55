package orderControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducanh0310/phu-hung-galaxy/models"
)

func TestBuildOrderItems(t *testing.T) {
	apples := &models.Product{ID: "p-apples", Name: "Apples", Price: 10000}
	bread := &models.Product{ID: "p-bread", Name: "Bread", Price: 25000}

	items, total := BuildOrderItems([]models.CartItem{
		{ProductID: apples.ID, Quantity: 3, Product: apples},
		{ProductID: bread.ID, Quantity: 1, Product: bread},
	})

	require.Len(t, items, 2)
	assert.Equal(t, 55000.0, total)

	assert.Equal(t, apples.ID, items[0].ProductID)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 10000.0, items[0].Price, "unit price captured, not the line total")

	assert.Equal(t, bread.ID, items[1].ProductID)
	assert.Equal(t, 25000.0, items[1].Price)
}

func TestBuildOrderItemsEmptyCart(t *testing.T) {
	items, total := BuildOrderItems(nil)
	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestBuildOrderItemsMissingProduct(t *testing.T) {
	// a cart row whose product preload failed still produces an order item,
	// just with a zero price
	items, total := BuildOrderItems([]models.CartItem{
		{ProductID: "p-gone", Quantity: 2},
	})
	require.Len(t, items, 1)
	assert.Zero(t, items[0].Price)
	assert.Zero(t, total)
}
