package cartControllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducanh0310/phu-hung-galaxy/models"
)

func TestUpsertCartItem(t *testing.T) {
	cases := []struct {
		name         string
		existing     *models.CartItem
		quantity     int
		wantQuantity int
		wantCreated  bool
	}{
		{
			name:         "new product starts at the requested amount",
			existing:     nil,
			quantity:     2,
			wantQuantity: 2,
			wantCreated:  true,
		},
		{
			name:         "existing row accumulates",
			existing:     &models.CartItem{ID: "item-1", CartID: "cart-1", ProductID: "p-1", Quantity: 3},
			quantity:     2,
			wantQuantity: 5,
			wantCreated:  false,
		},
		{
			name:         "repeat single add doubles",
			existing:     &models.CartItem{ID: "item-1", CartID: "cart-1", ProductID: "p-1", Quantity: 1},
			quantity:     1,
			wantQuantity: 2,
			wantCreated:  false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item, created := upsertCartItem(tc.existing, "cart-1", "p-1", tc.quantity)

			assert.Equal(t, tc.wantCreated, created)
			assert.Equal(t, tc.wantQuantity, item.Quantity)
			assert.Equal(t, "cart-1", item.CartID)
			assert.Equal(t, "p-1", item.ProductID)
			assert.WithinDuration(t, time.Now(), item.AddedAt, time.Minute)

			if tc.existing != nil {
				assert.Equal(t, tc.existing.ID, item.ID, "the existing row is updated, not replaced")
				require.NotSame(t, tc.existing, &item)
			}
		})
	}
}
