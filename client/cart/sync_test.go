package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncMergesGuestCartIntoServerCart(t *testing.T) {
	f := newFakeCartServer()
	defer f.Close()
	f.items[productApples.ID] = 1 // the account already had one apple

	store, manager := newGuestStore(t, f)
	ctx := context.Background()

	require.NoError(t, store.AddToCart(ctx, productApples, 2))
	require.NoError(t, store.AddToCart(ctx, productBread, 1))

	require.NoError(t, manager.SetToken(makeUserToken(t)))

	assert.Equal(t, 3, f.quantity(productApples.ID), "guest quantity adds to the account's")
	assert.Equal(t, 1, f.quantity(productBread.ID))

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 3, itemQuantity(items, productApples.ID))
	assert.Equal(t, 1, itemQuantity(items, productBread.ID))
	assert.False(t, store.IsLoading())
	assert.NoError(t, store.LastError())
}

func TestSyncEmptyGuestCartOnlyFetches(t *testing.T) {
	f := newFakeCartServer()
	defer f.Close()
	f.items[productBread.ID] = 2

	store, manager := newGuestStore(t, f)
	require.NoError(t, manager.SetToken(makeUserToken(t)))

	assert.Equal(t, []string{"GET /cart"}, f.callList(), "nothing to push, just the fetch")
	assert.Equal(t, 2, itemQuantity(store.Items(), productBread.ID))
}

func TestSyncPushesSequentiallyInCartOrder(t *testing.T) {
	f := newFakeCartServer()
	defer f.Close()

	store, manager := newGuestStore(t, f)
	ctx := context.Background()

	require.NoError(t, store.AddToCart(ctx, productApples, 1))
	require.NoError(t, store.AddToCart(ctx, productBread, 1))
	require.NoError(t, store.AddToCart(ctx, productCoffee, 1))

	require.NoError(t, manager.SetToken(makeUserToken(t)))

	assert.Equal(t, []string{
		"POST /cart/items",
		"POST /cart/items",
		"POST /cart/items",
		"GET /cart",
	}, f.callList())
}

func TestSyncFailureAbortsRemainingPushesButStillFetches(t *testing.T) {
	f := newFakeCartServer()
	defer f.Close()

	store, manager := newGuestStore(t, f)
	ctx := context.Background()

	require.NoError(t, store.AddToCart(ctx, productApples, 1))
	require.NoError(t, store.AddToCart(ctx, productBread, 1))
	require.NoError(t, store.AddToCart(ctx, productCoffee, 1))

	// fail the second push: first lands, second fails, third never sent
	f.mu.Lock()
	f.failOnAddCall = 2
	f.mu.Unlock()

	// SetToken itself succeeds; the push failure surfaces on the store
	require.NoError(t, manager.SetToken(makeUserToken(t)))

	assert.Equal(t, 1, f.quantity(productApples.ID), "first push landed")
	assert.Zero(t, f.quantity(productBread.ID), "failed push did not land")
	assert.Zero(t, f.quantity(productCoffee.ID), "later pushes aborted")

	assert.Contains(t, f.callList(), "GET /cart", "final fetch runs even after a failed push")
	assert.Error(t, store.LastError())
	assert.False(t, store.IsLoading())

	// the store reflects what actually merged
	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, productApples.ID, items[0].ID)
}

func TestLogoutResetsToEmptyGuestCart(t *testing.T) {
	f := newFakeCartServer()
	defer f.Close()
	f.items[productApples.ID] = 3

	store, manager := newGuestStore(t, f)
	require.NoError(t, manager.SetToken(makeUserToken(t)))
	require.NotEmpty(t, store.Items())

	manager.Logout()

	assert.Empty(t, store.Items())
	assert.False(t, store.IsOpen())
	assert.NoError(t, store.LastError())

	// subsequent mutations stay local
	before := f.requestCount()
	require.NoError(t, store.AddToCart(context.Background(), productBread, 1))
	assert.Equal(t, before, f.requestCount())
}
