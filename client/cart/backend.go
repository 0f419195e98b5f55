package cart

import (
	"context"
	"sort"
	"sync"

	"github.com/ducanh0310/phu-hung-galaxy/client/api"
	"github.com/ducanh0310/phu-hung-galaxy/client/catalog"
)

// Item is a product plus the quantity of it in the cart. Identity is the
// product id; quantities are always positive.
type Item struct {
	catalog.Product
	Quantity int
}

// Subtotal sums price times quantity over the items.
func Subtotal(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// backend is the strategy behind the store: a guest cart mutates a local
// list, an authenticated cart proxies to the server. The store picks one
// when the session state changes, so the mutation methods stay mode-agnostic.
type backend interface {
	Fetch(ctx context.Context) ([]Item, error)
	Add(ctx context.Context, product catalog.Product, quantity int) error
	Update(ctx context.Context, productID string, quantity int) error
	Remove(ctx context.Context, productID string) error
}

// localBackend holds the guest cart. Purely in-memory; operations cannot
// fail and never touch the network.
type localBackend struct {
	mu    sync.Mutex
	items []Item
}

func (b *localBackend) Fetch(ctx context.Context) ([]Item, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	items := make([]Item, len(b.items))
	copy(items, b.items)
	return items, nil
}

func (b *localBackend) Add(ctx context.Context, product catalog.Product, quantity int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.items {
		if b.items[i].ID == product.ID {
			b.items[i].Quantity += quantity
			return nil
		}
	}
	b.items = append(b.items, Item{Product: product, Quantity: quantity})
	return nil
}

func (b *localBackend) Update(ctx context.Context, productID string, quantity int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.items {
		if b.items[i].ID == productID {
			b.items[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

func (b *localBackend) Remove(ctx context.Context, productID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	kept := b.items[:0]
	for _, item := range b.items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	b.items = kept
	return nil
}

func (b *localBackend) clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = nil
}

// remoteBackend proxies every operation to the cart API. It never mutates
// anything locally; the store refetches authoritative state after each write.
type remoteBackend struct {
	api *api.Client
}

// serverCart mirrors the cart API response: item records embed the full
// product next to the quantity.
type serverCart struct {
	ID     string           `json:"id"`
	UserID string           `json:"userId"`
	Items  []serverCartItem `json:"items"`
}

type serverCartItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Product   catalog.Product `json:"product"`
}

func (b *remoteBackend) Fetch(ctx context.Context) ([]Item, error) {
	var cart serverCart
	if err := b.api.Get(ctx, "/cart", &cart); err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(cart.Items))
	for _, record := range cart.Items {
		items = append(items, Item{Product: record.Product, Quantity: record.Quantity})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (b *remoteBackend) Add(ctx context.Context, product catalog.Product, quantity int) error {
	return b.api.Post(ctx, "/cart/items", addItemRequest{ProductID: product.ID, Quantity: quantity}, nil)
}

func (b *remoteBackend) Update(ctx context.Context, productID string, quantity int) error {
	return b.api.Put(ctx, "/cart/items/"+productID, updateItemRequest{Quantity: quantity}, nil)
}

func (b *remoteBackend) Remove(ctx context.Context, productID string) error {
	return b.api.Delete(ctx, "/cart/items/"+productID)
}
