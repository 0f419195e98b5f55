package cart

import (
	"context"
	"errors"
	"time"

	"github.com/ducanh0310/phu-hung-galaxy/client/catalog"
)

// ErrEmptyCart blocks checkout client-side before any request is made.
var ErrEmptyCart = errors.New("cart: cannot place an order from an empty cart")

// ErrNotAuthenticated blocks guest checkout: orders are placed against the
// server cart, which only exists for a signed-in session.
var ErrNotAuthenticated = errors.New("cart: checkout requires a signed-in session")

type OrderItem struct {
	ID       string          `json:"id"`
	Quantity int             `json:"quantity"`
	Price    float64         `json:"price"` // unit price at time of purchase
	Product  catalog.Product `json:"product"`
}

type Order struct {
	ID              string      `json:"id"`
	Total           float64     `json:"total"`
	Status          string      `json:"status"`
	ShippingAddress *string     `json:"shippingAddress"`
	Items           []OrderItem `json:"items"`
	CreatedAt       time.Time   `json:"createdAt"`
}

type createOrderRequest struct {
	ShippingAddress *string `json:"shippingAddress,omitempty"`
}

// PlaceOrder submits the current server cart as an order. The server
// computes the total from its own cart state; the request carries nothing
// but the optional shipping address. The cart is only cleared after the
// server confirms the order; a failed checkout leaves it untouched.
func (s *Store) PlaceOrder(ctx context.Context, shippingAddress string) (*Order, error) {
	s.mu.Lock()
	authed := s.authed
	empty := len(s.items) == 0
	s.mu.Unlock()

	if !authed {
		return nil, ErrNotAuthenticated
	}
	if empty {
		return nil, ErrEmptyCart
	}

	var body createOrderRequest
	if shippingAddress != "" {
		body.ShippingAddress = &shippingAddress
	}

	var order Order
	if err := s.apiClient.Post(ctx, "/orders", body, &order); err != nil {
		s.mu.Lock()
		s.recordErr(err)
		s.mu.Unlock()
		s.publish()
		return nil, err
	}

	s.ClearCart()
	return &order, nil
}

// Orders lists the user's past orders, newest first.
func (s *Store) Orders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := s.apiClient.Get(ctx, "/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Order fetches a single past order by id.
func (s *Store) Order(ctx context.Context, id string) (*Order, error) {
	var order Order
	if err := s.apiClient.Get(ctx, "/orders/"+id, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
