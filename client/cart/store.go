// Package cart implements the client-side shopping cart: a guest cart held
// locally, an authenticated cart proxied to the server with
// refetch-after-write, and the one-time reconciliation between the two.
package cart

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/ducanh0310/phu-hung-galaxy/client/api"
	"github.com/ducanh0310/phu-hung-galaxy/client/catalog"
	"github.com/ducanh0310/phu-hung-galaxy/client/session"
)

// Snapshot is a consistent read of the store's state.
type Snapshot struct {
	Items     []Item
	IsOpen    bool
	IsLoading bool
	Err       error
}

// Store is the cart state container. It is constructed explicitly and
// injected wherever cart state is read or mutated; there are no globals.
// All mutations are serialized by the internal mutex.
type Store struct {
	mu        sync.Mutex
	log       *zap.Logger
	apiClient *api.Client

	local   *localBackend
	remote  *remoteBackend
	backend backend
	authed  bool

	items     []Item
	isOpen    bool
	isLoading bool
	lastErr   error

	subs []func(Snapshot)
}

// NewStore builds a store in guest mode.
func NewStore(client *api.Client, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	local := &localBackend{}
	return &Store{
		log:       log,
		apiClient: client,
		local:     local,
		remote:    &remoteBackend{api: client},
		backend:   local,
	}
}

// BindSession swaps the backend whenever the session transitions between
// guest and authenticated. Login triggers the guest-cart reconciliation;
// logout resets the store entirely.
func (s *Store) BindSession(m *session.Manager) {
	m.OnChange(func(authenticated bool) {
		if authenticated {
			s.mu.Lock()
			s.backend = s.remote
			s.authed = true
			s.mu.Unlock()
			if err := s.Sync(context.Background()); err != nil {
				s.log.Warn("cart sync after login failed", zap.Error(err))
			}
		} else {
			s.mu.Lock()
			s.backend = s.local
			s.authed = false
			s.mu.Unlock()
			s.local.clear()
			s.ResetCart()
		}
	})
}

// AddToCart adds a product (upsert: repeat adds increment the quantity)
// and opens the cart panel in both modes.
func (s *Store) AddToCart(ctx context.Context, product catalog.Product, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}
	return s.mutate(ctx, true, func(b backend) error {
		return b.Add(ctx, product, quantity)
	})
}

// UpdateQuantity sets an absolute quantity. Zero or negative collapses to
// removal; the server never receives an update with quantity <= 0.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID)
	}
	return s.mutate(ctx, false, func(b backend) error {
		return b.Update(ctx, productID, quantity)
	})
}

func (s *Store) RemoveItem(ctx context.Context, productID string) error {
	return s.mutate(ctx, false, func(b backend) error {
		return b.Remove(ctx, productID)
	})
}

// recordErr stores a failed operation's error for LastError. An auth
// failure is excluded: the transport hook already forced a logout and the
// store was reset, so recording it would resurrect an error in a clean
// guest store.
func (s *Store) recordErr(err error) {
	if errors.Is(err, api.ErrUnauthorized) {
		return
	}
	s.lastErr = err
}

// mutate runs one cart operation against the active backend and, on
// success, replaces local state with a fresh read of authoritative state.
// A failed remote mutation leaves the items exactly as they were.
func (s *Store) mutate(ctx context.Context, openPanel bool, op func(backend) error) error {
	s.mu.Lock()
	b := s.backend
	if s.authed {
		s.isLoading = true
		s.lastErr = nil
	}
	if openPanel {
		s.isOpen = true
	}
	s.mu.Unlock()

	if err := op(b); err != nil {
		s.mu.Lock()
		s.isLoading = false
		s.recordErr(err)
		s.mu.Unlock()
		s.publish()
		return err
	}

	items, err := b.Fetch(ctx)

	s.mu.Lock()
	s.isLoading = false
	if err != nil {
		s.recordErr(err)
	} else {
		s.items = items
		s.lastErr = nil
	}
	s.mu.Unlock()
	s.publish()
	return err
}

// FetchCart pulls the authoritative server cart into local state. Guests
// have no server cart, so it is a no-op that leaves state untouched.
func (s *Store) FetchCart(ctx context.Context) error {
	s.mu.Lock()
	if !s.authed {
		s.mu.Unlock()
		return nil
	}
	b := s.backend
	s.isLoading = true
	s.lastErr = nil
	s.mu.Unlock()

	items, err := b.Fetch(ctx)

	s.mu.Lock()
	s.isLoading = false
	if err != nil {
		s.recordErr(err)
	} else {
		s.items = items
	}
	s.mu.Unlock()
	s.publish()
	return err
}

// ClearCart empties the items. Used after a successful checkout.
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	s.local.clear()
	s.publish()
}

// ResetCart clears items and every transient flag. Used on logout.
func (s *Store) ResetCart() {
	s.mu.Lock()
	s.items = nil
	s.isOpen = false
	s.isLoading = false
	s.lastErr = nil
	s.mu.Unlock()
	s.publish()
}

// ToggleCart flips the panel, or forces it when an argument is given.
func (s *Store) ToggleCart(open ...bool) {
	s.mu.Lock()
	if len(open) > 0 {
		s.isOpen = open[0]
	} else {
		s.isOpen = !s.isOpen
	}
	s.mu.Unlock()
	s.publish()
}

// Items returns a copy of the current item list.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Subtotal(s.items)
}

func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}

func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// LastError reports the most recent failed remote operation. Errors are
// terminal at the store boundary; nothing is retried automatically.
func (s *Store) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Subscribe registers a callback invoked with a snapshot after every state
// change, so the UI can read reactively instead of polling.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return Snapshot{Items: items, IsOpen: s.isOpen, IsLoading: s.isLoading, Err: s.lastErr}
}

func (s *Store) publish() {
	snap := s.snapshot()
	s.mu.Lock()
	subs := make([]func(Snapshot), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}
