// Package cart holds the client-visible cart cache. The server owns the
// cart; every mutation here is an API call followed by an unconditional
// full reload, so totals, stock clamps, and line merging are never
// duplicated client-side.
package cart

import (
	"context"
	"sync"

	"hairpalace.org/store-web/internal/storeapi"
)

// API is the slice of the store client the synchronizer needs.
type API interface {
	GetCart(ctx context.Context, sessionID string) (storeapi.Cart, error)
	AddCartItem(ctx context.Context, sessionID, productID, variantID string, quantity int) error
	UpdateCartItem(ctx context.Context, cartID, variantID string, quantity int) error
	RemoveCartItem(ctx context.Context, cartID, variantID string) error
}

// Snapshot is a copy of the cached cart state safe to hand to views.
type Snapshot struct {
	CartID      string
	Items       []storeapi.CartItem
	TotalAmount int64
	TotalItems  int
}

// Empty reports whether the snapshot holds no line items.
func (s Snapshot) Empty() bool { return len(s.Items) == 0 }

// Item returns the line for a variant, if present.
func (s Snapshot) Item(variantID string) (storeapi.CartItem, bool) {
	for _, it := range s.Items {
		if it.VariantID == variantID {
			return it, true
		}
	}
	return storeapi.CartItem{}, false
}

// Synchronizer owns one session's cart cache. Mutations are serialized per
// cart: overlapping requests take the lock in turn, so the final reload
// always reflects the last mutation issued.
type Synchronizer struct {
	mu        sync.Mutex
	api       API
	sessionID string

	cartID      string
	items       []storeapi.CartItem
	totalAmount int64
	totalItems  int
}

// NewSynchronizer builds a synchronizer scoped to one session identifier.
func NewSynchronizer(api API, sessionID string) *Synchronizer {
	return &Synchronizer{api: api, sessionID: sessionID}
}

// Load fetches the cart and replaces local state wholesale. On failure the
// prior state stays in place and the error is returned; there is never a
// partial merge.
func (s *Synchronizer) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *Synchronizer) loadLocked(ctx context.Context) error {
	cart, err := s.api.GetCart(ctx, s.sessionID)
	if err != nil {
		return err
	}
	s.cartID = cart.ID
	s.items = cart.Items
	s.totalAmount = cart.TotalAmount
	s.totalItems = cart.TotalItems
	return nil
}

// AddItem requests a server-side addition, then resynchronizes. No
// optimistic local update: a failed request leaves cart state untouched.
func (s *Synchronizer) AddItem(ctx context.Context, productID, variantID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.api.AddCartItem(ctx, s.sessionID, productID, variantID, quantity); err != nil {
		return err
	}
	return s.loadLocked(ctx)
}

// UpdateQuantity requests a quantity change for an existing line, then
// resynchronizes. The caller clamps quantity into [1, maxStock] before
// calling; the synchronizer does not re-validate.
func (s *Synchronizer) UpdateQuantity(ctx context.Context, variantID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.api.UpdateCartItem(ctx, s.cartID, variantID, quantity); err != nil {
		return err
	}
	return s.loadLocked(ctx)
}

// RemoveItem requests a server-side removal, then resynchronizes.
func (s *Synchronizer) RemoveItem(ctx context.Context, variantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.api.RemoveCartItem(ctx, s.cartID, variantID); err != nil {
		return err
	}
	return s.loadLocked(ctx)
}

// Reset clears the local cart without a network call. Used after a
// confirmed checkout, when the server has already consumed the cart.
func (s *Synchronizer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartID = ""
	s.items = nil
	s.totalAmount = 0
	s.totalItems = 0
}

// CartID returns the server cart identifier, empty until first Load.
func (s *Synchronizer) CartID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartID
}

// Snapshot copies the current state for rendering.
func (s *Synchronizer) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]storeapi.CartItem, len(s.items))
	copy(items, s.items)
	return Snapshot{
		CartID:      s.cartID,
		Items:       items,
		TotalAmount: s.totalAmount,
		TotalItems:  s.totalItems,
	}
}

// ClampQuantity bounds a requested quantity into [1, maxStock]. Values
// outside this range must never be transmitted to the API.
func ClampQuantity(quantity, maxStock int) int {
	if quantity < 1 {
		quantity = 1
	}
	if maxStock >= 1 && quantity > maxStock {
		quantity = maxStock
	}
	return quantity
}
