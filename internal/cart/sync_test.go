package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hairpalace.org/store-web/internal/storeapi"
)

// fakeStoreAPI simulates the server-owned cart: mutations change its state
// and GetCart returns the recomputed result.
type fakeStoreAPI struct {
	mu    sync.Mutex
	items map[string]storeapi.CartItem

	getErr    error
	mutateErr error

	getCalls    int
	mutateCalls int
}

func newFakeStoreAPI() *fakeStoreAPI {
	return &fakeStoreAPI{items: map[string]storeapi.CartItem{}}
}

func (f *fakeStoreAPI) GetCart(ctx context.Context, sessionID string) (storeapi.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.getErr != nil {
		return storeapi.Cart{}, f.getErr
	}
	cart := storeapi.Cart{ID: "cart-" + sessionID}
	for _, it := range f.items {
		cart.Items = append(cart.Items, it)
		cart.TotalItems += it.Quantity
		cart.TotalAmount += it.Price * int64(it.Quantity)
	}
	return cart, nil
}

func (f *fakeStoreAPI) AddCartItem(ctx context.Context, sessionID, productID, variantID string, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutateCalls++
	if f.mutateErr != nil {
		return f.mutateErr
	}
	it := f.items[variantID]
	it.VariantID = variantID
	it.ProductID = productID
	it.Price = 1000
	it.Quantity += quantity
	f.items[variantID] = it
	return nil
}

func (f *fakeStoreAPI) UpdateCartItem(ctx context.Context, cartID, variantID string, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutateCalls++
	if f.mutateErr != nil {
		return f.mutateErr
	}
	it, ok := f.items[variantID]
	if !ok {
		return errors.New("no such line")
	}
	it.Quantity = quantity
	f.items[variantID] = it
	return nil
}

func (f *fakeStoreAPI) RemoveCartItem(ctx context.Context, cartID, variantID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutateCalls++
	if f.mutateErr != nil {
		return f.mutateErr
	}
	delete(f.items, variantID)
	return nil
}

func TestLoadReplacesStateWholesale(t *testing.T) {
	api := newFakeStoreAPI()
	api.items["v1"] = storeapi.CartItem{VariantID: "v1", Price: 1000, Quantity: 2}

	s := NewSynchronizer(api, "sess-1")
	require.NoError(t, s.Load(context.Background()))

	snap := s.Snapshot()
	assert.Equal(t, "cart-sess-1", snap.CartID)
	assert.Equal(t, 2, snap.TotalItems)
	assert.Equal(t, int64(2000), snap.TotalAmount)

	// server drops the line; next load must not keep a stale copy
	api.mu.Lock()
	delete(api.items, "v1")
	api.mu.Unlock()

	require.NoError(t, s.Load(context.Background()))
	assert.True(t, s.Snapshot().Empty())
}

func TestLoadFailureKeepsPriorState(t *testing.T) {
	api := newFakeStoreAPI()
	api.items["v1"] = storeapi.CartItem{VariantID: "v1", Price: 500, Quantity: 1}

	s := NewSynchronizer(api, "sess-1")
	require.NoError(t, s.Load(context.Background()))

	api.mu.Lock()
	api.getErr = errors.New("upstream down")
	api.mu.Unlock()

	err := s.Load(context.Background())
	require.Error(t, err)

	snap := s.Snapshot()
	assert.Equal(t, 1, snap.TotalItems)
	assert.Equal(t, "cart-sess-1", snap.CartID)
}

func TestAddItemResynchronizes(t *testing.T) {
	api := newFakeStoreAPI()
	s := NewSynchronizer(api, "sess-1")

	require.NoError(t, s.AddItem(context.Background(), "p1", "v1", 2))

	snap := s.Snapshot()
	assert.Equal(t, 2, snap.TotalItems)
	it, ok := snap.Item("v1")
	require.True(t, ok)
	assert.Equal(t, 2, it.Quantity)

	// adding the same variant merges server-side
	require.NoError(t, s.AddItem(context.Background(), "p1", "v1", 1))
	it, _ = s.Snapshot().Item("v1")
	assert.Equal(t, 3, it.Quantity)
}

func TestFailedMutationLeavesStateUntouched(t *testing.T) {
	api := newFakeStoreAPI()
	api.items["v1"] = storeapi.CartItem{VariantID: "v1", Price: 1000, Quantity: 2}

	s := NewSynchronizer(api, "sess-1")
	require.NoError(t, s.Load(context.Background()))
	before := s.Snapshot()

	api.mu.Lock()
	api.mutateErr = errors.New("insufficient stock")
	api.mu.Unlock()

	require.Error(t, s.UpdateQuantity(context.Background(), "v1", 5))
	require.Error(t, s.RemoveItem(context.Background(), "v1"))
	require.Error(t, s.AddItem(context.Background(), "p2", "v2", 1))

	assert.Equal(t, before, s.Snapshot())
}

func TestReset(t *testing.T) {
	api := newFakeStoreAPI()
	api.items["v1"] = storeapi.CartItem{VariantID: "v1", Price: 1000, Quantity: 1}

	s := NewSynchronizer(api, "sess-1")
	require.NoError(t, s.Load(context.Background()))
	require.False(t, s.Snapshot().Empty())

	calls := api.getCalls
	s.Reset()

	snap := s.Snapshot()
	assert.True(t, snap.Empty())
	assert.Empty(t, snap.CartID)
	assert.Zero(t, snap.TotalItems)
	assert.Equal(t, calls, api.getCalls, "reset must not call the API")
}

func TestConcurrentMutationsSerialize(t *testing.T) {
	api := newFakeStoreAPI()
	s := NewSynchronizer(api, "sess-1")

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.AddItem(context.Background(), "p1", "v1", 1)
		}()
	}
	wg.Wait()

	it, ok := s.Snapshot().Item("v1")
	require.True(t, ok)
	assert.Equal(t, n, it.Quantity)
	assert.Equal(t, n, s.Snapshot().TotalItems)
}

func TestSnapshotIsACopy(t *testing.T) {
	api := newFakeStoreAPI()
	api.items["v1"] = storeapi.CartItem{VariantID: "v1", Price: 1000, Quantity: 1}

	s := NewSynchronizer(api, "sess-1")
	require.NoError(t, s.Load(context.Background()))

	snap := s.Snapshot()
	snap.Items[0].Quantity = 99

	fresh, _ := s.Snapshot().Item("v1")
	assert.Equal(t, 1, fresh.Quantity)
}

func TestClampQuantity(t *testing.T) {
	cases := []struct {
		quantity, maxStock, want int
	}{
		{0, 5, 1},
		{-3, 5, 1},
		{1, 5, 1},
		{3, 5, 3},
		{5, 5, 5},
		{6, 5, 5},
		{100, 1, 1},
		// maxStock below 1 means no upper bound
		{7, 0, 7},
		{7, -1, 7},
		{0, 0, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClampQuantity(tc.quantity, tc.maxStock),
			"ClampQuantity(%d, %d)", tc.quantity, tc.maxStock)
	}
}
