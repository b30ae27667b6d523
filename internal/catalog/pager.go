// Package catalog wraps the paginated product listing and free-text search
// endpoints behind a restartable "load more" sequence.
package catalog

import (
	"context"
	"strings"

	"hairpalace.org/store-web/internal/storeapi"
)

// DefaultPageSize matches the listing grid used by the storefront.
const DefaultPageSize = 12

// API is the slice of the store client the pager needs.
type API interface {
	ListProducts(ctx context.Context, filters storeapi.ProductFilters) (storeapi.ProductsPage, error)
	SearchProducts(ctx context.Context, query string, limit int) ([]storeapi.Product, error)
}

// Filters narrow a listing. Price bounds are minor units; nil means
// unbounded.
type Filters struct {
	InStockOnly bool
	MinPrice    *int64
	MaxPrice    *int64
	PageSize    int
}

func (f Filters) equal(other Filters) bool {
	return f.InStockOnly == other.InStockOnly &&
		int64Equal(f.MinPrice, other.MinPrice) &&
		int64Equal(f.MaxPrice, other.MaxPrice) &&
		f.PageSize == other.PageSize
}

func int64Equal(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Pager accumulates products across cursor-continued pages. Filters and
// cursors are mutually exclusive continuation state: changing filters
// discards the accumulation and restarts from the beginning.
type Pager struct {
	api      API
	filters  Filters
	cursor   string
	hasMore  bool
	started  bool
	products []storeapi.Product
}

// NewPager builds a pager with the given filters.
func NewPager(api API, filters Filters) *Pager {
	if filters.PageSize <= 0 {
		filters.PageSize = DefaultPageSize
	}
	return &Pager{api: api, filters: filters}
}

// SetFilters replaces the filters. A change resets the cursor and drops
// everything accumulated so far.
func (p *Pager) SetFilters(filters Filters) {
	if filters.PageSize <= 0 {
		filters.PageSize = DefaultPageSize
	}
	if p.filters.equal(filters) {
		return
	}
	p.filters = filters
	p.cursor = ""
	p.hasMore = false
	p.started = false
	p.products = nil
}

// Resume continues a listing from a cursor handed out earlier (for
// stateless callers that carry the continuation token between requests).
// The accumulation restarts from the resumed position.
func (p *Pager) Resume(cursor string) {
	p.cursor = cursor
	p.hasMore = false
	p.started = false
	p.products = nil
}

// NextPage fetches the next page and appends it to the accumulated list,
// returning just the newly fetched products. Once exhausted it returns nil
// without a network call. A failed fetch leaves the accumulation and the
// cursor untouched, so the same page can be requested again.
func (p *Pager) NextPage(ctx context.Context) ([]storeapi.Product, error) {
	if p.started && !p.hasMore {
		return nil, nil
	}

	page, err := p.api.ListProducts(ctx, storeapi.ProductFilters{
		Limit:       p.filters.PageSize,
		Cursor:      p.cursor,
		MinPrice:    p.filters.MinPrice,
		MaxPrice:    p.filters.MaxPrice,
		InStockOnly: p.filters.InStockOnly,
	})
	if err != nil {
		return nil, err
	}

	p.started = true
	p.cursor = page.NextCursor
	p.hasMore = page.HasMore && page.NextCursor != ""
	p.products = append(p.products, page.Products...)
	return page.Products, nil
}

// Products returns the full accumulated list.
func (p *Pager) Products() []storeapi.Product {
	out := make([]storeapi.Product, len(p.products))
	copy(out, p.products)
	return out
}

// HasMore reports whether another page can be fetched. Before the first
// fetch it is optimistically true.
func (p *Pager) HasMore() bool {
	if !p.started {
		return true
	}
	return p.hasMore
}

// Cursor exposes the opaque continuation token, empty when exhausted or
// before the first fetch.
func (p *Pager) Cursor() string { return p.cursor }

// Search runs a flat, non-paginated lookup. Empty or whitespace-only
// queries return an empty result without touching the network.
func (p *Pager) Search(ctx context.Context, query string) ([]storeapi.Product, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	return p.api.SearchProducts(ctx, query, p.filters.PageSize)
}
