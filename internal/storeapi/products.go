package storeapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ListProducts fetches one page of the catalog. Pass the NextCursor from a
// prior page to continue the listing; filters and cursors are mutually
// exclusive continuation state, so callers restarting with new filters must
// drop their cursor.
func (c *Client) ListProducts(ctx context.Context, filters ProductFilters) (ProductsPage, error) {
	q := url.Values{}
	if filters.Limit > 0 {
		q.Set("limit", strconv.Itoa(filters.Limit))
	}
	if filters.Cursor != "" {
		q.Set("cursor", filters.Cursor)
	}
	if filters.MinPrice != nil {
		q.Set("minPrice", strconv.FormatInt(*filters.MinPrice, 10))
	}
	if filters.MaxPrice != nil {
		q.Set("maxPrice", strconv.FormatInt(*filters.MaxPrice, 10))
	}
	if filters.InStockOnly {
		q.Set("inStockOnly", "true")
	}

	var page ProductsPage
	if err := c.do(ctx, http.MethodGet, "/products", q, nil, &page); err != nil {
		return ProductsPage{}, err
	}
	return page, nil
}

// SearchProducts runs a free-text lookup capped at a server-enforced limit.
// An empty or whitespace-only query short-circuits without a network call.
func (c *Client) SearchProducts(ctx context.Context, query string, limit int) ([]Product, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))

	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products/search", q, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product by slug.
func (c *Client) GetProduct(ctx context.Context, slug string) (Product, error) {
	var p Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(slug), nil, nil, &p); err != nil {
		return Product{}, err
	}
	return p, nil
}

// RelatedProducts fetches up to limit products related to the given slug.
func (c *Client) RelatedProducts(ctx context.Context, slug string, limit int) ([]Product, error) {
	if limit <= 0 {
		limit = 4
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(slug)+"/related", q, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}
