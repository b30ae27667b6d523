package storeapi

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strconv"
)

// ListCategories fetches all categories, ordered by display position.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Position < categories[j].Position
	})
	return categories, nil
}

// GetCategory fetches one category by slug.
func (c *Client) GetCategory(ctx context.Context, slug string) (CategoryDetail, error) {
	var detail CategoryDetail
	if err := c.do(ctx, http.MethodGet, "/categories/"+url.PathEscape(slug), nil, nil, &detail); err != nil {
		return CategoryDetail{}, err
	}
	return detail, nil
}

// CategoryProducts fetches up to limit products within a category.
func (c *Client) CategoryProducts(ctx context.Context, slug string, limit int) ([]Product, error) {
	if limit <= 0 {
		limit = 20
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var products []Product
	if err := c.do(ctx, http.MethodGet, "/categories/"+url.PathEscape(slug)+"/products", q, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}
