package storeapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetCart fetches the cart scoped to a session identifier. The server
// returns an empty cart when none exists yet.
func (c *Client) GetCart(ctx context.Context, sessionID string) (Cart, error) {
	q := url.Values{}
	q.Set("sessionId", sessionID)

	var cart Cart
	if err := c.do(ctx, http.MethodGet, "/cart", q, nil, &cart); err != nil {
		return Cart{}, err
	}
	return cart, nil
}

type addCartItemRequest struct {
	SessionID string `json:"sessionId"`
	ProductID string `json:"productId"`
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
}

type cartMutationResponse struct {
	Success bool `json:"success"`
}

// AddCartItem requests a server-side line addition. Line merging, stock
// checks, and totals are computed server-side; callers must re-fetch the
// cart afterwards.
func (c *Client) AddCartItem(ctx context.Context, sessionID, productID, variantID string, quantity int) error {
	body := addCartItemRequest{
		SessionID: sessionID,
		ProductID: productID,
		VariantID: variantID,
		Quantity:  quantity,
	}
	var resp cartMutationResponse
	if err := c.do(ctx, http.MethodPost, "/cart/items", nil, body, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("storeapi: add to cart was not accepted")
	}
	return nil
}

type updateCartItemRequest struct {
	CartID   string `json:"cartId"`
	Quantity int    `json:"quantity"`
}

// UpdateCartItem requests a quantity change for an existing line. The
// caller is responsible for clamping quantity into [1, maxStock] first.
func (c *Client) UpdateCartItem(ctx context.Context, cartID, variantID string, quantity int) error {
	body := updateCartItemRequest{CartID: cartID, Quantity: quantity}
	var resp cartMutationResponse
	if err := c.do(ctx, http.MethodPatch, "/cart/items/"+url.PathEscape(variantID), nil, body, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("storeapi: cart update was not accepted")
	}
	return nil
}

// RemoveCartItem requests a server-side line removal.
func (c *Client) RemoveCartItem(ctx context.Context, cartID, variantID string) error {
	q := url.Values{}
	q.Set("cartId", cartID)

	var resp cartMutationResponse
	if err := c.do(ctx, http.MethodDelete, "/cart/items/"+url.PathEscape(variantID), q, nil, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("storeapi: cart removal was not accepted")
	}
	return nil
}
