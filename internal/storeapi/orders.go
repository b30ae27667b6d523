package storeapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// ErrMissingLookupField is returned when an order lookup omits the order
// number or the email.
var ErrMissingLookupField = errors.New("storeapi: order number and email are required")

// Checkout submits the cart with customer contact fields. The server may
// reject for reasons the client cannot predict (stock vanished, cart
// expired); the response error string is meant for display verbatim.
func (c *Client) Checkout(ctx context.Context, req CheckoutRequest) (CheckoutResponse, error) {
	var resp CheckoutResponse
	if err := c.do(ctx, http.MethodPost, "/checkout", nil, req, &resp); err != nil {
		return CheckoutResponse{}, err
	}
	return resp, nil
}

// OrderStatus looks up an order snapshot by order number. The email acts as
// a lightweight authorization check tying the requester to the order; a
// mismatch surfaces as the server's not-found error.
func (c *Client) OrderStatus(ctx context.Context, orderNumber, email string) (Order, error) {
	if orderNumber == "" || email == "" {
		return Order{}, ErrMissingLookupField
	}
	q := url.Values{}
	q.Set("email", email)

	var order Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderNumber), q, nil, &order); err != nil {
		return Order{}, err
	}
	return order, nil
}
