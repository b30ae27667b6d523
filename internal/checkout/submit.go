// Package checkout submits the cart for order creation. Client-side
// validation here is advisory; the server remains authoritative and may
// reject for reasons the client cannot predict.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"hairpalace.org/store-web/internal/storeapi"
)

// API is the slice of the store client the submitter needs.
type API interface {
	Checkout(ctx context.Context, req storeapi.CheckoutRequest) (storeapi.CheckoutResponse, error)
}

// CartResetter is satisfied by the cart synchronizer; the cart is reset
// only after the server confirms the order.
type CartResetter interface {
	Reset()
}

// ErrEmptyCart is returned when submission is attempted with no cart.
var ErrEmptyCart = errors.New("checkout: cart is empty")

// ValidationError collects per-field advisory validation failures. These
// never reach the network.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "checkout: invalid customer info"
}

// RejectedError is a server-side rejection; Reason is displayed verbatim.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string { return e.Reason }

// Confirmation is the successful outcome of a submission.
type Confirmation struct {
	OrderID     string
	OrderNumber string
}

// Submitter validates customer fields and posts the checkout request.
type Submitter struct {
	api      API
	validate *validator.Validate
}

// NewSubmitter builds a submitter around the given API.
func NewSubmitter(api API) *Submitter {
	return &Submitter{
		api:      api,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate runs the advisory field checks without submitting.
func (s *Submitter) Validate(info storeapi.CustomerInfo) error {
	err := s.validate.Struct(info)
	if err == nil {
		return nil
	}
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return err
	}
	fields := map[string]string{}
	for _, fe := range invalid {
		switch fe.Field() {
		case "Name":
			fields["name"] = "Name is required"
		case "Email":
			if fe.Tag() == "required" {
				fields["email"] = "Email is required"
			} else {
				fields["email"] = "Invalid email address"
			}
		case "Address":
			fields["address"] = "Address is required"
		default:
			fields[strings.ToLower(fe.Field())] = fmt.Sprintf("Invalid %s", strings.ToLower(fe.Field()))
		}
	}
	return &ValidationError{Fields: fields}
}

// Submit validates locally, posts the checkout, and on a confirmed order
// resets the cart. A rejected response or transport failure leaves the
// cart untouched and surfaces the error/reason string for display.
func (s *Submitter) Submit(ctx context.Context, cartID string, info storeapi.CustomerInfo, cart CartResetter) (Confirmation, error) {
	if strings.TrimSpace(cartID) == "" {
		return Confirmation{}, ErrEmptyCart
	}
	if err := s.Validate(info); err != nil {
		return Confirmation{}, err
	}

	resp, err := s.api.Checkout(ctx, storeapi.CheckoutRequest{
		CartID:       cartID,
		CustomerInfo: info,
	})
	if err != nil {
		return Confirmation{}, err
	}
	if !resp.Success || resp.OrderNumber == "" {
		reason := strings.TrimSpace(resp.Error)
		if reason == "" {
			reason = "Checkout failed"
		}
		return Confirmation{}, &RejectedError{Reason: reason}
	}

	if cart != nil {
		cart.Reset()
	}
	return Confirmation{OrderID: resp.OrderID, OrderNumber: resp.OrderNumber}, nil
}
