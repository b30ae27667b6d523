package main

import (
	"errors"
	"net/http"
	"strings"

	"hairpalace.org/store-web/internal/cart"
	"hairpalace.org/store-web/internal/checkout"
	"hairpalace.org/store-web/internal/storeapi"
)

// CheckoutView backs the checkout form, its error states, and the
// confirmation view after a successful submission.
type CheckoutView struct {
	Cart        CartView
	Form        storeapi.CustomerInfo
	FieldErrors map[string]string
	Error       string

	Confirmed   bool
	OrderNumber string
}

// CheckoutHandler renders the checkout form with a cart summary. An empty
// cart redirects back to the cart page.
func CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	sync := sessionCart(r)
	if err := sync.Load(r.Context()); err != nil {
		renderErrorPage(w, r, err)
		return
	}
	snap := sync.Snapshot()
	if snap.Empty() {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	vm := newPageData(r, "checkout", "Checkout")
	vm.Checkout = &CheckoutView{Cart: buildCartView(r, snap)}
	vm.CartCount = snap.TotalItems
	renderPage(w, r, vm)
}

// CheckoutSubmitHandler validates locally, submits, and on success resets
// the cart cache and renders the confirmation. A rejected submission or
// transport failure re-renders the form with the reason, cart untouched.
func CheckoutSubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	info := storeapi.CustomerInfo{
		Name:    strings.TrimSpace(r.FormValue("name")),
		Email:   strings.TrimSpace(r.FormValue("email")),
		Address: strings.TrimSpace(r.FormValue("address")),
		Phone:   strings.TrimSpace(r.FormValue("phone")),
	}

	sync := sessionCart(r)
	if sync.CartID() == "" {
		if err := sync.Load(r.Context()); err != nil {
			renderErrorPage(w, r, err)
			return
		}
	}
	snap := sync.Snapshot()

	confirmation, err := submitter.Submit(r.Context(), snap.CartID, info, sync)
	if err != nil {
		renderCheckoutError(w, r, snap, info, err)
		return
	}

	vm := newPageData(r, "checkout", "Order Confirmed")
	vm.Checkout = &CheckoutView{
		Confirmed:   true,
		OrderNumber: confirmation.OrderNumber,
	}
	vm.CartCount = 0
	renderPage(w, r, vm)
}

func renderCheckoutError(w http.ResponseWriter, r *http.Request, snap cart.Snapshot, info storeapi.CustomerInfo, err error) {
	view := CheckoutView{
		Cart: buildCartView(r, snap),
		Form: info,
	}

	var invalid *checkout.ValidationError
	var rejected *checkout.RejectedError
	switch {
	case errors.As(err, &invalid):
		view.FieldErrors = invalid.Fields
	case errors.As(err, &rejected):
		// server reason, displayed verbatim
		view.Error = rejected.Reason
	case errors.Is(err, checkout.ErrEmptyCart):
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	default:
		view.Error = err.Error()
	}

	vm := newPageData(r, "checkout", "Checkout")
	vm.Checkout = &view
	vm.CartCount = snap.TotalItems
	w.WriteHeader(http.StatusUnprocessableEntity)
	renderPage(w, r, vm)
}
