package main

import (
	"net/http"
	"strings"

	"hairpalace.org/store-web/internal/format"
	"hairpalace.org/store-web/internal/storeapi"
)

// OrderView backs the order-tracking page: the lookup form and, when
// found, the order snapshot.
type OrderView struct {
	OrderNumber string
	Email       string
	Error       string

	Found         bool
	Status        string
	PaymentStatus string
	TotalAmount   string
	Placed        string
	Updated       string
	Items         []OrderLine
}

// OrderLine is one denormalized order item row.
type OrderLine struct {
	ProductName string
	VariantName string
	Quantity    int
	Price       string
}

// OrdersHandler renders the tracking form and, when both orderNumber and
// email are supplied, performs the lookup. The email ties the requester to
// the order; a mismatch surfaces as the API's not-found error.
func OrdersHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	view := OrderView{
		OrderNumber: strings.TrimSpace(q.Get("orderNumber")),
		Email:       strings.TrimSpace(q.Get("email")),
	}

	if view.OrderNumber != "" || view.Email != "" {
		if view.OrderNumber == "" || view.Email == "" {
			view.Error = "Order number and email are both required"
		} else {
			order, err := apiClient.OrderStatus(r.Context(), view.OrderNumber, view.Email)
			if err != nil {
				view.Error = err.Error()
			} else {
				fillOrderView(&view, order)
			}
		}
	}

	vm := newPageData(r, "orders", "Track Your Order")
	vm.Order = &view
	renderPage(w, r, vm)
}

func fillOrderView(view *OrderView, order storeapi.Order) {
	view.Found = true
	view.Status = storeapi.TitleCase(order.Status)
	view.PaymentStatus = storeapi.TitleCase(order.PaymentStatus)
	view.TotalAmount = format.Price(order.TotalAmount)
	view.Placed = format.DateMillis(order.CreatedAt)
	view.Updated = format.DateMillis(order.UpdatedAt)
	for _, it := range order.Items {
		view.Items = append(view.Items, OrderLine{
			ProductName: it.ProductName,
			VariantName: it.VariantName,
			Quantity:    it.Quantity,
			Price:       format.Price(it.Price),
		})
	}
}
