package storeapi

import "strings"

// All monetary amounts are integer counts of minor currency units (cents).
// Division by 100 happens only at render time.

// Variant is a purchasable configuration of a product with its own SKU,
// price, and stock.
type Variant struct {
	ID            string            `json:"_id"`
	Name          string            `json:"name"`
	SKU           string            `json:"sku"`
	Price         int64             `json:"price"`
	StockQuantity int               `json:"stockQuantity"`
	Options       map[string]string `json:"options"`
	IsDefault     bool              `json:"isDefault"`
}

// Product is a catalog entry. Slug is the stable routing key.
type Product struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Price        int64     `json:"price"`
	Images       []string  `json:"images"`
	CategoryName string    `json:"categoryName"`
	InStock      bool      `json:"inStock"`
	TotalStock   int       `json:"totalStock"`
	Variants     []Variant `json:"variants"`
}

// DefaultVariant returns the variant flagged as default, or the first one
// when no flag is set. The fallback is a client convention, not a server
// guarantee.
func (p Product) DefaultVariant() (Variant, bool) {
	for _, v := range p.Variants {
		if v.IsDefault {
			return v, true
		}
	}
	if len(p.Variants) > 0 {
		return p.Variants[0], true
	}
	return Variant{}, false
}

// Thumbnail returns the image at the given index, or empty when absent.
func (p Product) Thumbnail(index int) string {
	if index >= 0 && index < len(p.Images) {
		return p.Images[index]
	}
	return ""
}

// Category supports a shallow category/subcategory hierarchy via ParentID.
type Category struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	ParentID *string `json:"parentId"`
	Position int     `json:"position"`
}

// CategoryDetail extends Category with an optional product count.
type CategoryDetail struct {
	Category
	ProductCount int `json:"productCount,omitempty"`
}

// CartItem is a denormalized line-item snapshot. MaxStock mirrors current
// stock and bounds the quantity a client may request.
type CartItem struct {
	ID        string `json:"_id"`
	ProductID string `json:"productId"`
	VariantID string `json:"variantId"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	MaxStock  int    `json:"maxStock"`
	Total     int64  `json:"total"`
}

// Cart is the server-held cart. Totals are computed server-side and
// trusted as-is.
type Cart struct {
	ID          string     `json:"_id"`
	TotalAmount int64      `json:"totalAmount"`
	TotalItems  int        `json:"totalItems"`
	Items       []CartItem `json:"items"`
}

// Order status values.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// Payment status values.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// OrderItem is a denormalized order line with no live catalog reference.
type OrderItem struct {
	ProductName string `json:"productName"`
	VariantName string `json:"variantName"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
}

// Order is a snapshot returned by the order-status endpoint. Timestamps
// are epoch milliseconds.
type Order struct {
	OrderNumber   string      `json:"orderNumber"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"paymentStatus"`
	TotalAmount   int64       `json:"totalAmount"`
	CreatedAt     int64       `json:"createdAt"`
	UpdatedAt     int64       `json:"updatedAt"`
	Items         []OrderItem `json:"items"`
}

// CustomerInfo carries the checkout contact and shipping fields.
type CustomerInfo struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone,omitempty" validate:"omitempty"`
}

// CheckoutRequest submits a cart for order creation.
type CheckoutRequest struct {
	CartID       string       `json:"cartId"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
}

// CheckoutResponse reports the outcome of a checkout submission. Error, if
// set, is displayed to the shopper verbatim.
type CheckoutResponse struct {
	Success     bool   `json:"success"`
	OrderID     string `json:"orderId,omitempty"`
	OrderNumber string `json:"orderNumber,omitempty"`
	Error       string `json:"error,omitempty"`
}

// ProductsPage is one page of a cursor-paginated listing. NextCursor is
// empty once the listing is exhausted.
type ProductsPage struct {
	Products   []Product `json:"products"`
	NextCursor string    `json:"nextCursor"`
	HasMore    bool      `json:"hasMore"`
}

// ProductFilters narrows a listing request. Zero values are omitted from
// the query; price bounds are minor units with nil meaning unbounded.
type ProductFilters struct {
	Limit       int
	Cursor      string
	MinPrice    *int64
	MaxPrice    *int64
	InStockOnly bool
}

// TitleCase is a tiny helper for rendering status enums ("pending" ->
// "Pending"); slugs and statuses are ASCII.
func TitleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
