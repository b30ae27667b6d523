package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"hairpalace.org/store-web/internal/cart"
	"hairpalace.org/store-web/internal/format"
	mw "hairpalace.org/store-web/internal/middleware"
)

// CartView backs the cart page and the line-items fragment. Totals come
// from the server and are formatted at render time only.
type CartView struct {
	CartID      string
	Items       []CartLine
	Empty       bool
	TotalAmount string
	TotalItems  int
	Error       string
	CSRFToken   string
}

// CartLine is one row in the cart table.
type CartLine struct {
	VariantID string
	ProductID string
	Name      string
	Image     string
	UnitPrice string
	LineTotal string
	Quantity  int
	MaxQty    int
	// Dec/Inc are the clamped stepper targets, precomputed so the template
	// can never submit an out-of-range quantity.
	Dec int
	Inc int
}

func buildCartView(r *http.Request, snap cart.Snapshot) CartView {
	view := CartView{
		CartID:      snap.CartID,
		Empty:       snap.Empty(),
		TotalAmount: format.Price(snap.TotalAmount),
		TotalItems:  snap.TotalItems,
		CSRFToken:   mw.GetSession(r).CSRFToken,
	}
	for _, it := range snap.Items {
		view.Items = append(view.Items, CartLine{
			VariantID: it.VariantID,
			ProductID: it.ProductID,
			Name:      it.Name,
			Image:     it.Image,
			UnitPrice: format.Price(it.Price),
			LineTotal: format.Price(it.Total),
			Quantity:  it.Quantity,
			MaxQty:    it.MaxStock,
			Dec:       cart.ClampQuantity(it.Quantity-1, it.MaxStock),
			Inc:       cart.ClampQuantity(it.Quantity+1, it.MaxStock),
		})
	}
	return view
}

// CartHandler renders the cart page, re-fetching cart state from the API
// so the view always reflects the server's authoritative totals.
func CartHandler(w http.ResponseWriter, r *http.Request) {
	sync := sessionCart(r)
	loadErr := sync.Load(r.Context())

	view := buildCartView(r, sync.Snapshot())
	if loadErr != nil {
		// prior state stays in place; surface the error alongside it
		view.Error = loadErr.Error()
	}

	vm := newPageData(r, "cart", "Your Cart")
	vm.Cart = &view
	vm.CartCount = view.TotalItems
	renderPage(w, r, vm)
}

// CartAddHandler handles add-to-cart form posts from product pages. The
// server merges lines and recomputes totals; we just resync and redirect.
func CartAddHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	productID := strings.TrimSpace(r.FormValue("productId"))
	variantID := strings.TrimSpace(r.FormValue("variantId"))
	if productID == "" || variantID == "" {
		http.Error(w, "missing product or variant", http.StatusBadRequest)
		return
	}
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		quantity = 1
	}
	maxStock, _ := strconv.Atoi(r.FormValue("maxStock"))
	quantity = cart.ClampQuantity(quantity, maxStock)

	if err := sessionCart(r).AddItem(r.Context(), productID, variantID, quantity); err != nil {
		cartMutationError(w, r, err)
		return
	}
	finishCartMutation(w, r)
}

// CartUpdateHandler changes a line's quantity. The requested value is
// clamped into [1, maxStock] before anything is transmitted.
func CartUpdateHandler(w http.ResponseWriter, r *http.Request) {
	variantID := chi.URLParam(r, "variantID")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		http.Error(w, "invalid quantity", http.StatusBadRequest)
		return
	}

	sync := sessionCart(r)
	item, ok := sync.Snapshot().Item(variantID)
	if !ok {
		// cache may be cold (e.g. new server instance); resync then retry
		if err := sync.Load(r.Context()); err != nil {
			cartMutationError(w, r, err)
			return
		}
		if item, ok = sync.Snapshot().Item(variantID); !ok {
			http.Error(w, "item not in cart", http.StatusNotFound)
			return
		}
	}
	quantity = cart.ClampQuantity(quantity, item.MaxStock)

	if err := sync.UpdateQuantity(r.Context(), variantID, quantity); err != nil {
		cartMutationError(w, r, err)
		return
	}
	finishCartMutation(w, r)
}

// CartRemoveHandler removes a line.
func CartRemoveHandler(w http.ResponseWriter, r *http.Request) {
	variantID := chi.URLParam(r, "variantID")

	sync := sessionCart(r)
	if sync.CartID() == "" {
		if err := sync.Load(r.Context()); err != nil {
			cartMutationError(w, r, err)
			return
		}
	}
	if err := sync.RemoveItem(r.Context(), variantID); err != nil {
		cartMutationError(w, r, err)
		return
	}
	finishCartMutation(w, r)
}

// finishCartMutation renders the refreshed cart table for htmx callers and
// redirects everyone else to the cart page.
func finishCartMutation(w http.ResponseWriter, r *http.Request) {
	if mw.IsHTMX(r.Context()) {
		view := buildCartView(r, sessionCart(r).Snapshot())
		w.Header().Set("HX-Trigger", `{"cart:updated":{}}`)
		renderTemplate(w, r, "frag_cart_table", view)
		return
	}
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// cartMutationError surfaces a failed mutation. Prior cart state is
// untouched; only the error message is shown.
func cartMutationError(w http.ResponseWriter, r *http.Request, err error) {
	log.Warn().Err(err).Str("path", r.URL.Path).Msg("cart mutation failed")
	if mw.IsHTMX(r.Context()) {
		view := buildCartView(r, sessionCart(r).Snapshot())
		view.Error = err.Error()
		w.WriteHeader(http.StatusUnprocessableEntity)
		renderTemplate(w, r, "frag_cart_table", view)
		return
	}
	vm := newPageData(r, "cart", "Your Cart")
	view := buildCartView(r, sessionCart(r).Snapshot())
	view.Error = err.Error()
	vm.Cart = &view
	w.WriteHeader(http.StatusUnprocessableEntity)
	renderPage(w, r, vm)
}
