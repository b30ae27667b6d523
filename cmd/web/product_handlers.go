package main

import (
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"hairpalace.org/store-web/internal/catalog"
	mw "hairpalace.org/store-web/internal/middleware"
	"hairpalace.org/store-web/internal/storeapi"
)

// ProductsView backs the listing page in both paginated and search modes.
type ProductsView struct {
	Query       string
	InStockOnly bool
	Cards       []ProductCard
	Count       int
	HasMore     bool
	NextCursor  string
	// MoreURL is the htmx endpoint for the next page with filters applied.
	MoreURL string
	Error   string
}

// ProductsHandler renders the product listing. With ?q= it switches to
// search mode: a flat result list, no pagination.
func ProductsHandler(w http.ResponseWriter, r *http.Request) {
	view := buildProductsView(r)

	title := "All Products"
	if view.Query != "" {
		title = "Search: " + view.Query
	}
	vm := newPageData(r, "products", title)
	vm.Products = &view
	renderPage(w, r, vm)
}

// ProductsPageFrag serves one more page of the grid for the load-more
// button. Repeated calls with the returned cursor append to the list the
// browser has already accumulated.
func ProductsPageFrag(w http.ResponseWriter, r *http.Request) {
	view := buildProductsView(r)
	if mw.IsHTMX(r.Context()) {
		push := "/products"
		if view.InStockOnly {
			push += "?inStock=1"
		}
		w.Header().Set("HX-Push-Url", push)
	}
	renderTemplate(w, r, "frag_product_page", view)
}

func buildProductsView(r *http.Request) ProductsView {
	q := r.URL.Query()
	view := ProductsView{
		Query:       strings.TrimSpace(q.Get("q")),
		InStockOnly: q.Get("inStock") == "1",
	}

	pager := catalog.NewPager(apiClient, catalog.Filters{
		InStockOnly: view.InStockOnly,
		PageSize:    catalog.DefaultPageSize,
	})

	if view.Query != "" {
		products, err := pager.Search(r.Context(), view.Query)
		if err != nil {
			view.Error = err.Error()
			return view
		}
		view.Cards = buildProductCards(products)
		view.Count = len(view.Cards)
		return view
	}

	// Filters and cursors are mutually exclusive continuation state: a
	// cursor is only honored together with the filters it was issued for.
	if cursor := q.Get("cursor"); cursor != "" {
		pager.Resume(cursor)
	}
	products, err := pager.NextPage(r.Context())
	if err != nil {
		view.Error = err.Error()
		return view
	}
	view.Cards = buildProductCards(products)
	view.Count = len(view.Cards)
	view.HasMore = pager.HasMore()
	view.NextCursor = pager.Cursor()
	if view.HasMore && view.NextCursor != "" {
		more := url.Values{}
		more.Set("cursor", view.NextCursor)
		if view.InStockOnly {
			more.Set("inStock", "1")
		}
		view.MoreURL = "/products/page?" + more.Encode()
	}
	return view
}

// ProductDetailView backs the product page.
type ProductDetailView struct {
	Product     storeapi.Product
	Description template.HTML
	Variants    []VariantOption
	DefaultID   string
	MaxQty      int
	Price       string
	Related     []ProductCard
}

// VariantOption is one entry in the variant picker.
type VariantOption struct {
	ID        string
	Label     string
	Price     string
	InStock   bool
	MaxQty    int
	IsDefault bool
}

// ProductDetailHandler renders one product by slug, with its variant
// picker and related products.
func ProductDetailHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	ctx := r.Context()

	product, err := apiClient.GetProduct(ctx, slug)
	if err != nil {
		if storeapi.NotFound(err) {
			http.NotFound(w, r)
			return
		}
		renderErrorPage(w, r, err)
		return
	}

	view := buildProductDetailView(product)
	if related, err := apiClient.RelatedProducts(ctx, slug, 4); err == nil {
		view.Related = buildProductCards(related)
	} else {
		log.Warn().Err(err).Str("slug", slug).Msg("product: related")
	}

	vm := newPageData(r, "product", product.Name)
	vm.Product = &view
	renderPage(w, r, vm)
}

func buildProductDetailView(p storeapi.Product) ProductDetailView {
	view := ProductDetailView{
		Product:     p,
		Description: renderDescription(p.Description),
		Price:       priceLabel(p.Price),
	}
	defVariant, ok := p.DefaultVariant()
	if ok {
		view.DefaultID = defVariant.ID
		view.MaxQty = defVariant.StockQuantity
		view.Price = priceLabel(defVariant.Price)
	}
	for _, v := range p.Variants {
		view.Variants = append(view.Variants, VariantOption{
			ID:        v.ID,
			Label:     variantLabel(v),
			Price:     priceLabel(v.Price),
			InStock:   v.StockQuantity > 0,
			MaxQty:    v.StockQuantity,
			IsDefault: v.ID == view.DefaultID,
		})
	}
	return view
}

func variantLabel(v storeapi.Variant) string {
	if len(v.Options) == 0 {
		return v.Name
	}
	parts := make([]string, 0, len(v.Options))
	for _, key := range []string{"size", "color"} {
		if val, ok := v.Options[key]; ok && val != "" {
			parts = append(parts, val)
		}
	}
	if len(parts) == 0 {
		return v.Name
	}
	return v.Name + " (" + strings.Join(parts, " / ") + ")"
}

func renderErrorPage(w http.ResponseWriter, r *http.Request, err error) {
	vm := newPageData(r, "error", "Something went wrong")
	vm.Error = err.Error()
	w.WriteHeader(http.StatusBadGateway)
	renderPage(w, r, vm)
}
