package main

import (
	"html/template"
	"net/http"

	"hairpalace.org/store-web/internal/cart"
	"hairpalace.org/store-web/internal/content"
	"hairpalace.org/store-web/internal/format"
	mw "hairpalace.org/store-web/internal/middleware"
	"hairpalace.org/store-web/internal/nav"
	"hairpalace.org/store-web/internal/storeapi"
)

// PageData is the view model for the shared layout.
type PageData struct {
	Title       string
	Page        string // template name for the body block
	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb
	CSRFToken   string
	CartCount   int
	Error       string

	Home       *HomeView
	Products   *ProductsView
	Product    *ProductDetailView
	Categories []storeapi.Category
	Category   *CategoryView
	Cart       *CartView
	Checkout   *CheckoutView
	Order      *OrderView
	Content    *ContentView
}

// newPageData fills the layout fields common to every page, including the
// cart badge count from the session's cart cache.
func newPageData(r *http.Request, page, title string) PageData {
	snap := sessionCart(r).Snapshot()
	return PageData{
		Title:       title,
		Page:        page,
		Path:        r.URL.Path,
		Nav:         nav.Build(r.URL.Path),
		Breadcrumbs: nav.Breadcrumbs(r.URL.Path),
		CSRFToken:   mw.GetSession(r).CSRFToken,
		CartCount:   snap.TotalItems,
	}
}

// sessionCart returns the cart synchronizer for the current shopper.
func sessionCart(r *http.Request) *cart.Synchronizer {
	return cartManager.ForSession(mw.SessionID(r))
}

// ProductCard is the listing-grid view of one product.
type ProductCard struct {
	Slug         string
	Name         string
	Snippet      string
	Price        string
	Image        string
	CategoryName string
	InStock      bool
}

func buildProductCard(p storeapi.Product) ProductCard {
	return ProductCard{
		Slug:         p.Slug,
		Name:         p.Name,
		Snippet:      format.Excerpt(string(renderDescription(p.Description)), 140),
		Price:        format.Price(p.Price),
		Image:        p.Thumbnail(0),
		CategoryName: p.CategoryName,
		InStock:      p.InStock,
	}
}

func buildProductCards(products []storeapi.Product) []ProductCard {
	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, buildProductCard(p))
	}
	return cards
}

func priceLabel(minor int64) string { return format.Price(minor) }

// renderDescription pushes an API-sourced description through the shared
// markdown + sanitizer pipeline; untrusted input falls back to escaped text.
func renderDescription(src string) template.HTML {
	html, err := content.RenderMarkdown(src)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return html
}
