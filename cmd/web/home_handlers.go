package main

import (
	"net/http"

	"hairpalace.org/store-web/internal/storeapi"
)

// HomeView backs the landing page: a featured-product grid and a category
// strip.
type HomeView struct {
	Featured   []ProductCard
	Categories []storeapi.Category
}

// HomeHandler renders the landing page. Either fetch failing degrades to
// an empty section rather than a hard error.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	view := HomeView{}
	if page, err := apiClient.ListProducts(ctx, storeapi.ProductFilters{Limit: 8}); err == nil {
		view.Featured = buildProductCards(page.Products)
	} else {
		log.Warn().Err(err).Msg("home: featured products")
	}
	if categories, err := apiClient.ListCategories(ctx); err == nil {
		view.Categories = categories
	} else {
		log.Warn().Err(err).Msg("home: categories")
	}

	vm := newPageData(r, "home", "Hair Palace")
	vm.Home = &view
	renderPage(w, r, vm)
}
