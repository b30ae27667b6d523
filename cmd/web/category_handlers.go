package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hairpalace.org/store-web/internal/storeapi"
)

// CategoryView backs the category detail page.
type CategoryView struct {
	Detail storeapi.CategoryDetail
	Cards  []ProductCard
}

// CategoriesHandler renders the category index, ordered by position.
func CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := apiClient.ListCategories(r.Context())
	if err != nil {
		renderErrorPage(w, r, err)
		return
	}
	vm := newPageData(r, "categories", "Categories")
	vm.Categories = categories
	renderPage(w, r, vm)
}

// CategoryDetailHandler renders one category with its products.
func CategoryDetailHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	ctx := r.Context()

	detail, err := apiClient.GetCategory(ctx, slug)
	if err != nil {
		if storeapi.NotFound(err) {
			http.NotFound(w, r)
			return
		}
		renderErrorPage(w, r, err)
		return
	}

	view := CategoryView{Detail: detail}
	if products, err := apiClient.CategoryProducts(ctx, slug, 20); err == nil {
		view.Cards = buildProductCards(products)
	} else {
		log.Warn().Err(err).Str("slug", slug).Msg("category: products")
	}

	vm := newPageData(r, "category", detail.Name)
	vm.Category = &view
	renderPage(w, r, vm)
}
