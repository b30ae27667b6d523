package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hairpalace.org/store-web/internal/content"
	"hairpalace.org/store-web/internal/format"
)

// ContentView backs static support pages (shipping info, returns, about).
type ContentView struct {
	Page    content.Page
	Updated string
}

// ContentPageHandler serves a static markdown page by slug.
func ContentPageHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page, err := contentStore.Get(slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		renderErrorPage(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=600")
	vm := newPageData(r, "content", page.Title)
	vm.Content = &ContentView{
		Page:    page,
		Updated: format.Date(page.UpdatedAt),
	}
	renderPage(w, r, vm)
}
