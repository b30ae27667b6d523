package middleware

import "net/http"

// HTMX marks requests coming from htmx so handlers can adapt responses
// (fragment rendering, HX-Push-Url headers, JSON error bodies).
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is := r.Header.Get("HX-Request") == "true"
		next.ServeHTTP(w, r.WithContext(WithHTMX(r.Context(), is)))
	})
}
