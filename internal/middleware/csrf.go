package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"
)

const (
	csrfCookieName = "csrf_token"
	csrfFormField  = "csrf_token"
	csrfHeaderName = "X-CSRF-Token"
)

// CSRF issues a CSRF cookie tied to the session and verifies that
// modifying requests carry the token, either in the X-CSRF-Token header
// (htmx) or in a csrf_token form field (plain form posts).
func CSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := GetSession(r)
		token := s.CSRFToken
		if token == "" {
			token = newCSRFToken()
			s.CSRFToken = token
			s.MarkDirty()
		}

		// double submit cookie
		needSet := true
		if c, err := r.Cookie(csrfCookieName); err == nil && c.Value == token {
			needSet = false
		}
		if needSet {
			http.SetCookie(w, &http.Cookie{
				Name:     csrfCookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: false,
				Secure:   sessionSecure,
				SameSite: http.SameSiteLaxMode,
				Expires:  time.Now().Add(24 * time.Hour),
			})
		}

		if !isSafeMethod(r.Method) {
			got := r.Header.Get(csrfHeaderName)
			if got == "" {
				// ParseForm is idempotent; handlers re-reading form values are unaffected
				_ = r.ParseForm()
				got = r.PostFormValue(csrfFormField)
			}
			if got == "" || got != token {
				writeError(w, r, http.StatusForbidden, "invalid CSRF token")
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}

func newCSRFToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return hex.EncodeToString(b)
}
