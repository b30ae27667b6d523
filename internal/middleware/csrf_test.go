package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csrfStack() http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return Session(CSRF(ok))
}

// primeSession performs a GET to obtain the session cookie and CSRF token.
func primeSession(t *testing.T, h http.Handler) (*http.Cookie, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	session := findCookie(t, rec.Result(), "hair_palace_session")
	require.NotNil(t, session)
	csrf := findCookie(t, rec.Result(), "csrf_token")
	require.NotNil(t, csrf)
	return session, csrf.Value
}

func TestSafeMethodsPassWithoutToken(t *testing.T) {
	ConfigureSession("test-signing-key", false)
	h := csrfStack()

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(method, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code, method)
	}
}

func TestPostWithoutTokenIsForbidden(t *testing.T) {
	ConfigureSession("test-signing-key", false)
	h := csrfStack()

	session, _ := primeSession(t, h)
	req := httptest.NewRequest(http.MethodPost, "/cart/items", nil)
	req.AddCookie(session)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPostWithFormToken(t *testing.T) {
	ConfigureSession("test-signing-key", false)
	h := csrfStack()

	session, token := primeSession(t, h)
	form := url.Values{"csrf_token": {token}}
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(session)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPostWithHeaderToken(t *testing.T) {
	ConfigureSession("test-signing-key", false)
	h := csrfStack()

	session, token := primeSession(t, h)
	req := httptest.NewRequest(http.MethodPost, "/cart/items", nil)
	req.Header.Set("X-CSRF-Token", token)
	req.AddCookie(session)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPostWithWrongToken(t *testing.T) {
	ConfigureSession("test-signing-key", false)
	h := csrfStack()

	session, _ := primeSession(t, h)
	req := httptest.NewRequest(http.MethodPost, "/cart/items", nil)
	req.Header.Set("X-CSRF-Token", "forged")
	req.AddCookie(session)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
