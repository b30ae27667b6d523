package middleware

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const sessionCookieName = "hair_palace_session"

// sessionTTL keeps the anonymous cart scoped to the browser for a year; the
// identifier is created once and never rotated.
const sessionTTL = 365 * 24 * time.Hour

// SessionData is the signed cookie payload. ID is the opaque identifier
// that scopes the anonymous shopping cart on the store API.
type SessionData struct {
	ID        string    `json:"id"`
	CSRFToken string    `json:"csrf,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// dirty marks the session for write-back; not serialized
	dirty bool `json:"-"`
}

var (
	sessionSignKey []byte
	sessionSecure  bool
)

// ConfigureSession installs the cookie signing key. An empty key generates
// a process-ephemeral one, which is fine for dev but invalidates sessions
// on restart; config enforces a real key in prod.
func ConfigureSession(key string, secure bool) {
	if strings.TrimSpace(key) != "" {
		sessionSignKey = []byte(key)
	} else {
		sessionSignKey = make([]byte, 32)
		_, _ = rand.Read(sessionSignKey)
	}
	sessionSecure = secure
}

// Session loads or initializes the shopper session and stores it in the
// request context. A new identifier is generated exactly once per browser
// install; repeated requests reuse the persisted value.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sessionSignKey == nil {
			ConfigureSession("", false)
		}
		sd, fromCookie := readSessionCookie(r)
		if sd.ID == "" {
			sd.ID = uuid.NewString()
			sd.CreatedAt = time.Now().UTC()
			sd.UpdatedAt = sd.CreatedAt
			sd.CSRFToken = newCSRFToken()
			sd.dirty = true
		}
		ctx := WithSession(r.Context(), sd)

		rw := NewResponseRecorder(w)
		rw.SetBeforeWrite(func(w http.ResponseWriter) {
			if sd.dirty || !fromCookie {
				writeSessionCookie(w, sd)
			}
		})
		next.ServeHTTP(rw, r.WithContext(ctx))
		if !rw.wrote && (sd.dirty || !fromCookie) {
			writeSessionCookie(w, sd)
		}
	})
}

// GetSession returns session data from the request context.
func GetSession(r *http.Request) *SessionData {
	if v := r.Context().Value(ctxKeySession); v != nil {
		if sd, ok := v.(*SessionData); ok {
			return sd
		}
	}
	return &SessionData{}
}

// MarkDirty flags the session for writing at the end of the request.
func (s *SessionData) MarkDirty() {
	s.dirty = true
	s.UpdatedAt = time.Now().UTC()
}

func readSessionCookie(r *http.Request) (*SessionData, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return &SessionData{}, false
	}
	parts := strings.Split(c.Value, ".")
	if len(parts) != 2 {
		return &SessionData{}, false
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return &SessionData{}, false
	}
	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return &SessionData{}, false
	}
	mac := hmac.New(sha256.New, sessionSignKey)
	mac.Write(payload)
	if !hmac.Equal(sig, mac.Sum(nil)) {
		return &SessionData{}, false
	}
	var sd SessionData
	if err := json.Unmarshal(payload, &sd); err != nil {
		return &SessionData{}, false
	}
	return &sd, true
}

func writeSessionCookie(w http.ResponseWriter, sd *SessionData) {
	b, _ := json.Marshal(sd)
	payload := base64.RawURLEncoding.EncodeToString(b)
	mac := hmac.New(sha256.New, sessionSignKey)
	mac.Write(b)
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    payload + "." + sig,
		Path:     "/",
		HttpOnly: true,
		Secure:   sessionSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(sessionTTL),
	})
}
