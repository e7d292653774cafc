package auth

import (
	"crypto/rand"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// SessionManager issues and verifies admin session cookies. The cookie
// value is an HS256-signed token; the signing secret is generated fresh at
// construction, so sessions never survive a process restart.
type SessionManager struct {
	secret     []byte
	cookieName string
	lifetime   time.Duration
}

// NewSessionManager creates a session manager with a random per-process
// signing secret.
func NewSessionManager(cookieName string, lifetime time.Duration) *SessionManager {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		log.Fatal().Err(err).Msg("Failed to generate session secret")
	}
	return &SessionManager{
		secret:     secret,
		cookieName: cookieName,
		lifetime:   lifetime,
	}
}

// Issue marks the client as authenticated by setting a signed session
// cookie with a fixed expiry.
func (m *SessionManager) Issue(w http.ResponseWriter) error {
	now := time.Now()
	claims := jwt.MapClaims{
		"admin": true,
		"jti":   uuid.New().String(),
		"iat":   now.Unix(),
		"exp":   now.Add(m.lifetime).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    signed,
		Path:     "/",
		Expires:  now.Add(m.lifetime),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear logs the client out by expiring the session cookie.
func (m *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Verify reports whether the request carries a valid, unexpired session
// token. Missing, tampered and expired tokens all read as anonymous.
func (m *SessionManager) Verify(r *http.Request) bool {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return false
	}

	token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	admin, _ := claims["admin"].(bool)
	return admin
}
