package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/jrsteele09/go-customer-portal/internal/errors"
)

// CookieName is the name of the single session cookie issued to browsers
const CookieName = "portal_session"

// CookieCodec signs session identifiers into tamper-evident cookie values
// and verifies them on the way back in. The cookie carries only the opaque
// session ID as an HS256-signed token; all session data stays server-side.
type CookieCodec struct {
	secret []byte
	secure bool
}

func NewCookieCodec(secret []byte, secure bool) *CookieCodec {
	return &CookieCodec{secret: secret, secure: secure}
}

// Encode signs a session ID into a cookie value with a 24 hour expiry
func (c *CookieCodec) Encode(sessionID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(TTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", apperrors.Wrapf(err, "cookie encode")
	}
	return signed, nil
}

// Decode verifies a cookie value and returns the session ID it carries
func (c *CookieCodec) Decode(value string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(value, claims, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", apperrors.Wrapf(apperrors.ErrInvalidCookie, "cookie decode: %v", err)
	}
	if claims.Subject == "" {
		return "", apperrors.ErrInvalidCookie
	}
	return claims.Subject, nil
}

// Set writes the session cookie. The Secure attribute follows the
// production flag rather than the inbound request scheme, matching a
// portal deployed behind TLS termination.
func (c *CookieCodec) Set(w http.ResponseWriter, sessionID string) error {
	value, err := c.Encode(sessionID)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(TTL.Seconds()),
	})
	return nil
}

// Clear expires the session cookie
func (c *CookieCodec) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// Read extracts and verifies the session ID from an inbound request
func (c *CookieCodec) Read(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", apperrors.ErrSessionNotFound
	}
	return c.Decode(cookie.Value)
}
