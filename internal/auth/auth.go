// Package auth verifies bearer tokens and carries the resulting identity
// through the request. Bookings require an identity whose email passes the
// allow-list check; token issuance belongs to the identity provider, with
// Sign kept around for tests and tooling.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Identity is the authenticated caller passed into the booking boundary.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

// Verifier checks token signatures and applies the email allow-list.
// Empty allow-lists admit any authenticated email.
type Verifier struct {
	secret         []byte
	allowedEmails  map[string]struct{}
	allowedDomains []string
}

func NewVerifier(secret string, allowedEmails, allowedDomains []string) *Verifier {
	emails := make(map[string]struct{}, len(allowedEmails))
	for _, e := range allowedEmails {
		emails[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}
	return &Verifier{
		secret:         []byte(secret),
		allowedEmails:  emails,
		allowedDomains: allowedDomains,
	}
}

// Verify parses an HS256 token and returns the identity it carries.
// The subject claim holds the email.
func (v *Verifier) Verify(token string) (Identity, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}
	if c.Subject == "" {
		return Identity{}, ErrInvalidToken
	}
	return Identity{Email: c.Subject, Name: c.Name}, nil
}

// Allowed reports whether the email may create bookings.
func (v *Verifier) Allowed(email string) bool {
	if len(v.allowedEmails) == 0 && len(v.allowedDomains) == 0 {
		return true
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if _, ok := v.allowedEmails[email]; ok {
		return true
	}
	for _, domain := range v.allowedDomains {
		if strings.HasSuffix(email, strings.ToLower(strings.TrimSpace(domain))) {
			return true
		}
	}
	return false
}

// Sign issues a token for the given identity.
func Sign(secret, email, name string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString([]byte(secret))
}

const identityContextKey = "identity"

// Store attaches the identity to the echo request context.
func Store(c echo.Context, ident Identity) {
	c.Set(identityContextKey, ident)
}

// From retrieves the identity set by the auth middleware.
func From(c echo.Context) (Identity, bool) {
	ident, ok := c.Get(identityContextKey).(Identity)
	return ident, ok
}
