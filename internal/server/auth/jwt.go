// Package auth implements the token codec and password hashing used by the
// catalog service: HS256-signed, time-bound identity tokens and bcrypt
// digests for stored credentials.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/andrejsk/prodcatalog/internal/common"
)

// DefaultTokenValidity mirrors the catalog API default of 30 days.
const DefaultTokenValidity = 30 * 24 * time.Hour

// Claims includes the standard registered claims plus the subject user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// Codec issues and parses signed identity tokens. The signing secret and
// validity window are fixed at construction; the clock is a field so expiry
// behaviour can be tested deterministically.
type Codec struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

// NewCodec returns a Codec signing with secret. An empty secret is a fatal
// configuration error and is rejected here so the process fails at startup,
// not per-request. A non-positive validity falls back to DefaultTokenValidity.
func NewCodec(secret []byte, validity time.Duration) (*Codec, error) {
	if len(secret) == 0 {
		return nil, common.ErrorInternal
	}
	if validity <= 0 {
		validity = DefaultTokenValidity
	}
	return &Codec{secret: secret, validity: validity, now: time.Now}, nil
}

// Issue creates a token asserting "the bearer is userID" until now+validity.
func (c *Codec) Issue(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(c.now()),
			ExpiresAt: jwt.NewNumericDate(c.now().Add(c.validity)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Parse verifies the signature and expiry of tokenString and returns the
// embedded user id. Expired tokens yield common.ErrTokenExpired; any other
// failure (malformed input, bad signature, missing subject) yields
// common.ErrInvalidToken.
func (c *Codec) Parse(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(c.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
