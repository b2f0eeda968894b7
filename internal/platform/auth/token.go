// Package auth implements the cookie+JWT session layer and the one-time
// passcodes used for email verification and password reset.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired reports a well-formed session token past its expiry.
	ErrTokenExpired = errors.New("auth: token expired")
	// ErrTokenInvalid reports a malformed token or one whose signature does
	// not verify.
	ErrTokenInvalid = errors.New("auth: token invalid")
)

type sessionClaims struct {
	jwt.RegisteredClaims
}

// Tokens issues and verifies the signed session credentials carried by the
// browser cookie.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// TTL returns the validity window tokens are issued with.
func (t *Tokens) TTL() time.Duration { return t.ttl }

// Issue signs a session token for the given user. The token carries only the
// user id; everything else is looked up per request.
func (t *Tokens) Issue(userID string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses and validates a session token and returns the user id it was
// issued for. Expiry is reported as ErrTokenExpired so callers can tell a
// stale session apart from a forged or corrupted one.
func (t *Tokens) Verify(tokenStr string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrTokenSignatureInvalid),
			errors.Is(err, jwt.ErrTokenUnverifiable):
			return "", ErrTokenInvalid
		default:
			return "", err
		}
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}
