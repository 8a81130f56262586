package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims is the claim set carried by an access token: the subject
// (the identity's email) plus expiry and issued-at.
type sessionClaims struct {
	jwt.RegisteredClaims
}

// tokenConfig holds the process-wide signing parameters. Loaded once at
// startup and never mutated afterwards.
type tokenConfig struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// signingMethod maps a configured algorithm name onto an HMAC signing
// method. Only the HMAC-SHA family is accepted.
func signingMethod(name string) (jwt.SigningMethod, error) {
	switch name {
	case "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	}
	return nil, fmt.Errorf("unsupported signing algorithm: %s", name)
}

// issueToken builds a claim set for subject expiring ttl from now and signs
// it. Errors here are internal (bad key material), never user input.
func issueToken(subject string, ttl time.Duration, secret []byte, method jwt.SigningMethod) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(method, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(secret)
}

// verifyToken decodes raw, checks the signature under secret/method and
// the expiry, and returns the claims. Expiry is reported as ErrTokenExpired
// so callers can log it apart from tampering; everything else that fails to
// parse, verify, or carry a subject is ErrInvalidToken.
func verifyToken(raw string, secret []byte, method jwt.SigningMethod) (*sessionClaims, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != method.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject claim", ErrInvalidToken)
	}
	return claims, nil
}

// issueSession mints a bearer token for an already-authenticated subject.
// It does not re-verify credentials; the caller vouches for the subject.
func (tc tokenConfig) issueSession(email string) (string, error) {
	return issueToken(email, tc.ttl, tc.secret, tc.method)
}
