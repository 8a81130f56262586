package main

import (
	"errors"
	"fmt"
)

// Failure kinds for token-based identity resolution. The HTTP layer
// collapses all of them into a single 401; they stay distinct here for
// logging.
var (
	ErrMissingCredential = errors.New("no credential presented")
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenExpired      = errors.New("token expired")
	ErrUnauthenticated   = errors.New("unauthenticated")
)

// resolveIdentity turns a raw bearer token into the current identity. The
// subject claim is re-resolved against the store on every call, so a
// deleted account stops resolving as soon as its next request arrives even
// though the token itself stays signed and unexpired.
func resolveIdentity(raw string, tc tokenConfig, lookup EmailLookup) (*User, error) {
	if raw == "" {
		return nil, ErrMissingCredential
	}
	claims, err := verifyToken(raw, tc.secret, tc.method)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	user, err := lookup(claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: subject %q no longer resolves", ErrUnauthenticated, claims.Subject)
	}
	return user, nil
}
