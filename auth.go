package main

import (
	"golang.org/x/crypto/bcrypt"
)

// EmailLookup is the narrow capability the credential verifier and the
// identity resolver need from the user store: a point lookup by email.
// A nil User with a nil error means "no such identity".
type EmailLookup func(email string) (*User, error)

func hashPassword(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
	return string(b), err
}

// comparePassword reports whether p matches the stored hash. Malformed
// hashes count as a mismatch rather than an error.
func comparePassword(hash, p string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(p)) == nil
}

// authenticate verifies an email/password pair against the store. It
// returns nil for an unknown email and for a wrong password alike; callers
// must not be able to tell the two apart.
func authenticate(email, password string, lookup EmailLookup) (*User, error) {
	user, err := lookup(email)
	if err != nil {
		return nil, err
	}
	if user == nil || !comparePassword(user.HashedPassword, password) {
		return nil, nil
	}
	return user, nil
}
