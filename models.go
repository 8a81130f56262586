package main

import "time"

// User is an immutable snapshot of an identity row. The core never mutates
// one; every lookup returns a fresh copy scoped to the request.
type User struct {
	ID             int64
	Email          string
	HashedPassword string
	FullName       string
	CreatedAt      time.Time
}
