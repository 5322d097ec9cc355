// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity record of the system. It deliberately does not
// carry the password hash; credentials live on a separate Credential value so
// that the persistence entity never leaks into the security layer.
type User struct {
	ID        uint64    // Auto-generated numeric identifier, immutable after creation.
	Email     string    // Unique login identifier, stored exactly as provided.
	Name      string    // The user's display name.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}

// Credential is the thin authentication-side view of an account: only what the
// auth subsystem needs to verify a login or resolve a token subject.
type Credential struct {
	UserID       uint64 // The account this credential belongs to.
	Subject      string // The token subject (the account email).
	PasswordHash string // The bcrypt hash of the account password.
}
