// Package models defines plain data records persisted by the server.
// Records carry no behavior; all operations live in repositories and services.
package models

// User is a registered account. PasswordHash is a bcrypt hash, never the
// plaintext password.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}
