package models

// UserDB represents an account row in the users table
type UserDB struct {
	Username     string `db:"username"` // Primary key, immutable
	PasswordHash string `db:"password"` // bcrypt hash, never the plaintext
}
