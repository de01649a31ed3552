package entity

import "time"

// User is an account holder. PasswordHash is a bcrypt hash; handlers must
// map users through response DTOs so the hash never leaves the process.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	PasswordHash string    `json:"password_hash,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
