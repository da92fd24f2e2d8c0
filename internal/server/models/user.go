package models

import "time"

// User is the persisted identity record. PasswordHash is excluded from JSON
// so it can never appear in an outward-facing response.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
