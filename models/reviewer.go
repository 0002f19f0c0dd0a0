package models

import (
	"time"

	"github.com/google/uuid"
)

// Reviewer represents a product/legal reviewer account
type Reviewer struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}
