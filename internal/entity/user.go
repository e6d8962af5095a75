package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account created through the signup form.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
