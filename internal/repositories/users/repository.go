// Package users provides the interface for account persistence
package users

import (
	"context"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=usersmock github.com/hearthforge/sheet-api/internal/repositories/users Repository

// User is a stored account record. PasswordHash is a bcrypt hash; the
// plaintext password is never persisted.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	CreatedAt    int64  `json:"createdAt"`
}

// Repository defines the interface for account persistence.
type Repository interface {
	// Create stores a new account.
	// Returns errors.AlreadyExists if the username is taken
	// Returns errors.InvalidArgument for validation failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an account by username.
	// Returns errors.NotFound if no such account exists
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// CreateInput defines the input for creating an account
type CreateInput struct {
	User *User
}

// CreateOutput defines the output for creating an account
type CreateOutput struct {
	User *User
}

// GetInput defines the input for fetching an account
type GetInput struct {
	Username string
}

// GetOutput defines the output for fetching an account
type GetOutput struct {
	User *User
}
