// Package auth defines the interface for account and session operations
package auth

//go:generate mockgen -destination=mock/mock_service.go -package=authmock github.com/hearthforge/sheet-api/internal/services/auth Service

import (
	"context"
)

// Service defines the interface for account registration and login.
// Sessions are stateless JWTs; logout is client-side token discard.
type Service interface {
	// Register creates an account and returns a session token.
	// Returns errors.AlreadyExists if the username is taken
	// Returns errors.InvalidArgument for validation failures
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and returns a session token.
	// Returns errors.Unauthenticated when the username or password is
	// wrong; the two cases are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// VerifyToken checks a session token and returns the username it
	// was issued to.
	// Returns errors.Unauthenticated for invalid or expired tokens
	VerifyToken(ctx context.Context, input *VerifyTokenInput) (*VerifyTokenOutput, error)
}

// RegisterInput defines the request for creating an account
type RegisterInput struct {
	Username string
	Password string
}

// RegisterOutput defines the response for creating an account
type RegisterOutput struct {
	Username string
	Token    string
}

// LoginInput defines the request for logging in
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput defines the response for logging in
type LoginOutput struct {
	Username string
	Token    string
}

// VerifyTokenInput defines the request for verifying a session token
type VerifyTokenInput struct {
	Token string
}

// VerifyTokenOutput defines the response for verifying a session token
type VerifyTokenOutput struct {
	Username string
}
