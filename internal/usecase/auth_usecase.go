// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"pixelforge/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	User        *entity.User
}

// LogoutStatus is the outcome reported by Logout.
type LogoutStatus string

const (
	LogoutSuccess LogoutStatus = "Success"
	LogoutFailed  LogoutStatus = "Failed"
)

// LogoutOutput is the soft result of a logout.
type LogoutOutput struct {
	Status  LogoutStatus
	Message string
}

// AuthUsecase defines registration, login, logout and token authentication.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	// Logout revokes token. Unknown, expired or already revoked tokens produce a
	// Failed result, not an error.
	Logout(ctx context.Context, token string) (*LogoutOutput, error)
	// Authenticate resolves a bearer token to the caller's session.
	Authenticate(ctx context.Context, token string) (*entity.Session, error)
}
