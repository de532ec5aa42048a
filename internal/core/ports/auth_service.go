package ports

import (
	"context"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
)

// RegisterInput carries the fields accepted at account creation.
// Role is intentionally absent: a fresh registration never auto-assigns one.
type RegisterInput struct {
	Name     string
	Phone    string
	Email    string
	Password string
	Village  string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login authenticates by phone or email and mints a bearer session.
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)
	// Logout revokes the server-side session for the token.
	Logout(ctx context.Context, token string) error
}
