package ports

import (
	"context"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
)

// UserRepository defines persistence for user records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateRole is a last-write-wins role overwrite with no version check.
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	SetVerified(ctx context.Context, id string, verified bool) (*domain.User, error)
	// List returns all users, optionally filtered by role.
	List(ctx context.Context, role domain.Role) ([]domain.User, error)
}
