package ports

import (
	"context"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
)

type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	// AssignRole parses and persists the target role for the user. Only the
	// user themself or an admin may act; the raw role string is rejected with
	// domain.ErrInvalidRole before any mutation.
	AssignRole(ctx context.Context, actor *domain.User, targetID, rawRole string) (*domain.User, error)
	SetVerified(ctx context.Context, actor *domain.User, targetID string, verified bool) (*domain.User, error)
	List(ctx context.Context, actor *domain.User, roleFilter string) ([]domain.User, error)
}
