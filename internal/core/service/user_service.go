package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
	"github.com/UtsavYadav1/empowerher/internal/core/ports"
)

// UserService implements profile reads and the role-assignment transition.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// AssignRole performs the no-role → has-role transition. The raw role string
// is parsed once, case-insensitively; unknown values fail before any
// mutation. Only the user themself or an admin may act. The persisted update
// is last-write-wins with no version check.
func (s *UserService) AssignRole(ctx context.Context, actor *domain.User, targetID, rawRole string) (*domain.User, error) {
	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return nil, err
	}

	if actor.ID != targetID && actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	updated, err := s.users.UpdateRole(ctx, targetID, role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", targetID).
		Str("role", string(role)).
		Str("actor_id", actor.ID).
		Msg("role assigned")
	return updated, nil
}

// SetVerified toggles the administrative verification flag. Admin only; the
// flag does not gate login.
func (s *UserService) SetVerified(ctx context.Context, actor *domain.User, targetID string, verified bool) (*domain.User, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return s.users.SetVerified(ctx, targetID, verified)
}

// List returns all users, optionally filtered by role. Admin only.
func (s *UserService) List(ctx context.Context, actor *domain.User, roleFilter string) ([]domain.User, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	role := domain.RoleNone
	if roleFilter != "" {
		parsed, err := domain.ParseRole(roleFilter)
		if err != nil {
			return nil, err
		}
		role = parsed
	}
	return s.users.List(ctx, role)
}
