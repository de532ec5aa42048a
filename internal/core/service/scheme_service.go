package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
	"github.com/UtsavYadav1/empowerher/internal/core/ports"
)

// SchemeService implements government scheme discovery. Admin-managed;
// listings are open to every authenticated role.
type SchemeService struct {
	schemes ports.SchemeRepository
	logger  zerolog.Logger
}

func NewSchemeService(schemes ports.SchemeRepository, logger zerolog.Logger) *SchemeService {
	return &SchemeService{schemes: schemes, logger: logger}
}

func (s *SchemeService) Create(ctx context.Context, actor *domain.User, in ports.SchemeInput) (*domain.Scheme, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	category, ok := domain.ParseSchemeCategory(in.Category)
	if !ok {
		return nil, domain.ErrInvalidCategory
	}

	now := time.Now().UTC()
	scheme := &domain.Scheme{
		Name:        in.Name,
		Description: in.Description,
		Category:    category,
		Eligibility: in.Eligibility,
		ApplyURL:    in.ApplyURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.schemes.Create(ctx, scheme)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create scheme")
		return nil, err
	}
	return created, nil
}

func (s *SchemeService) Get(ctx context.Context, id string) (*domain.Scheme, error) {
	return s.schemes.FindByID(ctx, id)
}

func (s *SchemeService) Update(ctx context.Context, actor *domain.User, id string, in ports.SchemeInput) (*domain.Scheme, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	category, ok := domain.ParseSchemeCategory(in.Category)
	if !ok {
		return nil, domain.ErrInvalidCategory
	}

	existing, err := s.schemes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.Category = category
	existing.Eligibility = in.Eligibility
	existing.ApplyURL = in.ApplyURL
	existing.UpdatedAt = time.Now().UTC()

	return s.schemes.Update(ctx, existing)
}

func (s *SchemeService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return s.schemes.Delete(ctx, id)
}

func (s *SchemeService) List(ctx context.Context, category string) ([]domain.Scheme, error) {
	if category == "" {
		return s.schemes.List(ctx, "")
	}
	parsed, ok := domain.ParseSchemeCategory(category)
	if !ok {
		return nil, domain.ErrInvalidCategory
	}
	return s.schemes.List(ctx, parsed)
}
