package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
	"github.com/UtsavYadav1/empowerher/internal/core/ports"
)

// TutorialService implements educational content management. Admins and
// field agents author content; listings are scoped to the viewer's role.
type TutorialService struct {
	tutorials ports.TutorialRepository
	logger    zerolog.Logger
}

func NewTutorialService(tutorials ports.TutorialRepository, logger zerolog.Logger) *TutorialService {
	return &TutorialService{tutorials: tutorials, logger: logger}
}

func (s *TutorialService) Create(ctx context.Context, actor *domain.User, in ports.TutorialInput) (*domain.Tutorial, error) {
	if !canAuthorContent(actor) {
		return nil, domain.ErrForbidden
	}

	audience, err := parseAudience(in.Audience)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tutorial := &domain.Tutorial{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		VideoURL:    in.VideoURL,
		Audience:    audience,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.tutorials.Create(ctx, tutorial)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create tutorial")
		return nil, err
	}
	return created, nil
}

func (s *TutorialService) Get(ctx context.Context, id string) (*domain.Tutorial, error) {
	return s.tutorials.FindByID(ctx, id)
}

func (s *TutorialService) Update(ctx context.Context, actor *domain.User, id string, in ports.TutorialInput) (*domain.Tutorial, error) {
	if !canAuthorContent(actor) {
		return nil, domain.ErrForbidden
	}

	audience, err := parseAudience(in.Audience)
	if err != nil {
		return nil, err
	}

	existing, err := s.tutorials.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = in.Title
	existing.Description = in.Description
	existing.Category = in.Category
	existing.VideoURL = in.VideoURL
	existing.Audience = audience
	existing.UpdatedAt = time.Now().UTC()

	return s.tutorials.Update(ctx, existing)
}

func (s *TutorialService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if !canAuthorContent(actor) {
		return domain.ErrForbidden
	}
	return s.tutorials.Delete(ctx, id)
}

// List returns tutorials aimed at the actor's role plus unscoped ones.
// Admins and field agents see everything.
func (s *TutorialService) List(ctx context.Context, actor *domain.User, category string) ([]domain.Tutorial, error) {
	f := ports.TutorialFilter{Category: category}
	if !canAuthorContent(actor) {
		f.Audience = actor.Role
	}
	return s.tutorials.List(ctx, f)
}

func canAuthorContent(actor *domain.User) bool {
	return actor.Role == domain.RoleAdmin || actor.Role == domain.RoleFieldAgent
}

// parseAudience accepts an empty audience (visible to everyone) or any
// valid role.
func parseAudience(raw string) (domain.Role, error) {
	if raw == "" {
		return domain.RoleNone, nil
	}
	return domain.ParseRole(raw)
}
