package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
	"github.com/UtsavYadav1/empowerher/internal/core/ports"
)

// WorkshopService implements workshop management and registration. Admins
// and field agents organise; girls and women register.
type WorkshopService struct {
	workshops ports.WorkshopRepository
	logger    zerolog.Logger
}

func NewWorkshopService(workshops ports.WorkshopRepository, logger zerolog.Logger) *WorkshopService {
	return &WorkshopService{workshops: workshops, logger: logger}
}

func (s *WorkshopService) Create(ctx context.Context, actor *domain.User, in ports.WorkshopInput) (*domain.Workshop, error) {
	if !canAuthorContent(actor) {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	workshop := &domain.Workshop{
		Title:       in.Title,
		Description: in.Description,
		Village:     in.Village,
		Date:        in.Date,
		Capacity:    in.Capacity,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.workshops.Create(ctx, workshop)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create workshop")
		return nil, err
	}
	return created, nil
}

func (s *WorkshopService) Get(ctx context.Context, id string) (*domain.Workshop, error) {
	return s.workshops.FindByID(ctx, id)
}

func (s *WorkshopService) Update(ctx context.Context, actor *domain.User, id string, in ports.WorkshopInput) (*domain.Workshop, error) {
	if !canAuthorContent(actor) {
		return nil, domain.ErrForbidden
	}

	existing, err := s.workshops.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = in.Title
	existing.Description = in.Description
	existing.Village = in.Village
	existing.Date = in.Date
	existing.Capacity = in.Capacity
	existing.UpdatedAt = time.Now().UTC()

	return s.workshops.Update(ctx, existing)
}

func (s *WorkshopService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if !canAuthorContent(actor) {
		return domain.ErrForbidden
	}
	return s.workshops.Delete(ctx, id)
}

func (s *WorkshopService) List(ctx context.Context, village string) ([]domain.Workshop, error) {
	return s.workshops.List(ctx, village)
}

// Register signs the acting girl or woman up for a workshop. Registering
// twice fails; a finite-capacity workshop rejects sign-ups once full.
func (s *WorkshopService) Register(ctx context.Context, actor *domain.User, workshopID string) (*domain.Registration, error) {
	if actor.Role != domain.RoleGirl && actor.Role != domain.RoleWoman {
		return nil, domain.ErrForbidden
	}

	workshop, err := s.workshops.FindByID(ctx, workshopID)
	if err != nil {
		return nil, err
	}

	if _, err := s.workshops.FindRegistration(ctx, workshopID, actor.ID); err == nil {
		return nil, domain.ErrAlreadyRegistered
	} else if !errors.Is(err, domain.ErrRegistrationNotFound) {
		return nil, err
	}

	if workshop.Capacity > 0 {
		count, err := s.workshops.CountRegistrations(ctx, workshopID)
		if err != nil {
			return nil, err
		}
		if count >= workshop.Capacity {
			return nil, domain.ErrWorkshopFull
		}
	}

	reg := &domain.Registration{
		WorkshopID: workshopID,
		UserID:     actor.ID,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.workshops.AddRegistration(ctx, reg)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("workshop_id", workshopID).
		Str("user_id", actor.ID).
		Msg("workshop registration")
	return created, nil
}

func (s *WorkshopService) ListRegistrations(ctx context.Context, actor *domain.User, workshopID string) ([]domain.Registration, error) {
	if !canAuthorContent(actor) {
		return nil, domain.ErrForbidden
	}
	if _, err := s.workshops.FindByID(ctx, workshopID); err != nil {
		return nil, err
	}
	return s.workshops.ListRegistrations(ctx, workshopID)
}
