package ports

import (
	"context"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
)

// WorkshopRepository defines persistence for workshops and their registrations.
type WorkshopRepository interface {
	Create(ctx context.Context, w *domain.Workshop) (*domain.Workshop, error)
	FindByID(ctx context.Context, id string) (*domain.Workshop, error)
	Update(ctx context.Context, w *domain.Workshop) (*domain.Workshop, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, village string) ([]domain.Workshop, error)

	AddRegistration(ctx context.Context, r *domain.Registration) (*domain.Registration, error)
	FindRegistration(ctx context.Context, workshopID, userID string) (*domain.Registration, error)
	CountRegistrations(ctx context.Context, workshopID string) (int, error)
	ListRegistrations(ctx context.Context, workshopID string) ([]domain.Registration, error)
}
