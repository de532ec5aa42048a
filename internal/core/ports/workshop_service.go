package ports

import (
	"context"
	"time"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
)

// WorkshopInput carries the editable fields of a workshop.
type WorkshopInput struct {
	Title       string
	Description string
	Village     string
	Date        time.Time
	Capacity    int
}

type WorkshopService interface {
	Create(ctx context.Context, actor *domain.User, in WorkshopInput) (*domain.Workshop, error)
	Get(ctx context.Context, id string) (*domain.Workshop, error)
	Update(ctx context.Context, actor *domain.User, id string, in WorkshopInput) (*domain.Workshop, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
	List(ctx context.Context, village string) ([]domain.Workshop, error)
	// Register signs the acting girl or woman up for a workshop. A second
	// registration fails with domain.ErrAlreadyRegistered; a full workshop
	// fails with domain.ErrWorkshopFull.
	Register(ctx context.Context, actor *domain.User, workshopID string) (*domain.Registration, error)
	ListRegistrations(ctx context.Context, actor *domain.User, workshopID string) ([]domain.Registration, error)
}
