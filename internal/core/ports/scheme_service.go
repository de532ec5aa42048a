package ports

import (
	"context"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
)

// SchemeInput carries the editable fields of a scheme entry.
type SchemeInput struct {
	Name        string
	Description string
	Category    string
	Eligibility string
	ApplyURL    string
}

type SchemeService interface {
	Create(ctx context.Context, actor *domain.User, in SchemeInput) (*domain.Scheme, error)
	Get(ctx context.Context, id string) (*domain.Scheme, error)
	Update(ctx context.Context, actor *domain.User, id string, in SchemeInput) (*domain.Scheme, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
	List(ctx context.Context, category string) ([]domain.Scheme, error)
}
