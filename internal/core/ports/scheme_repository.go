package ports

import (
	"context"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
)

// SchemeRepository defines persistence for government schemes.
type SchemeRepository interface {
	Create(ctx context.Context, s *domain.Scheme) (*domain.Scheme, error)
	FindByID(ctx context.Context, id string) (*domain.Scheme, error)
	Update(ctx context.Context, s *domain.Scheme) (*domain.Scheme, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, category domain.SchemeCategory) ([]domain.Scheme, error)
}
