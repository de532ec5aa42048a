package ports

import (
	"context"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
)

// TutorialFilter narrows tutorial listings.
type TutorialFilter struct {
	Category string
	Audience domain.Role
}

// TutorialRepository defines persistence for educational content.
type TutorialRepository interface {
	Create(ctx context.Context, t *domain.Tutorial) (*domain.Tutorial, error)
	FindByID(ctx context.Context, id string) (*domain.Tutorial, error)
	Update(ctx context.Context, t *domain.Tutorial) (*domain.Tutorial, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f TutorialFilter) ([]domain.Tutorial, error)
}
