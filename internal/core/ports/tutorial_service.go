package ports

import (
	"context"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
)

// TutorialInput carries the editable fields of a tutorial.
type TutorialInput struct {
	Title       string
	Description string
	Category    string
	VideoURL    string
	Audience    string
}

type TutorialService interface {
	Create(ctx context.Context, actor *domain.User, in TutorialInput) (*domain.Tutorial, error)
	Get(ctx context.Context, id string) (*domain.Tutorial, error)
	Update(ctx context.Context, actor *domain.User, id string, in TutorialInput) (*domain.Tutorial, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
	// List returns tutorials visible to the actor's role plus unscoped ones.
	List(ctx context.Context, actor *domain.User, category string) ([]domain.Tutorial, error)
}
