package ports

import (
	"context"

	"github.com/softpaws/petstore-api/internal/domains/pets/domain"
)

// Service is the pets use-case surface consumed by transport adapters and
// decorators.
type Service interface {
	Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	Update(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	GetByID(ctx context.Context, id int64) (*domain.Pet, error)
	FindByStatus(ctx context.Context, status domain.Status) ([]*domain.Pet, error)
	FindByTags(ctx context.Context, tags []string) ([]*domain.Pet, error)
	UpdateFields(ctx context.Context, id int64, name string, status domain.Status) (*domain.Pet, error)
	Delete(ctx context.Context, id int64) error
	AddPhoto(ctx context.Context, id int64, url string) (*domain.Pet, error)
}
