package ports

import (
	"context"
	"errors"

	"github.com/softpaws/petstore-api/internal/domains/pets/domain"
)

var (
	ErrNotFound    = errors.New("pet not found")
	ErrDuplicateID = errors.New("pet id already exists")
)

// Repository persists pets in the PET collection. Insert enforces id
// uniqueness at the storage layer; the service-level existence check is only
// the fast path for a friendly error message.
type Repository interface {
	Insert(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	Update(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	GetByID(ctx context.Context, id int64) (*domain.Pet, error)
	Delete(ctx context.Context, id int64) error
	FindByStatus(ctx context.Context, status domain.Status) ([]*domain.Pet, error)
	FindByTags(ctx context.Context, tags []string) ([]*domain.Pet, error)
	CountByStatus(ctx context.Context) (map[domain.Status]int64, error)
}
