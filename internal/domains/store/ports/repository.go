package ports

import (
	"context"
	"errors"

	"github.com/softpaws/petstore-api/internal/domains/store/domain"
)

var (
	ErrNotFound    = errors.New("order not found")
	ErrDuplicateID = errors.New("order id already exists")
)

// Repository persists orders in the ORDER collection.
type Repository interface {
	Insert(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
}

// PetInventory exposes the pet status counts the inventory summary is built
// from. It is implemented by the pets repository adapters so the store
// context never depends on the pets controller.
type PetInventory interface {
	CountPetsByStatus(ctx context.Context) (map[string]int64, error)
}
