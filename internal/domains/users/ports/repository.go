package ports

import (
	"context"
	"errors"

	"github.com/softpaws/petstore-api/internal/domains/users/domain"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrDuplicateID        = errors.New("user id already exists")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("password is incorrect")
)

// Repository persists users in the USER collection. Both the id primary key
// and the username unique index are enforced by the storage layer.
type Repository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	InsertBatch(ctx context.Context, users []*domain.User) ([]*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*domain.User, error)
	FindByUsernames(ctx context.Context, usernames []string) ([]*domain.User, error)
	Update(ctx context.Context, username string, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, username string) error
}
