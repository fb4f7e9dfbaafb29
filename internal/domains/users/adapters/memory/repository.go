package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/softpaws/petstore-api/internal/domains/users/domain"
	"github.com/softpaws/petstore-api/internal/domains/users/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory user persistence adapter keeping both unique
// keys consistent.
type Repository struct {
	mu     sync.RWMutex
	byID   map[int64]*domain.User
	byName map[string]*domain.User
}

func NewRepository() *Repository {
	return &Repository{
		byID:   map[int64]*domain.User{},
		byName: map[string]*domain.User{},
	}
}

func (r *Repository) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insertLocked(user)
}

func (r *Repository) insertLocked(user *domain.User) (*domain.User, error) {
	if _, ok := r.byID[user.ID]; ok {
		return nil, ports.ErrDuplicateID
	}
	if _, ok := r.byName[user.Username]; ok {
		return nil, ports.ErrDuplicateUsername
	}
	clone := *user
	r.byID[clone.ID] = &clone
	r.byName[clone.Username] = &clone
	copy := clone
	return &copy, nil
}

// InsertBatch inserts users one by one, mirroring the document-store bulk
// insert: earlier rows stay persisted if a later one clashes.
func (r *Repository) InsertBatch(_ context.Context, users []*domain.User) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	saved := make([]*domain.User, 0, len(users))
	for _, user := range users {
		if user == nil {
			return saved, errors.New("user is nil")
		}
		persisted, err := r.insertLocked(user)
		if err != nil {
			return saved, err
		}
		saved = append(saved, persisted)
	}
	return saved, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *Repository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byName[username]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *Repository) FindByIDs(_ context.Context, ids []int64) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*domain.User, 0)
	for _, id := range ids {
		if user, ok := r.byID[id]; ok {
			clone := *user
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *Repository) FindByUsernames(_ context.Context, usernames []string) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*domain.User, 0)
	for _, username := range usernames {
		if user, ok := r.byName[username]; ok {
			clone := *user
			result = append(result, &clone)
		}
	}
	return result, nil
}

// Update replaces the record addressed by username with the supplied state,
// re-keying when the payload carries a different username.
func (r *Repository) Update(_ context.Context, username string, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byName[username]
	if !ok {
		return nil, ports.ErrNotFound
	}
	delete(r.byName, existing.Username)
	delete(r.byID, existing.ID)
	clone := *user
	r.byID[clone.ID] = &clone
	r.byName[clone.Username] = &clone
	copy := clone
	return &copy, nil
}

func (r *Repository) Delete(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byName[username]
	if !ok {
		return ports.ErrNotFound
	}
	delete(r.byName, existing.Username)
	delete(r.byID, existing.ID)
	return nil
}
