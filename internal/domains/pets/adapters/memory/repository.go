package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/softpaws/petstore-api/internal/domains/pets/domain"
	"github.com/softpaws/petstore-api/internal/domains/pets/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory pet persistence adapter for development and
// tests.
type Repository struct {
	mu   sync.RWMutex
	pets map[int64]*domain.Pet
}

func NewRepository() *Repository {
	return &Repository{pets: map[int64]*domain.Pet{}}
}

func clonePet(pet *domain.Pet) *domain.Pet {
	clone := *pet
	clone.PhotoURLs = append([]string{}, pet.PhotoURLs...)
	clone.Tags = append([]domain.Tag{}, pet.Tags...)
	return &clone
}

func (r *Repository) Insert(_ context.Context, pet *domain.Pet) (*domain.Pet, error) {
	if pet == nil {
		return nil, errors.New("pet is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pets[pet.ID]; ok {
		return nil, ports.ErrDuplicateID
	}
	clone := clonePet(pet)
	r.pets[clone.ID] = clone
	return clonePet(clone), nil
}

func (r *Repository) Update(_ context.Context, pet *domain.Pet) (*domain.Pet, error) {
	if pet == nil {
		return nil, errors.New("pet is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pets[pet.ID]; !ok {
		return nil, ports.ErrNotFound
	}
	clone := clonePet(pet)
	r.pets[clone.ID] = clone
	return clonePet(clone), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pet, ok := r.pets[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return clonePet(pet), nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pets[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.pets, id)
	return nil
}

func (r *Repository) FindByStatus(_ context.Context, status domain.Status) ([]*domain.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*domain.Pet, 0)
	for _, pet := range r.pets {
		if pet.Status == status {
			result = append(result, clonePet(pet))
		}
	}
	return result, nil
}

func (r *Repository) FindByTags(_ context.Context, tags []string) ([]*domain.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*domain.Pet, 0)
	for _, pet := range r.pets {
		if pet.HasAnyTag(tags) {
			result = append(result, clonePet(pet))
		}
	}
	return result, nil
}

func (r *Repository) CountByStatus(_ context.Context) (map[domain.Status]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := map[domain.Status]int64{}
	for _, pet := range r.pets {
		counts[pet.Status]++
	}
	return counts, nil
}

// CountPetsByStatus adapts the count view for the store inventory port.
func (r *Repository) CountPetsByStatus(ctx context.Context) (map[string]int64, error) {
	counts, err := r.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	result := make(map[string]int64, len(counts))
	for status, count := range counts {
		result[string(status)] = count
	}
	return result, nil
}
