package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/softpaws/petstore-api/internal/domains/pets/domain"
	"github.com/softpaws/petstore-api/internal/domains/pets/ports"
)

// Service orchestrates the pets bounded context use cases.
type Service struct {
	repo ports.Repository
}

// NewService wires the pets service with its dependencies.
func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// Create inserts a new pet, rejecting ids that are already taken. The
// existence read is the fast path; the repository enforces the constraint.
func (s *Service) Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	if pet == nil {
		return nil, errors.New("pet is nil")
	}
	if _, err := s.repo.GetByID(ctx, pet.ID); err == nil {
		return nil, fmt.Errorf("%w: pet id %d", ports.ErrDuplicateID, pet.ID)
	} else if !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}
	return s.repo.Insert(ctx, pet)
}

// Update replaces the stored fields of an existing pet and echoes the
// submitted state back.
func (s *Service) Update(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	if pet == nil {
		return nil, errors.New("pet is nil")
	}
	if _, err := s.repo.GetByID(ctx, pet.ID); err != nil {
		return nil, err
	}
	if _, err := s.repo.Update(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// GetByID loads a single pet.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Pet, error) {
	return s.repo.GetByID(ctx, id)
}

// FindByStatus returns every pet in the given lifecycle state. An empty
// result is not an error.
func (s *Service) FindByStatus(ctx context.Context, status domain.Status) ([]*domain.Pet, error) {
	return s.repo.FindByStatus(ctx, status)
}

// FindByTags returns pets carrying at least one of the supplied tag names.
func (s *Service) FindByTags(ctx context.Context, tags []string) ([]*domain.Pet, error) {
	return s.repo.FindByTags(ctx, tags)
}

// UpdateFields applies the name/status form update and returns the
// freshly-read post-update record.
func (s *Service) UpdateFields(ctx context.Context, id int64, name string, status domain.Status) (*domain.Pet, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := existing.Rename(name); err != nil {
		return nil, err
	}
	if err := existing.UpdateStatus(status); err != nil {
		return nil, err
	}
	if _, err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete removes a pet, failing when the id is absent.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// AddPhoto appends a photo url to an existing pet, rejecting urls that are
// already attached.
func (s *Service) AddPhoto(ctx context.Context, id int64, url string) (*domain.Pet, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := existing.AddPhotoURL(url); err != nil {
		return nil, fmt.Errorf("%w: pet %d", err, id)
	}
	return s.repo.Update(ctx, existing)
}

var _ ports.Service = (*Service)(nil)
