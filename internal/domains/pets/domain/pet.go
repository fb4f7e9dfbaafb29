package domain

import (
	"errors"
	"strings"
)

// Status represents the lifecycle state of a pet inside the store catalog.
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusSold      Status = "sold"
)

// Statuses lists every valid lifecycle state. Inventory reporting zero-fills
// from this set.
var Statuses = []Status{StatusAvailable, StatusPending, StatusSold}

// IsValidStatus reports whether the value belongs to the status enum.
func IsValidStatus(status Status) bool {
	switch status {
	case StatusAvailable, StatusPending, StatusSold:
		return true
	default:
		return false
	}
}

// Tag is a lightweight marker attached to pets for filtering.
type Tag struct {
	ID   int64
	Name string
}

var (
	ErrEmptyName         = errors.New("pet name is required")
	ErrInvalidStatus     = errors.New("pet status is invalid")
	ErrDuplicatePhotoURL = errors.New("photo url already present")
)

// Pet is the aggregate managed by the pets bounded context. Category is a
// plain integer reference; it is not resolved against a category table.
type Pet struct {
	ID        int64
	Name      string
	Category  int64
	PhotoURLs []string
	Tags      []Tag
	Status    Status
}

// NewPet validates the invariants and builds a new Pet aggregate.
func NewPet(id int64, name string, category int64, photoURLs []string, tags []Tag, status Status) (*Pet, error) {
	p := &Pet{ID: id, Category: category}
	if err := p.Rename(name); err != nil {
		return nil, err
	}
	if err := p.UpdateStatus(status); err != nil {
		return nil, err
	}
	p.ReplacePhotos(photoURLs)
	p.ReplaceTags(tags)
	return p, nil
}

// Rename mutates the pet name ensuring the invariant.
func (p *Pet) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	p.Name = name
	return nil
}

// UpdateStatus accepts only known lifecycle values.
func (p *Pet) UpdateStatus(status Status) error {
	if !IsValidStatus(status) {
		return ErrInvalidStatus
	}
	p.Status = status
	return nil
}

// ReplacePhotos swaps the ordered photo URL sequence. An empty sequence is
// valid for a freshly created pet.
func (p *Pet) ReplacePhotos(urls []string) {
	p.PhotoURLs = append([]string{}, urls...)
}

// ReplaceTags swaps the current tag set.
func (p *Pet) ReplaceTags(tags []Tag) {
	p.Tags = append([]Tag{}, tags...)
}

// HasPhotoURL reports whether the url is already attached.
func (p *Pet) HasPhotoURL(url string) bool {
	for _, existing := range p.PhotoURLs {
		if existing == url {
			return true
		}
	}
	return false
}

// AddPhotoURL appends a photo url, rejecting duplicates.
func (p *Pet) AddPhotoURL(url string) error {
	if p.HasPhotoURL(url) {
		return ErrDuplicatePhotoURL
	}
	p.PhotoURLs = append(p.PhotoURLs, url)
	return nil
}

// HasAnyTag reports whether at least one of the supplied tag names matches.
func (p *Pet) HasAnyTag(names []string) bool {
	for _, tag := range p.Tags {
		for _, name := range names {
			if tag.Name == name {
				return true
			}
		}
	}
	return false
}
