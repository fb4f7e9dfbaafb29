package mapper

import (
	"github.com/softpaws/petstore-api/internal/domains/pets/domain"
)

// Tag is the HTTP representation of a pet tag.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Pet is the declared schema shared by the create body, the update body, and
// the response shape. Every required field is a pointer so the check is for
// key presence only: zero values like id 0 or an empty photoUrls array are
// legitimate payloads. Status stays a plain string because the enum check
// rejects the empty string anyway.
type Pet struct {
	ID        *int64    `json:"id" binding:"required"`
	Name      *string   `json:"name" binding:"required"`
	Category  *int64    `json:"category" binding:"required"`
	PhotoURLs *[]string `json:"photoUrls" binding:"required"`
	Tags      *[]Tag    `json:"tags" binding:"required"`
	Status    string    `json:"status" binding:"required,oneof=available pending sold"`
}

// FindByStatusQuery is the declared query schema for GET /pet/findByStatus.
type FindByStatusQuery struct {
	Status string `form:"status" binding:"required,oneof=available pending sold"`
}

// UpdateFieldsQuery is the declared query schema for POST /pet/:petid.
type UpdateFieldsQuery struct {
	Name   string `form:"name" binding:"required"`
	Status string `form:"status" binding:"required,oneof=available pending sold"`
}

// UploadImageQuery is the declared query schema for POST /pet/:petid/uploadImage.
type UploadImageQuery struct {
	Metadata *string `form:"metadata" binding:"required"`
}

// ToDomainPet maps a validated transport Pet into the domain aggregate.
func ToDomainPet(input Pet) (*domain.Pet, error) {
	var photos []string
	if input.PhotoURLs != nil {
		photos = *input.PhotoURLs
	}
	var tags []domain.Tag
	if input.Tags != nil {
		for _, t := range *input.Tags {
			tags = append(tags, domain.Tag{ID: t.ID, Name: t.Name})
		}
	}
	return domain.NewPet(int64Value(input.ID), stringValue(input.Name), int64Value(input.Category), photos, tags, domain.Status(input.Status))
}

// FromDomainPet converts a domain pet to the transport representation.
func FromDomainPet(pet *domain.Pet) Pet {
	if pet == nil {
		return Pet{}
	}
	id := pet.ID
	name := pet.Name
	category := pet.Category
	photos := append([]string{}, pet.PhotoURLs...)
	tags := make([]Tag, 0, len(pet.Tags))
	for _, t := range pet.Tags {
		tags = append(tags, Tag{ID: t.ID, Name: t.Name})
	}
	return Pet{
		ID:        &id,
		Name:      &name,
		Category:  &category,
		PhotoURLs: &photos,
		Tags:      &tags,
		Status:    string(pet.Status),
	}
}

// FromDomainPets converts a result set, keeping an empty (non-nil) slice for
// empty results.
func FromDomainPets(pets []*domain.Pet) []Pet {
	result := make([]Pet, 0, len(pets))
	for _, pet := range pets {
		result = append(result, FromDomainPet(pet))
	}
	return result
}

func int64Value(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func stringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
