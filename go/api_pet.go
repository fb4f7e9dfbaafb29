package petstoreserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/softpaws/petstore-api/internal/domains/pets/adapters/http/mapper"
	"github.com/softpaws/petstore-api/internal/domains/pets/domain"
	"github.com/softpaws/petstore-api/internal/domains/pets/ports"
)

// PetAPI exposes the pet resource over HTTP.
type PetAPI struct {
	Service ports.Service
}

// NewPetAPI builds the pet handler group.
func NewPetAPI(service ports.Service) PetAPI {
	return PetAPI{Service: service}
}

// AddPet handles POST /pet.
func (api PetAPI) AddPet(c *gin.Context) {
	var body mapper.Pet
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, err.Error())
		return
	}
	pet, err := mapper.ToDomainPet(body)
	if err != nil {
		respondValidation(c, err.Error())
		return
	}
	created, err := api.Service.Create(c.Request.Context(), pet)
	if err != nil {
		respondPetError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainPet(created))
}

// UpdatePet handles PUT /pet. The response echoes the submitted state.
func (api PetAPI) UpdatePet(c *gin.Context) {
	var body mapper.Pet
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, err.Error())
		return
	}
	pet, err := mapper.ToDomainPet(body)
	if err != nil {
		respondValidation(c, err.Error())
		return
	}
	updated, err := api.Service.Update(c.Request.Context(), pet)
	if err != nil {
		respondPetError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainPet(updated))
}

// FindPetsByStatus handles GET /pet/findByStatus.
func (api PetAPI) FindPetsByStatus(c *gin.Context) {
	var query mapper.FindByStatusQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidation(c, err.Error())
		return
	}
	pets, err := api.Service.FindByStatus(c.Request.Context(), domain.Status(query.Status))
	if err != nil {
		respondPetError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainPets(pets))
}

// FindPetsByTags handles GET /pet/findByTags. A pet matches when it carries
// any of the requested tag names.
func (api PetAPI) FindPetsByTags(c *gin.Context) {
	tags := c.QueryArray("tags")
	if len(tags) == 0 {
		respondValidation(c, "query parameter 'tags' is required")
		return
	}
	pets, err := api.Service.FindByTags(c.Request.Context(), tags)
	if err != nil {
		respondPetError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainPets(pets))
}

// GetPetByID handles GET /pet/:petid.
func (api PetAPI) GetPetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "petid")
	if !ok {
		return
	}
	pet, err := api.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondPetError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainPet(pet))
}

// UpdatePetWithForm handles POST /pet/:petid, updating name and status from
// query parameters.
func (api PetAPI) UpdatePetWithForm(c *gin.Context) {
	id, ok := parseIDParam(c, "petid")
	if !ok {
		return
	}
	var query mapper.UpdateFieldsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidation(c, err.Error())
		return
	}
	pet, err := api.Service.UpdateFields(c.Request.Context(), id, query.Name, domain.Status(query.Status))
	if err != nil {
		respondPetError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainPet(pet))
}

// DeletePet handles DELETE /pet/:petid.
func (api PetAPI) DeletePet(c *gin.Context) {
	id, ok := parseIDParam(c, "petid")
	if !ok {
		return
	}
	if err := api.Service.Delete(c.Request.Context(), id); err != nil {
		respondPetError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("pet %d deleted", id)})
}

// UploadImage handles POST /pet/:petid/uploadImage, appending the photo URL
// carried in the metadata query parameter.
func (api PetAPI) UploadImage(c *gin.Context) {
	id, ok := parseIDParam(c, "petid")
	if !ok {
		return
	}
	var query mapper.UploadImageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidation(c, err.Error())
		return
	}
	url := ""
	if query.Metadata != nil {
		url = *query.Metadata
	}
	if _, err := api.Service.AddPhoto(c.Request.Context(), id, url); err != nil {
		respondPetError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("photo %q added to pet %d", url, id)})
}
