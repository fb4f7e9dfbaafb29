package petstoreserver

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	petsdomain "github.com/softpaws/petstore-api/internal/domains/pets/domain"
	petsports "github.com/softpaws/petstore-api/internal/domains/pets/ports"
	storedomain "github.com/softpaws/petstore-api/internal/domains/store/domain"
	storeports "github.com/softpaws/petstore-api/internal/domains/store/ports"
	usersdomain "github.com/softpaws/petstore-api/internal/domains/users/domain"
	usersports "github.com/softpaws/petstore-api/internal/domains/users/ports"
	sharederrors "github.com/softpaws/petstore-api/internal/shared/errors"
)

func respondValidation(c *gin.Context, detail string) {
	sharederrors.Respond(c, sharederrors.ErrValidation.WithDetail(detail))
}

// parseIDParam reads a numeric path parameter and reports a validation
// problem when it does not parse.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondValidation(c, fmt.Sprintf("path parameter %q must be an integer, got %q", name, raw))
		return 0, false
	}
	return id, true
}

func respondPetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, petsports.ErrNotFound):
		sharederrors.Respond(c, sharederrors.ErrNotFound.WithDetail(err.Error()))
	case errors.Is(err, petsports.ErrDuplicateID):
		sharederrors.Respond(c, sharederrors.ErrDuplicateID.WithDetail(err.Error()))
	case errors.Is(err, petsdomain.ErrDuplicatePhotoURL):
		sharederrors.Respond(c, sharederrors.ErrDuplicateValue.WithDetail(err.Error()))
	case errors.Is(err, petsdomain.ErrEmptyName), errors.Is(err, petsdomain.ErrInvalidStatus):
		respondValidation(c, err.Error())
	default:
		sharederrors.Respond(c, sharederrors.ErrInternal.WithDetail(err.Error()))
	}
}

func respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storeports.ErrNotFound):
		sharederrors.Respond(c, sharederrors.ErrNotFound.WithDetail(err.Error()))
	case errors.Is(err, storeports.ErrDuplicateID):
		sharederrors.Respond(c, sharederrors.ErrDuplicateID.WithDetail(err.Error()))
	case errors.Is(err, storedomain.ErrInvalidShipDate):
		sharederrors.Respond(c, sharederrors.ErrInvalidDateFormat.WithDetail(err.Error()))
	case errors.Is(err, storedomain.ErrInvalidStatus):
		respondValidation(c, err.Error())
	default:
		sharederrors.Respond(c, sharederrors.ErrInternal.WithDetail(err.Error()))
	}
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usersports.ErrNotFound):
		sharederrors.Respond(c, sharederrors.ErrNotFound.WithDetail(err.Error()))
	case errors.Is(err, usersports.ErrDuplicateID):
		sharederrors.Respond(c, sharederrors.ErrDuplicateID.WithDetail(err.Error()))
	case errors.Is(err, usersports.ErrDuplicateUsername):
		sharederrors.Respond(c, sharederrors.ErrDuplicateUsername.WithDetail(err.Error()))
	case errors.Is(err, usersports.ErrInvalidCredentials):
		sharederrors.Respond(c, sharederrors.ErrInvalidCredential.WithDetail(err.Error()))
	case errors.Is(err, usersdomain.ErrEmptyUsername), errors.Is(err, usersdomain.ErrEmptyPassword):
		respondValidation(c, err.Error())
	default:
		sharederrors.Respond(c, sharederrors.ErrInternal.WithDetail(err.Error()))
	}
}
