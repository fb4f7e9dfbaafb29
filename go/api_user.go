package petstoreserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/softpaws/petstore-api/internal/domains/users/adapters/http/mapper"
	"github.com/softpaws/petstore-api/internal/domains/users/application"
)

// UserAPI exposes the user resource over HTTP.
type UserAPI struct {
	Service *application.Service
}

// NewUserAPI builds the user handler group.
func NewUserAPI(service *application.Service) UserAPI {
	return UserAPI{Service: service}
}

// CreateUser handles POST /user.
func (api UserAPI) CreateUser(c *gin.Context) {
	var body mapper.User
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, err.Error())
		return
	}
	user, err := mapper.ToDomainUser(body)
	if err != nil {
		respondValidation(c, err.Error())
		return
	}
	created, err := api.Service.CreateUser(c.Request.Context(), user)
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainUser(created))
}

// CreateUsersWithListInput handles POST /user/createWithList.
func (api UserAPI) CreateUsersWithListInput(c *gin.Context) {
	var body []mapper.User
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, err.Error())
		return
	}
	users, err := mapper.ToDomainUsers(body)
	if err != nil {
		respondValidation(c, err.Error())
		return
	}
	created, err := api.Service.CreateUsers(c.Request.Context(), users)
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainUsers(created))
}

// LoginUser handles GET /user/login, checking the credentials carried as
// query parameters.
func (api UserAPI) LoginUser(c *gin.Context) {
	var query mapper.LoginQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidation(c, err.Error())
		return
	}
	confirmation, err := api.Service.Login(c.Request.Context(), query.UsernameValue(), query.PasswordValue())
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": confirmation})
}

// LogoutUser handles GET /user/logout.
func (api UserAPI) LogoutUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": api.Service.Logout(c.Request.Context())})
}

// GetUserByName handles GET /user/:username.
func (api UserAPI) GetUserByName(c *gin.Context) {
	user, err := api.Service.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainUser(user))
}

// UpdateUser handles PUT /user/:username, replacing the stored record with
// the submitted payload.
func (api UserAPI) UpdateUser(c *gin.Context) {
	var body mapper.User
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, err.Error())
		return
	}
	user, err := mapper.ToDomainUser(body)
	if err != nil {
		respondValidation(c, err.Error())
		return
	}
	updated, err := api.Service.Update(c.Request.Context(), c.Param("username"), user)
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainUser(updated))
}

// DeleteUser handles DELETE /user/:username.
func (api UserAPI) DeleteUser(c *gin.Context) {
	confirmation, err := api.Service.Delete(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": confirmation})
}
