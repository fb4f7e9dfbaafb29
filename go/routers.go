package petstoreserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route binds one handler to a method and path.
type Route struct {
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// Routes is the list of the server routes.
type Routes []Route

// ApiHandleFunctions holds the API handler groups wired into the router.
type ApiHandleFunctions struct {
	PetAPI   PetAPI
	StoreAPI StoreAPI
	UserAPI  UserAPI
}

// NewRouter returns a new gin router with all resource routes registered.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	router := gin.Default()
	return NewRouterWithGinEngine(router, handleFunctions)
}

// NewRouterWithGinEngine adds the resource routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

func defaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) Routes {
	return Routes{
		{http.MethodPut, "/pet", handleFunctions.PetAPI.UpdatePet},
		{http.MethodPost, "/pet", handleFunctions.PetAPI.AddPet},
		{http.MethodGet, "/pet/findByStatus", handleFunctions.PetAPI.FindPetsByStatus},
		{http.MethodGet, "/pet/findByTags", handleFunctions.PetAPI.FindPetsByTags},
		{http.MethodGet, "/pet/:petid", handleFunctions.PetAPI.GetPetByID},
		{http.MethodPost, "/pet/:petid", handleFunctions.PetAPI.UpdatePetWithForm},
		{http.MethodDelete, "/pet/:petid", handleFunctions.PetAPI.DeletePet},
		{http.MethodPost, "/pet/:petid/uploadImage", handleFunctions.PetAPI.UploadImage},
		{http.MethodGet, "/store/inventory", handleFunctions.StoreAPI.GetInventory},
		{http.MethodPost, "/store/order", handleFunctions.StoreAPI.PlaceOrder},
		{http.MethodGet, "/store/order/:orderid", handleFunctions.StoreAPI.GetOrderByID},
		{http.MethodDelete, "/store/order/:orderid", handleFunctions.StoreAPI.DeleteOrder},
		{http.MethodPost, "/user", handleFunctions.UserAPI.CreateUser},
		{http.MethodPost, "/user/createWithList", handleFunctions.UserAPI.CreateUsersWithListInput},
		{http.MethodGet, "/user/login", handleFunctions.UserAPI.LoginUser},
		{http.MethodGet, "/user/logout", handleFunctions.UserAPI.LogoutUser},
		{http.MethodGet, "/user/:username", handleFunctions.UserAPI.GetUserByName},
		{http.MethodPut, "/user/:username", handleFunctions.UserAPI.UpdateUser},
		{http.MethodDelete, "/user/:username", handleFunctions.UserAPI.DeleteUser},
	}
}
