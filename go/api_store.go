package petstoreserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/softpaws/petstore-api/internal/domains/store/adapters/http/mapper"
	"github.com/softpaws/petstore-api/internal/domains/store/application"
)

// StoreAPI exposes orders and the inventory summary over HTTP.
type StoreAPI struct {
	Service *application.Service
}

// NewStoreAPI builds the store handler group.
func NewStoreAPI(service *application.Service) StoreAPI {
	return StoreAPI{Service: service}
}

// GetInventory handles GET /store/inventory, returning pet counts keyed by
// status.
func (api StoreAPI) GetInventory(c *gin.Context) {
	inventory, err := api.Service.Inventory(c.Request.Context())
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, inventory)
}

// PlaceOrder handles POST /store/order.
func (api StoreAPI) PlaceOrder(c *gin.Context) {
	var body mapper.Order
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, err.Error())
		return
	}
	order, err := api.Service.PlaceOrder(c.Request.Context(), mapper.ToPlaceOrderInput(body))
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainOrder(order))
}

// GetOrderByID handles GET /store/order/:orderid.
func (api StoreAPI) GetOrderByID(c *gin.Context) {
	id, ok := parseIDParam(c, "orderid")
	if !ok {
		return
	}
	order, err := api.Service.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainOrder(order))
}

// DeleteOrder handles DELETE /store/order/:orderid.
func (api StoreAPI) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderid")
	if !ok {
		return
	}
	if err := api.Service.DeleteOrder(c.Request.Context(), id); err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("order %d deleted", id)})
}
