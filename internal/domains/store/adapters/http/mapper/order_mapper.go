package mapper

import (
	"time"

	storeapp "github.com/softpaws/petstore-api/internal/domains/store/application"
	storedomain "github.com/softpaws/petstore-api/internal/domains/store/domain"
)

// Order is the declared schema shared by the place-order body and the
// response shape. ShipDate travels as a string and is normalized server-side.
// Required fields are pointers so the check is for key presence only:
// quantity 0, id 0, and an explicit complete false all validate. Status
// stays a plain string because the enum check rejects the empty string
// anyway.
type Order struct {
	ID       *int64  `json:"id" binding:"required"`
	PetID    *int64  `json:"petId" binding:"required"`
	Quantity *int32  `json:"quantity" binding:"required"`
	ShipDate *string `json:"shipDate" binding:"required"`
	Status   string  `json:"status" binding:"required,oneof=placed approved delivered"`
	Complete *bool   `json:"complete" binding:"required"`
}

// ToPlaceOrderInput converts the validated transport order into the
// application input, leaving shipDate parsing to the use case.
func ToPlaceOrderInput(order Order) storeapp.PlaceOrderInput {
	input := storeapp.PlaceOrderInput{
		Status: storedomain.Status(order.Status),
	}
	if order.ID != nil {
		input.ID = *order.ID
	}
	if order.PetID != nil {
		input.PetID = *order.PetID
	}
	if order.Quantity != nil {
		input.Quantity = *order.Quantity
	}
	if order.ShipDate != nil {
		input.ShipDate = *order.ShipDate
	}
	if order.Complete != nil {
		input.Complete = *order.Complete
	}
	return input
}

// FromDomainOrder converts a domain order to the transport representation
// with the normalized ship date applied.
func FromDomainOrder(order *storedomain.Order) Order {
	if order == nil {
		return Order{}
	}
	id := order.ID
	petID := order.PetID
	quantity := order.Quantity
	shipDate := order.ShipDate.Format(time.RFC3339Nano)
	complete := order.Complete
	return Order{
		ID:       &id,
		PetID:    &petID,
		Quantity: &quantity,
		ShipDate: &shipDate,
		Status:   string(order.Status),
		Complete: &complete,
	}
}
