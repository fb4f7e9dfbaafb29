package domain

import (
	"errors"
	"time"
)

// Status enumerates order progression.
type Status string

const (
	StatusPlaced    Status = "placed"
	StatusApproved  Status = "approved"
	StatusDelivered Status = "delivered"
)

var (
	ErrInvalidStatus   = errors.New("order status is invalid")
	ErrInvalidShipDate = errors.New("invalid shipDate format, expected e.g. 2021-09-27T20:21:20.690")
)

// shipDateLayouts are the accepted shipDate encodings: RFC 3339 plus the
// zoneless fractional form the upstream clients send.
var shipDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
}

// ParseShipDate parses an ISO-8601-like timestamp, failing with
// ErrInvalidShipDate when no accepted layout matches.
func ParseShipDate(value string) (time.Time, error) {
	for _, layout := range shipDateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, ErrInvalidShipDate
}

// Order models the store purchase order aggregate. PetID is not validated
// against the pet catalog.
type Order struct {
	ID       int64
	PetID    int64
	Quantity int32
	ShipDate time.Time
	Status   Status
	Complete bool
}

// NewOrder validates and constructs a new Order aggregate.
func NewOrder(id, petID int64, quantity int32, shipDate time.Time, status Status, complete bool) (*Order, error) {
	order := &Order{
		ID:       id,
		PetID:    petID,
		Quantity: quantity,
		ShipDate: shipDate,
		Status:   status,
		Complete: complete,
	}
	if !isValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return order, nil
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusPlaced, StatusApproved, StatusDelivered:
		return true
	default:
		return false
	}
}
