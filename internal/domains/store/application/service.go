package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/softpaws/petstore-api/internal/domains/store/domain"
	"github.com/softpaws/petstore-api/internal/domains/store/ports"
)

// InventoryStatuses are the canonical keys every inventory summary contains,
// zero-filled when a status has no pets.
var InventoryStatuses = []string{"available", "sold", "pending"}

// PlaceOrderInput carries the validated order payload with the shipDate still
// in wire form; parsing it is part of placing the order.
type PlaceOrderInput struct {
	ID       int64
	PetID    int64
	Quantity int32
	ShipDate string
	Status   domain.Status
	Complete bool
}

// Service orchestrates store/order use cases.
type Service struct {
	repo      ports.Repository
	inventory ports.PetInventory
}

func NewService(repo ports.Repository, inventory ports.PetInventory) *Service {
	return &Service{repo: repo, inventory: inventory}
}

// PlaceOrder parses the ship date, checks id uniqueness, and inserts the
// order. Nothing is persisted when the date does not parse.
func (s *Service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*domain.Order, error) {
	shipDate, err := domain.ParseShipDate(input.ShipDate)
	if err != nil {
		return nil, err
	}
	order, err := domain.NewOrder(input.ID, input.PetID, input.Quantity, shipDate, input.Status, input.Complete)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, order.ID); err == nil {
		return nil, fmt.Errorf("%w: order id %d", ports.ErrDuplicateID, order.ID)
	} else if !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}
	return s.repo.Insert(ctx, order)
}

// GetOrderByID loads a single order.
func (s *Service) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// DeleteOrder removes an order, failing when the id is absent.
func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Inventory aggregates pet counts grouped by status. The three canonical
// keys are always present, defaulted to zero.
func (s *Service) Inventory(ctx context.Context) (map[string]int64, error) {
	counts, err := s.inventory.CountPetsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	result := make(map[string]int64, len(InventoryStatuses))
	for _, status := range InventoryStatuses {
		result[status] = counts[status]
	}
	return result, nil
}
