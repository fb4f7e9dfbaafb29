package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/softpaws/petstore-api/internal/domains/store/domain"
	"github.com/softpaws/petstore-api/internal/domains/store/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type orderRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	PetID     int64     `gorm:"column:pet_id"`
	Quantity  int32     `gorm:"column:quantity"`
	ShipDate  time.Time `gorm:"column:ship_date"`
	Status    string    `gorm:"column:status;type:varchar(32)"`
	Complete  bool      `gorm:"column:complete"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (orderRecord) TableName() string { return "orders" }

func newOrderRecord(o *domain.Order) orderRecord {
	return orderRecord{
		ID:       o.ID,
		PetID:    o.PetID,
		Quantity: o.Quantity,
		ShipDate: o.ShipDate,
		Status:   string(o.Status),
		Complete: o.Complete,
	}
}

func (rec *orderRecord) toDomain() *domain.Order {
	return &domain.Order{
		ID:       rec.ID,
		PetID:    rec.PetID,
		Quantity: rec.Quantity,
		ShipDate: rec.ShipDate,
		Status:   domain.Status(rec.Status),
		Complete: rec.Complete,
	}
}

// Insert stores a new order; the primary key rejects duplicate ids.
func (r *Repository) Insert(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := newOrderRecord(order)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ports.ErrDuplicateID
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&orderRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}
