package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/softpaws/petstore-api/internal/domains/pets/domain"
	"github.com/softpaws/petstore-api/internal/domains/pets/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists pets in PostgreSQL using GORM-mapped columns.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. The caller owns the DB
// lifecycle and schema migration.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type petRecord struct {
	ID        int64          `gorm:"primaryKey;column:id"`
	Name      string         `gorm:"column:name"`
	Category  int64          `gorm:"column:category"`
	PhotoURLs pq.StringArray `gorm:"column:photo_urls;type:text[]"`
	TagIDs    pq.Int64Array  `gorm:"column:tag_ids;type:bigint[]"`
	TagNames  pq.StringArray `gorm:"column:tag_names;type:text[]"`
	Status    string         `gorm:"column:status;type:varchar(32);index"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (petRecord) TableName() string { return "pets" }

func newPetRecord(p *domain.Pet) petRecord {
	rec := petRecord{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Status:    string(p.Status),
		PhotoURLs: append(pq.StringArray{}, p.PhotoURLs...),
	}
	for _, tag := range p.Tags {
		rec.TagIDs = append(rec.TagIDs, tag.ID)
		rec.TagNames = append(rec.TagNames, tag.Name)
	}
	return rec
}

func (rec *petRecord) toDomain() *domain.Pet {
	pet := &domain.Pet{
		ID:        rec.ID,
		Name:      rec.Name,
		Category:  rec.Category,
		PhotoURLs: append([]string{}, rec.PhotoURLs...),
		Status:    domain.Status(rec.Status),
	}
	for i, name := range rec.TagNames {
		tag := domain.Tag{Name: name}
		if i < len(rec.TagIDs) {
			tag.ID = rec.TagIDs[i]
		}
		pet.Tags = append(pet.Tags, tag)
	}
	return pet
}

// Insert stores a new pet. The primary key constraint is the uniqueness
// guarantee; duplicate ids surface as ports.ErrDuplicateID.
func (r *Repository) Insert(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := newPetRecord(pet)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ports.ErrDuplicateID
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Update replaces the stored columns of an existing pet.
func (r *Repository) Update(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := newPetRecord(pet)
	result := r.db.WithContext(ctx).Model(&petRecord{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"name":       record.Name,
			"category":   record.Category,
			"photo_urls": record.PhotoURLs,
			"tag_ids":    record.TagIDs,
			"tag_names":  record.TagNames,
			"status":     record.Status,
			"updated_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, pet.ID)
}

// GetByID fetches a pet by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Pet, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record petRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Delete removes a pet by identifier.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&petRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// FindByStatus returns pets in the given lifecycle state.
func (r *Repository) FindByStatus(ctx context.Context, status domain.Status) ([]*domain.Pet, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []petRecord
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

// FindByTags returns pets whose tag names overlap the supplied set.
func (r *Repository) FindByTags(ctx context.Context, tags []string) ([]*domain.Pet, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return []*domain.Pet{}, nil
	}
	var records []petRecord
	if err := r.db.WithContext(ctx).
		Where("tag_names && ?", pq.StringArray(tags)).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

// CountByStatus aggregates pet counts grouped by status.
func (r *Repository) CountByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	if err := r.db.WithContext(ctx).Model(&petRecord{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[domain.Status]int64, len(rows))
	for _, row := range rows {
		counts[domain.Status(row.Status)] = row.Count
	}
	return counts, nil
}

// CountPetsByStatus adapts the count view for the store inventory port.
func (r *Repository) CountPetsByStatus(ctx context.Context) (map[string]int64, error) {
	counts, err := r.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	result := make(map[string]int64, len(counts))
	for status, count := range counts {
		result[string(status)] = count
	}
	return result, nil
}

func toDomainList(records []petRecord) []*domain.Pet {
	result := make([]*domain.Pet, 0, len(records))
	for i := range records {
		result = append(result, records[i].toDomain())
	}
	return result
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres pet repository not configured")
	}
	return nil
}
