package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/softpaws/petstore-api/internal/domains/users/domain"
	"github.com/softpaws/petstore-api/internal/domains/users/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists users in PostgreSQL. The id primary key and the
// username unique index make the storage layer the uniqueness guarantee.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type userRecord struct {
	ID         int64     `gorm:"primaryKey;column:id"`
	Username   string    `gorm:"column:username;uniqueIndex;size:255"`
	FirstName  string    `gorm:"column:first_name"`
	LastName   string    `gorm:"column:last_name"`
	Email      string    `gorm:"column:email"`
	Password   string    `gorm:"column:password"`
	Phone      string    `gorm:"column:phone"`
	UserStatus int32     `gorm:"column:user_status"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (userRecord) TableName() string { return "users" }

func newUserRecord(u *domain.User) userRecord {
	return userRecord{
		ID:         u.ID,
		Username:   u.Username,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Password:   u.Password,
		Phone:      u.Phone,
		UserStatus: u.Status,
	}
}

func (rec *userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:        rec.ID,
		Username:  rec.Username,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Email:     rec.Email,
		Password:  rec.Password,
		Phone:     rec.Phone,
		Status:    rec.UserStatus,
	}
}

// Insert stores a new user. On a duplicate-key failure it re-reads to report
// which constraint was violated, defaulting to the id.
func (r *Repository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := newUserRecord(user)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, r.classifyDuplicate(ctx, user)
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// InsertBatch stores users in insertion order; earlier rows stay persisted if
// a later one clashes.
func (r *Repository) InsertBatch(ctx context.Context, users []*domain.User) ([]*domain.User, error) {
	saved := make([]*domain.User, 0, len(users))
	for _, user := range users {
		persisted, err := r.Insert(ctx, user)
		if err != nil {
			return saved, err
		}
		saved = append(saved, persisted)
	}
	return saved, nil
}

func (r *Repository) classifyDuplicate(ctx context.Context, user *domain.User) error {
	if _, err := r.GetByUsername(ctx, user.Username); err == nil {
		if _, idErr := r.GetByID(ctx, user.ID); idErr == nil {
			return ports.ErrDuplicateID
		}
		return ports.ErrDuplicateUsername
	}
	return ports.ErrDuplicateID
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record userRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record userRecord
	if err := r.db.WithContext(ctx).First(&record, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) FindByIDs(ctx context.Context, ids []int64) ([]*domain.User, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*domain.User{}, nil
	}
	var records []userRecord
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

func (r *Repository) FindByUsernames(ctx context.Context, usernames []string) ([]*domain.User, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if len(usernames) == 0 {
		return []*domain.User{}, nil
	}
	var records []userRecord
	if err := r.db.WithContext(ctx).Where("username IN ?", usernames).Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

// Update replaces every column of the row addressed by username.
func (r *Repository) Update(ctx context.Context, username string, user *domain.User) (*domain.User, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := newUserRecord(user)
	result := r.db.WithContext(ctx).Model(&userRecord{}).
		Where("username = ?", username).
		Updates(map[string]any{
			"id":          record.ID,
			"username":    record.Username,
			"first_name":  record.FirstName,
			"last_name":   record.LastName,
			"email":       record.Email,
			"password":    record.Password,
			"phone":       record.Phone,
			"user_status": record.UserStatus,
			"updated_at":  gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ports.ErrDuplicateUsername
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByUsername(ctx, record.Username)
}

func (r *Repository) Delete(ctx context.Context, username string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Where("username = ?", username).Delete(&userRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func toDomainList(records []userRecord) []*domain.User {
	result := make([]*domain.User, 0, len(records))
	for i := range records {
		result = append(result, records[i].toDomain())
	}
	return result
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres user repository not configured")
	}
	return nil
}
