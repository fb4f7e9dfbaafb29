package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. The primary keys and the
// username unique index are the actual uniqueness guarantees; the
// application-level existence checks are only fast paths.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&petRecord{},
		&orderRecord{},
		&userRecord{},
	)
}

// Pet schema mirrors the pets Postgres adapter.
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

// Order schema mirrors the store Postgres adapter.
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

// User schema mirrors the users Postgres adapter.
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
