//go:build integration
// +build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	storepostgres "github.com/softpaws/petstore-api/internal/domains/store/adapters/persistence/postgres"
	"github.com/softpaws/petstore-api/internal/domains/store/domain"
	"github.com/softpaws/petstore-api/internal/domains/store/ports"
	"github.com/softpaws/petstore-api/internal/platform/migrations"
)

func setupPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("petstore_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, migrations.Run(db))

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func makeOrder(t *testing.T, id int64) *domain.Order {
	t.Helper()
	shipDate, err := domain.ParseShipDate("2021-09-27T20:21:20.690Z")
	require.NoError(t, err)
	order, err := domain.NewOrder(id, 1, 2, shipDate, domain.StatusPlaced, false)
	require.NoError(t, err)
	return order
}

func TestOrderRepository_InsertAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := storepostgres.NewRepository(db)
	ctx := context.Background()

	_, err := repo.Insert(ctx, makeOrder(t, 1))
	require.NoError(t, err)

	retrieved, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), retrieved.PetID)
	assert.Equal(t, domain.StatusPlaced, retrieved.Status)
	assert.Equal(t, 2021, retrieved.ShipDate.Year())
}

func TestOrderRepository_InsertDuplicateID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := storepostgres.NewRepository(db)
	ctx := context.Background()

	_, err := repo.Insert(ctx, makeOrder(t, 1))
	require.NoError(t, err)

	_, err = repo.Insert(ctx, makeOrder(t, 1))
	require.ErrorIs(t, err, ports.ErrDuplicateID)
}

func TestOrderRepository_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := storepostgres.NewRepository(db)
	ctx := context.Background()

	_, err := repo.Insert(ctx, makeOrder(t, 1))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, 1))

	_, err = repo.GetByID(ctx, 1)
	require.ErrorIs(t, err, ports.ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, 999), ports.ErrNotFound)
}
