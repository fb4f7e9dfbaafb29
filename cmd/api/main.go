package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	petstoreserver "github.com/softpaws/petstore-api/go"

	petsobservability "github.com/softpaws/petstore-api/internal/domains/pets/adapters/observability"
	petsapplication "github.com/softpaws/petstore-api/internal/domains/pets/application"
	petsports "github.com/softpaws/petstore-api/internal/domains/pets/ports"

	petsmemory "github.com/softpaws/petstore-api/internal/domains/pets/adapters/memory"
	petspostgres "github.com/softpaws/petstore-api/internal/domains/pets/adapters/persistence/postgres"
	storememory "github.com/softpaws/petstore-api/internal/domains/store/adapters/memory"
	storepostgres "github.com/softpaws/petstore-api/internal/domains/store/adapters/persistence/postgres"
	usersmemory "github.com/softpaws/petstore-api/internal/domains/users/adapters/memory"
	userspostgres "github.com/softpaws/petstore-api/internal/domains/users/adapters/persistence/postgres"

	storeapplication "github.com/softpaws/petstore-api/internal/domains/store/application"
	storeports "github.com/softpaws/petstore-api/internal/domains/store/ports"
	usersapplication "github.com/softpaws/petstore-api/internal/domains/users/application"
	usersports "github.com/softpaws/petstore-api/internal/domains/users/ports"

	"github.com/softpaws/petstore-api/internal/platform/migrations"
	"github.com/softpaws/petstore-api/internal/platform/observability"
	platformpostgres "github.com/softpaws/petstore-api/internal/platform/postgres"
)

func main() {
	ctx := context.Background()
	const serviceName = "petstore-api"
	instruments, shutdown, err := observability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := connectStorage(ctx, logger)
	defer cleanupDB()

	petRepo, storeRepo, userRepo, inventory := buildRepositories(db, logger)

	petService := petsobservability.New(
		petsapplication.NewService(petRepo),
		petsobservability.WithLogger(logger),
		petsobservability.WithTracer(instruments.Tracer("internal.domains.pets")),
		petsobservability.WithMeter(instruments.Meter("internal.domains.pets")),
	)
	storeService := storeapplication.NewService(storeRepo, inventory)
	userService := usersapplication.NewService(userRepo)

	handlers := petstoreserver.ApiHandleFunctions{
		PetAPI:   petstoreserver.NewPetAPI(petService),
		StoreAPI: petstoreserver.NewStoreAPI(storeService),
		UserAPI:  petstoreserver.NewUserAPI(userService),
	}

	// Middleware must be registered before the routes: gin freezes each
	// route's handler chain at registration time.
	engine := gin.Default()
	engine.Use(otelgin.Middleware(serviceName))
	router := petstoreserver.NewRouterWithGinEngine(engine, handlers)
	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}
	logger.Info("Petstore API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("Petstore API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
	}
}

// connectStorage opens the postgres connection when POSTGRES_DSN is set and
// runs the schema migrations. A nil db means the memory adapters take over.
func connectStorage(ctx context.Context, logger *slog.Logger) (*gorm.DB, func()) {
	db, cleanup := platformpostgres.ConnectOptional(ctx, os.Getenv("POSTGRES_DSN"), logger)
	if db == nil {
		return nil, cleanup
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("failed to run migrations, falling back to memory", slog.String("error", err.Error()))
		cleanup()
		return nil, func() {}
	}
	logger.Info("repositories configured with postgres")
	return db, cleanup
}

func buildRepositories(db *gorm.DB, logger *slog.Logger) (petsports.Repository, storeports.Repository, usersports.Repository, storeports.PetInventory) {
	if db == nil {
		logger.Warn("running with in-memory repositories")
		petRepo := petsmemory.NewRepository()
		return petRepo, storememory.NewRepository(), usersmemory.NewRepository(), petRepo
	}
	petRepo := petspostgres.NewRepository(db)
	return petRepo, storepostgres.NewRepository(db), userspostgres.NewRepository(db), petRepo
}
