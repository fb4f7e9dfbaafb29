//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	pacttest "github.com/softpaws/petstore-api/test/pact"

	petstoreserver "github.com/softpaws/petstore-api/go"
	petsmemory "github.com/softpaws/petstore-api/internal/domains/pets/adapters/memory"
	petsapp "github.com/softpaws/petstore-api/internal/domains/pets/application"
	petsdomain "github.com/softpaws/petstore-api/internal/domains/pets/domain"
	storememory "github.com/softpaws/petstore-api/internal/domains/store/adapters/memory"
	storeapp "github.com/softpaws/petstore-api/internal/domains/store/application"
	usersmemory "github.com/softpaws/petstore-api/internal/domains/users/adapters/memory"
	usersapp "github.com/softpaws/petstore-api/internal/domains/users/application"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestPetstoreProviderPact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StatePetsBaseline: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetPets(t)
			return nil, nil
		},
		pacttest.StatePetExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetPets(t)
			if setup {
				app.seedPet(t, pacttest.ExistingPetID)
			}
			return nil, nil
		},
		pacttest.StatePetMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetPets(t)
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.resetPets(t)
			return nil
		},
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	repo   *petsmemory.Repository
	server *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	petRepo := petsmemory.NewRepository()
	petService := petsapp.NewService(petRepo)
	storeService := storeapp.NewService(storememory.NewRepository(), petRepo)
	userService := usersapp.NewService(usersmemory.NewRepository())

	handlers := petstoreserver.ApiHandleFunctions{
		PetAPI:   petstoreserver.NewPetAPI(petService),
		StoreAPI: petstoreserver.NewStoreAPI(storeService),
		UserAPI:  petstoreserver.NewUserAPI(userService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router = petstoreserver.NewRouterWithGinEngine(router, handlers)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{
		repo:   petRepo,
		server: server,
	}
}

func (a *contractProviderApp) resetPets(t testing.TB) {
	t.Helper()
	ctx := context.Background()
	for _, status := range petsdomain.Statuses {
		pets, err := a.repo.FindByStatus(ctx, status)
		require.NoError(t, err)
		for _, pet := range pets {
			_ = a.repo.Delete(ctx, pet.ID)
		}
	}
}

func (a *contractProviderApp) seedPet(t testing.TB, id int64) {
	t.Helper()
	pet, err := petsdomain.NewPet(id, pacttest.ExamplePetName, 1, []string{pacttest.ExamplePhotoURL}, nil, petsdomain.StatusAvailable)
	require.NoError(t, err)
	_, err = a.repo.Insert(context.Background(), pet)
	require.NoError(t, err)
}
