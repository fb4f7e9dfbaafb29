package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	petsmemory "github.com/softpaws/petstore-api/internal/domains/pets/adapters/memory"
	"github.com/softpaws/petstore-api/internal/domains/pets/domain"
	"github.com/softpaws/petstore-api/internal/domains/pets/ports"
)

func newPet(t *testing.T, id int64, name string, tags []string, status domain.Status) *domain.Pet {
	t.Helper()
	domainTags := make([]domain.Tag, 0, len(tags))
	for i, tag := range tags {
		domainTags = append(domainTags, domain.Tag{ID: int64(i + 1), Name: tag})
	}
	pet, err := domain.NewPet(id, name, 1, []string{"http://example.com/photo.jpg"}, domainTags, status)
	require.NoError(t, err)
	return pet
}

func TestCreate_Success(t *testing.T) {
	repo := petsmemory.NewRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), newPet(t, 1, "Rex", nil, domain.StatusAvailable))

	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, "Rex", created.Name)

	stored, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Rex", stored.Name)
}

func TestCreate_DuplicateID(t *testing.T) {
	repo := petsmemory.NewRepository()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), newPet(t, 1, "Rex", nil, domain.StatusAvailable))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), newPet(t, 1, "Other", nil, domain.StatusSold))
	require.ErrorIs(t, err, ports.ErrDuplicateID)

	stored, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Rex", stored.Name, "stored pet must be unchanged after rejected create")
}

func TestCreate_EmptyPhotoURLsAllowed(t *testing.T) {
	repo := petsmemory.NewRepository()
	svc := NewService(repo)

	pet, err := domain.NewPet(5, "Hairless", 1, []string{}, nil, domain.StatusAvailable)
	require.NoError(t, err)

	created, err := svc.Create(context.Background(), pet)
	require.NoError(t, err)
	require.Empty(t, created.PhotoURLs)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := petsmemory.NewRepository()
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), newPet(t, 42, "Ghost", nil, domain.StatusAvailable))
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestUpdate_ReplacesRecord(t *testing.T) {
	repo := petsmemory.NewRepository()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), newPet(t, 1, "Rex", []string{"guard"}, domain.StatusAvailable))
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), newPet(t, 1, "Rexy", []string{"family"}, domain.StatusSold))
	require.NoError(t, err)
	require.Equal(t, "Rexy", updated.Name)
	require.Equal(t, domain.StatusSold, updated.Status)

	stored, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Rexy", stored.Name)
	require.Len(t, stored.Tags, 1)
	require.Equal(t, "family", stored.Tags[0].Name)
}

func TestFindByStatus_FiltersExactly(t *testing.T) {
	repo := petsmemory.NewRepository()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), newPet(t, 1, "Rex", nil, domain.StatusAvailable))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), newPet(t, 2, "Molly", nil, domain.StatusSold))
	require.NoError(t, err)

	available, err := svc.FindByStatus(context.Background(), domain.StatusAvailable)
	require.NoError(t, err)
	require.Len(t, available, 1)
	require.Equal(t, int64(1), available[0].ID)

	pending, err := svc.FindByStatus(context.Background(), domain.StatusPending)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestFindByTags_MatchesAnyTag(t *testing.T) {
	repo := petsmemory.NewRepository()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), newPet(t, 1, "Luca", []string{"royalty"}, domain.StatusAvailable))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), newPet(t, 2, "Rex", []string{"guard", "family"}, domain.StatusAvailable))
	require.NoError(t, err)

	royalty, err := svc.FindByTags(context.Background(), []string{"royalty"})
	require.NoError(t, err)
	require.Len(t, royalty, 1)
	require.Equal(t, "Luca", royalty[0].Name)

	mixed, err := svc.FindByTags(context.Background(), []string{"royalty", "guard"})
	require.NoError(t, err)
	require.Len(t, mixed, 2)

	none, err := svc.FindByTags(context.Background(), []string{"nonexistent-tag"})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestUpdateFields_ChangesNameAndStatus(t *testing.T) {
	repo := petsmemory.NewRepository()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), newPet(t, 1, "Rex", []string{"guard"}, domain.StatusAvailable))
	require.NoError(t, err)

	updated, err := svc.UpdateFields(context.Background(), 1, "Rexy", domain.StatusSold)
	require.NoError(t, err)
	require.Equal(t, "Rexy", updated.Name)
	require.Equal(t, domain.StatusSold, updated.Status)
	require.Len(t, updated.Tags, 1, "tags must survive a field update")
}

func TestUpdateFields_NotFound(t *testing.T) {
	repo := petsmemory.NewRepository()
	svc := NewService(repo)

	_, err := svc.UpdateFields(context.Background(), 99, "Ghost", domain.StatusSold)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDelete_RemovesPet(t *testing.T) {
	repo := petsmemory.NewRepository()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), newPet(t, 1, "Rex", nil, domain.StatusAvailable))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), 1))

	_, err = svc.GetByID(context.Background(), 1)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	repo := petsmemory.NewRepository()
	svc := NewService(repo)

	require.ErrorIs(t, svc.Delete(context.Background(), 404), ports.ErrNotFound)
}

func TestAddPhoto_AppendsOnce(t *testing.T) {
	repo := petsmemory.NewRepository()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), newPet(t, 1, "Rex", nil, domain.StatusAvailable))
	require.NoError(t, err)

	updated, err := svc.AddPhoto(context.Background(), 1, "http://example.com/new.jpg")
	require.NoError(t, err)
	require.Contains(t, updated.PhotoURLs, "http://example.com/new.jpg")

	_, err = svc.AddPhoto(context.Background(), 1, "http://example.com/new.jpg")
	require.ErrorIs(t, err, domain.ErrDuplicatePhotoURL)

	stored, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	count := 0
	for _, url := range stored.PhotoURLs {
		if url == "http://example.com/new.jpg" {
			count++
		}
	}
	require.Equal(t, 1, count, "rejected duplicate must not append")
}

func TestAddPhoto_NotFound(t *testing.T) {
	repo := petsmemory.NewRepository()
	svc := NewService(repo)

	_, err := svc.AddPhoto(context.Background(), 7, "http://example.com/new.jpg")
	require.ErrorIs(t, err, ports.ErrNotFound)
}
