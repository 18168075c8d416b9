package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"gemvault_backend/internal/models"
)

func TestPortfolioRepository_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	repo := NewPortfolioRepository(db)

	cutter := createTestUser(t, db, userRepo, "alice_cutter", "alice@example.com", models.RoleCutter)

	item := &models.PortfolioItem{
		CutterProfileID: cutter.CutterProfile.ID,
		Title:           "Round brilliant topaz",
		GemstoneType:    "Topaz",
		CutType:         "Round Brilliant",
		ImageURLs:       datatypes.NewJSONSlice([]string{"https://img.example.com/1.jpg"}),
	}
	require.NoError(t, repo.Create(item))
	require.NotZero(t, item.ID)

	items, err := repo.ListByCutterProfile(cutter.CutterProfile.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Round brilliant topaz", items[0].Title)
	assert.Equal(t, []string{"https://img.example.com/1.jpg"}, []string(items[0].ImageURLs))
}

func TestPortfolioRepository_UpdateScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	repo := NewPortfolioRepository(db)

	owner := createTestUser(t, db, userRepo, "owner", "owner@example.com", models.RoleCutter)
	other := createTestUser(t, db, userRepo, "other", "other@example.com", models.RoleCutter)

	item := &models.PortfolioItem{
		CutterProfileID: owner.CutterProfile.ID,
		Title:           "Cushion amethyst",
		GemstoneType:    "Amethyst",
		CutType:         "Cushion",
	}
	require.NoError(t, repo.Create(item))

	// Чужой профиль не затрагивает ни одной строки
	rows, err := repo.Update(item.ID, other.CutterProfile.ID, PortfolioItemUpdateInput{
		Title: strPtr("Stolen"),
	})
	require.NoError(t, err)
	assert.Zero(t, rows)

	rows, err = repo.Update(item.ID, owner.CutterProfile.ID, PortfolioItemUpdateInput{
		Title: strPtr("Cushion amethyst, recut"),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	found, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cushion amethyst, recut", found.Title)
	// Непереданные поля не изменились
	assert.Equal(t, "Amethyst", found.GemstoneType)
}

func TestPortfolioRepository_DeleteScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	repo := NewPortfolioRepository(db)

	owner := createTestUser(t, db, userRepo, "owner", "owner@example.com", models.RoleCutter)
	other := createTestUser(t, db, userRepo, "other", "other@example.com", models.RoleCutter)

	item := &models.PortfolioItem{
		CutterProfileID: owner.CutterProfile.ID,
		Title:           "Pear citrine",
		GemstoneType:    "Citrine",
		CutType:         "Pear",
	}
	require.NoError(t, repo.Create(item))

	rows, err := repo.Delete(item.ID, other.CutterProfile.ID)
	require.NoError(t, err)
	assert.Zero(t, rows)

	rows, err = repo.Delete(item.ID, owner.CutterProfile.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	gone, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
