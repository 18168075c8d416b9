package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemvault_backend/internal/models"
)

func TestProfileRepository_UpdateCutterSparse(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	repo := NewProfileRepository(db)

	cutter := createTestUser(t, db, userRepo, "alice_cutter", "alice@example.com", models.RoleCutter)

	rows, err := repo.UpdateCutter(cutter.ID, CutterProfileUpdateInput{
		Bio:             strPtr("Twenty years at the faceting machine"),
		ExperienceYears: intPtr(20),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	profile, err := repo.FindCutterByUserID(cutter.ID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Twenty years at the faceting machine", *profile.Bio)
	assert.Equal(t, 20, *profile.ExperienceYears)
	// Незатронутые поля сохранили значения по умолчанию
	assert.Equal(t, string(models.ExpertiseBeginner), profile.ExpertiseLevel)
	assert.True(t, profile.AvailableForCustomWork)
}

func TestProfileRepository_UpdateCutter_ListColumn(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	repo := NewProfileRepository(db)

	cutter := createTestUser(t, db, userRepo, "alice_cutter", "alice@example.com", models.RoleCutter)

	certs := []string{"GIA Graduate Gemologist", "FGA"}
	rows, err := repo.UpdateCutter(cutter.ID, CutterProfileUpdateInput{
		Certification: &certs,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	profile, err := repo.FindCutterByUserID(cutter.ID)
	require.NoError(t, err)
	assert.Equal(t, certs, []string(profile.Certification))
}

func TestProfileRepository_UpdateMissingProfile(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	repo := NewProfileRepository(db)

	// У обычного пользователя нет профиля огранщика
	user := createTestUser(t, db, userRepo, "plain", "plain@example.com", models.RoleUser)

	rows, err := repo.UpdateCutter(user.ID, CutterProfileUpdateInput{Bio: strPtr("nope")})
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestProfileRepository_DealerAndAppraiser(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	repo := NewProfileRepository(db)

	dealer := &models.User{
		Username:      "dealer",
		Email:         "dealer@example.com",
		PasswordHash:  "hash",
		RoleID:        roleID(t, db, models.RoleDealer),
		DealerProfile: &models.DealerProfile{},
	}
	require.NoError(t, userRepo.Create(dealer))

	appraiser := &models.User{
		Username:         "appraiser",
		Email:            "appraiser@example.com",
		PasswordHash:     "hash",
		RoleID:           roleID(t, db, models.RoleAppraiser),
		AppraiserProfile: &models.AppraiserProfile{},
	}
	require.NoError(t, userRepo.Create(appraiser))

	rows, err := repo.UpdateDealer(dealer.ID, DealerProfileUpdateInput{
		CompanyName:     strPtr("Gem Trade Ltd"),
		YearsInBusiness: intPtr(12),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	dealerProfile, err := repo.FindDealerByUserID(dealer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gem Trade Ltd", *dealerProfile.CompanyName)

	rows, err = repo.UpdateAppraiser(appraiser.ID, AppraiserProfileUpdateInput{
		CertificationAuthority: strPtr("NAJA"),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	appraiserProfile, err := repo.FindAppraiserByUserID(appraiser.ID)
	require.NoError(t, err)
	assert.Equal(t, "NAJA", *appraiserProfile.CertificationAuthority)
	assert.Zero(t, appraiserProfile.AppraisalCount)
}
