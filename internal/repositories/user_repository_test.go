package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gemvault_backend/internal/models"
)

func TestUserRepository_CreateWithCutterProfile(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := &models.User{
		Username:     "alice_cutter",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		RoleID:       roleID(t, db, models.RoleCutter),
		CutterProfile: &models.CutterProfile{
			Specialty:              strPtr("Faceting"),
			ExpertiseLevel:         string(models.ExpertiseExpert),
			AvailableForCustomWork: true,
		},
	}

	require.NoError(t, repo.Create(user))
	require.NotZero(t, user.ID)

	// Профиль создан в той же транзакции и привязан к пользователю
	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.NotNil(t, found.CutterProfile)
	assert.Equal(t, user.ID, found.CutterProfile.UserID)
	assert.Equal(t, "Faceting", *found.CutterProfile.Specialty)
	assert.Equal(t, "cutter", found.RoleName())
	assert.Nil(t, found.DealerProfile)
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	createTestUser(t, db, repo, "first", "same@example.com", models.RoleUser)

	err := repo.Create(&models.User{
		Username:     "second",
		Email:        "same@example.com",
		PasswordHash: "hash",
		RoleID:       roleID(t, db, models.RoleUser),
	})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUserRepository_CreateDuplicateEmail_NoOrphanProfile(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	createTestUser(t, db, repo, "first", "same@example.com", models.RoleUser)

	err := repo.Create(&models.User{
		Username:     "second",
		Email:        "same@example.com",
		PasswordHash: "hash",
		RoleID:       roleID(t, db, models.RoleCutter),
		CutterProfile: &models.CutterProfile{
			ExpertiseLevel: string(models.ExpertiseBeginner),
		},
	})
	require.Error(t, err)

	// Транзакция откатилась целиком, профиль-сирота не остался
	var count int64
	require.NoError(t, db.Model(&models.CutterProfile{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.FindByEmail("nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_FindRoleByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	role, err := repo.FindRoleByName("appraiser")
	require.NoError(t, err)
	require.NotNil(t, role)
	assert.Equal(t, "appraiser", role.Name)

	missing, err := repo.FindRoleByName("wizard")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_UpdateSparse(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := createTestUser(t, db, repo, "bob", "bob@example.com", models.RoleUser)

	err := repo.Update(user.ID, UserUpdateInput{
		FirstName: strPtr("Bob"),
	})
	require.NoError(t, err)

	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, found.FirstName)
	assert.Equal(t, "Bob", *found.FirstName)
	// Остальные поля не тронуты
	assert.Equal(t, "bob", found.Username)
	assert.Equal(t, "bob@example.com", found.Email)
	assert.Nil(t, found.LastName)
}

func TestUserRepository_UpdateEmpty_TouchesOnlyTimestamp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := createTestUser(t, db, repo, "carol", "carol@example.com", models.RoleUser)
	before, err := repo.FindByID(user.ID)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.Update(user.ID, UserUpdateInput{}))

	after, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
	assert.Equal(t, before.Username, after.Username)
	assert.Equal(t, before.Email, after.Email)
}

func TestUserRepository_MarkVerified(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	token := "verification-token"
	user := &models.User{
		Username:          "dave",
		Email:             "dave@example.com",
		PasswordHash:      "hash",
		RoleID:            roleID(t, db, models.RoleUser),
		VerificationToken: &token,
	}
	require.NoError(t, repo.Create(user))

	found, err := repo.FindByVerificationToken(token)
	require.NoError(t, err)
	require.NotNil(t, found)

	require.NoError(t, repo.MarkVerified(found.ID))

	// Токен погашен: повторный поиск по нему ничего не находит
	gone, err := repo.FindByVerificationToken(token)
	assert.NoError(t, err)
	assert.Nil(t, gone)

	verified, err := repo.FindByID(found.ID)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)
	assert.Nil(t, verified.VerificationToken)
}

func TestUserRepository_ResetPasswordClearsToken(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := createTestUser(t, db, repo, "erin", "erin@example.com", models.RoleUser)

	require.NoError(t, repo.SetResetToken(user.ID, "reset-token", time.Now().Add(time.Hour)))

	found, err := repo.FindByResetToken("reset-token")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.NotNil(t, found.ResetTokenExp)

	require.NoError(t, repo.ResetPassword(user.ID, "new-hash"))

	gone, err := repo.FindByResetToken("reset-token")
	assert.NoError(t, err)
	assert.Nil(t, gone)

	updated, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", updated.PasswordHash)
	assert.Nil(t, updated.ResetToken)
	assert.Nil(t, updated.ResetTokenExp)
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := createTestUser(t, db, repo, "frank", "frank@example.com", models.RoleUser)
	require.Nil(t, user.LastLogin)

	require.NoError(t, repo.UpdateLastLogin(user.ID))

	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.NotNil(t, found.LastLogin)
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := createTestUser(t, db, repo, "grace", "grace@example.com", models.RoleCutter)

	item := &models.PortfolioItem{
		CutterProfileID: user.CutterProfile.ID,
		Title:           "Emerald cut sapphire",
		GemstoneType:    "Sapphire",
		CutType:         "Emerald",
	}
	require.NoError(t, db.Create(item).Error)

	var skill models.CuttingSkill
	require.NoError(t, db.First(&skill).Error)
	require.NoError(t, db.Create(&models.CutterSkill{
		CutterProfileID:  user.CutterProfile.ID,
		SkillID:          skill.ID,
		ProficiencyLevel: "Expert",
	}).Error)

	require.NoError(t, repo.Delete(user.ID))

	gone, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	var profiles, items, skills int64
	require.NoError(t, db.Model(&models.CutterProfile{}).Count(&profiles).Error)
	require.NoError(t, db.Model(&models.PortfolioItem{}).Count(&items).Error)
	require.NoError(t, db.Model(&models.CutterSkill{}).Count(&skills).Error)
	assert.Zero(t, profiles)
	assert.Zero(t, items)
	assert.Zero(t, skills)
}

func TestUserRepository_GetAllCutters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	cutter := createTestUser(t, db, repo, "cutter_one", "c1@example.com", models.RoleCutter)
	createTestUser(t, db, repo, "dealer_one", "d1@example.com", models.RoleDealer)

	require.NoError(t, db.Create(&models.PortfolioItem{
		CutterProfileID: cutter.CutterProfile.ID,
		Title:           "Trillion garnet",
		GemstoneType:    "Garnet",
		CutType:         "Trillion",
	}).Error)

	cutters, err := repo.GetAllCutters()
	require.NoError(t, err)
	require.Len(t, cutters, 1)
	assert.Equal(t, "cutter_one", cutters[0].Username)
	require.NotNil(t, cutters[0].CutterProfile)
	require.Len(t, cutters[0].CutterProfile.PortfolioItems, 1)
	assert.Equal(t, "Trillion garnet", cutters[0].CutterProfile.PortfolioItems[0].Title)
}
