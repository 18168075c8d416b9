package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gemvault_backend/database"
	"gemvault_backend/internal/models"
)

// setupTestDB поднимает чистую in-memory базу со схемой и сидами
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

func roleID(t *testing.T, db *gorm.DB, name models.UserRole) uint {
	t.Helper()

	var role models.Role
	require.NoError(t, db.First(&role, "name = ?", string(name)).Error)
	return role.ID
}

// createTestUser создает пользователя с ролевым профилем для cutter
func createTestUser(t *testing.T, db *gorm.DB, repo UserRepository, username, email string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "not-a-real-hash",
		RoleID:       roleID(t, db, role),
	}
	if role == models.RoleCutter {
		user.CutterProfile = &models.CutterProfile{
			ExpertiseLevel:         string(models.ExpertiseBeginner),
			AvailableForCustomWork: true,
		}
	}

	require.NoError(t, repo.Create(user))
	return user
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
