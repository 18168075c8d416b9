package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gemvault_backend/database"
	"gemvault_backend/internal/config"
	"gemvault_backend/internal/models"
	"gemvault_backend/internal/repositories"
)

type sentEmail struct {
	To       string
	Username string
	Token    string
}

// fakeEmailProvider записывает отправки вместо реальной доставки.
// Потокобезопасен, потому что сервис шлет письма из горутины.
type fakeEmailProvider struct {
	mu            sync.Mutex
	verifications []sentEmail
	resets        []sentEmail
}

func (p *fakeEmailProvider) SendVerificationEmail(to, username, token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.verifications = append(p.verifications, sentEmail{To: to, Username: username, Token: token})
	return nil
}

func (p *fakeEmailProvider) SendPasswordResetEmail(to, username, token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resets = append(p.resets, sentEmail{To: to, Username: username, Token: token})
	return nil
}

func (p *fakeEmailProvider) VerificationCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.verifications)
}

type testEnv struct {
	db     *gorm.DB
	emails *fakeEmailProvider

	authService      AuthService
	userService      UserService
	referenceService ReferenceService

	userRepo repositories.UserRepository
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLHours = 1
	config.AppConfig = cfg

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	portfolioRepo := repositories.NewPortfolioRepository(db)
	referenceRepo := repositories.NewReferenceRepository(db)

	emails := &fakeEmailProvider{}

	return &testEnv{
		db:               db,
		emails:           emails,
		authService:      NewAuthService(userRepo, emails),
		userService:      NewUserService(userRepo, profileRepo, portfolioRepo),
		referenceService: NewReferenceService(referenceRepo),
		userRepo:         userRepo,
	}
}

// verificationToken читает токен напрямую из базы:
// API его не возвращает
func (env *testEnv) verificationToken(t *testing.T, email string) string {
	t.Helper()

	var user models.User
	require.NoError(t, env.db.First(&user, "email = ?", email).Error)
	require.NotNil(t, user.VerificationToken)
	return *user.VerificationToken
}

func (env *testEnv) resetToken(t *testing.T, email string) string {
	t.Helper()

	var user models.User
	require.NoError(t, env.db.First(&user, "email = ?", email).Error)
	require.NotNil(t, user.ResetToken)
	return *user.ResetToken
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
