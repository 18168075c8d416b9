package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemvault_backend/internal/appErrors"
	"gemvault_backend/internal/auth"
	"gemvault_backend/internal/services/dto"
)

func registerRequest(username, email, role string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Username: username,
		Email:    email,
		Password: "Sapphire123",
		Role:     role,
	}
}

// registerVerified регистрирует пользователя и сразу подтверждает email
func registerVerified(t *testing.T, env *testEnv, req dto.RegisterRequest) *dto.UserResponse {
	t.Helper()

	ctx := context.Background()
	user, err := env.authService.Register(ctx, req)
	require.NoError(t, err)

	token := env.verificationToken(t, req.Email)
	require.NoError(t, env.authService.VerifyEmail(ctx, token))
	return user
}

func TestRegister_CreatesUnverifiedCutter(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	req := registerRequest("alice_cutter", "alice@example.com", "cutter")
	req.CutterProfile = &dto.CutterProfileSeed{
		Specialty:      strPtr("Faceting"),
		ExpertiseLevel: strPtr("Expert"),
	}

	user, err := env.authService.Register(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "alice_cutter", user.Username)
	assert.Equal(t, "cutter", user.Role)
	assert.False(t, user.IsVerified)
	require.NotNil(t, user.CutterProfile)
	assert.Equal(t, "Expert", user.CutterProfile.ExpertiseLevel)
	assert.True(t, user.CutterProfile.AvailableForCustomWork)

	// Токен верификации сохранен в базе и отправлен письмом
	token := env.verificationToken(t, "alice@example.com")
	assert.Len(t, token, 64)
	require.Eventually(t, func() bool {
		return env.emails.VerificationCount() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestRegister_DefaultRoleIsUser(t *testing.T) {
	env := setupTestEnv(t)

	user, err := env.authService.Register(context.Background(), registerRequest("plain", "plain@example.com", ""))
	require.NoError(t, err)

	assert.Equal(t, "user", user.Role)
	assert.Nil(t, user.CutterProfile)
	assert.Nil(t, user.DealerProfile)
	assert.Nil(t, user.AppraiserProfile)
}

func TestRegister_InvalidRole(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.authService.Register(context.Background(), registerRequest("wizard", "wizard@example.com", "wizard"))
	assert.ErrorIs(t, err, appErrors.ErrInvalidUserRole)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	_, err := env.authService.Register(ctx, registerRequest("first", "same@example.com", ""))
	require.NoError(t, err)

	_, err = env.authService.Register(ctx, registerRequest("second", "same@example.com", ""))
	assert.ErrorIs(t, err, appErrors.ErrEmailAlreadyExists)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	_, err := env.authService.Register(ctx, registerRequest("taken", "one@example.com", ""))
	require.NoError(t, err)

	_, err = env.authService.Register(ctx, registerRequest("taken", "two@example.com", ""))
	assert.ErrorIs(t, err, appErrors.ErrUsernameAlreadyExists)
}

func TestLogin_UnverifiedUserRejected(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	_, err := env.authService.Register(ctx, registerRequest("bob", "bob@example.com", ""))
	require.NoError(t, err)

	_, err = env.authService.Login(ctx, dto.LoginRequest{Email: "bob@example.com", Password: "Sapphire123"})
	assert.ErrorIs(t, err, appErrors.ErrUserNotVerified)
}

func TestLogin_IdenticalErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	registerVerified(t, env, registerRequest("bob", "bob@example.com", ""))

	_, errUnknown := env.authService.Login(ctx, dto.LoginRequest{Email: "ghost@example.com", Password: "Sapphire123"})
	_, errWrongPass := env.authService.Login(ctx, dto.LoginRequest{Email: "bob@example.com", Password: "Wrong12345"})

	// Ответ не позволяет отличить несуществующий аккаунт от неверного пароля
	assert.ErrorIs(t, errUnknown, appErrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, appErrors.ErrInvalidCredentials)
}

func TestLogin_ResponseCarriesRoleProfile(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	req := registerRequest("alice_cutter", "alice@example.com", "cutter")
	req.CutterProfile = &dto.CutterProfileSeed{
		Specialty: strPtr("faceting"),
	}
	registerVerified(t, env, req)

	resp, err := env.authService.Login(ctx, dto.LoginRequest{Email: "alice@example.com", Password: "Sapphire123"})
	require.NoError(t, err)

	// Ответ логина сразу несет ролевой профиль
	require.NotNil(t, resp.User.CutterProfile)
	require.NotNil(t, resp.User.CutterProfile.Specialty)
	assert.Equal(t, "faceting", *resp.User.CutterProfile.Specialty)
	assert.Equal(t, "Beginner", resp.User.CutterProfile.ExpertiseLevel)
}

func TestVerifyEmail_ThenLogin(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	registerVerified(t, env, registerRequest("carol", "carol@example.com", "cutter"))

	resp, err := env.authService.Login(ctx, dto.LoginRequest{Email: "carol@example.com", Password: "Sapphire123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.True(t, resp.User.IsVerified)
	assert.NotNil(t, resp.User.LastLogin)

	// Сессионный токен несет ID и роль
	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "cutter", claims.Role)
}

func TestVerifyEmail_TokenIsSingleUse(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	_, err := env.authService.Register(ctx, registerRequest("dave", "dave@example.com", ""))
	require.NoError(t, err)

	token := env.verificationToken(t, "dave@example.com")
	require.NoError(t, env.authService.VerifyEmail(ctx, token))

	err = env.authService.VerifyEmail(ctx, token)
	assert.ErrorIs(t, err, appErrors.ErrInvalidVerificationToken)
}

func TestVerifyEmail_UnknownToken(t *testing.T) {
	env := setupTestEnv(t)

	err := env.authService.VerifyEmail(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, appErrors.ErrInvalidVerificationToken)
}

func TestForgotPassword_UnknownEmailSilentlySucceeds(t *testing.T) {
	env := setupTestEnv(t)

	err := env.authService.ForgotPassword(context.Background(), "ghost@example.com")
	assert.NoError(t, err)
}

func TestResetPassword_FullFlow(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	registerVerified(t, env, registerRequest("erin", "erin@example.com", ""))

	require.NoError(t, env.authService.ForgotPassword(ctx, "erin@example.com"))
	token := env.resetToken(t, "erin@example.com")

	require.NoError(t, env.authService.ResetPassword(ctx, token, "NewSecret99"))

	// Старый пароль больше не работает, новый работает
	_, err := env.authService.Login(ctx, dto.LoginRequest{Email: "erin@example.com", Password: "Sapphire123"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)

	_, err = env.authService.Login(ctx, dto.LoginRequest{Email: "erin@example.com", Password: "NewSecret99"})
	assert.NoError(t, err)

	// Токен одноразовый
	err = env.authService.ResetPassword(ctx, token, "Another123")
	assert.ErrorIs(t, err, appErrors.ErrInvalidResetToken)
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	user := registerVerified(t, env, registerRequest("frank", "frank@example.com", ""))

	require.NoError(t, env.userRepo.SetResetToken(user.ID, "stale-token", time.Now().Add(-time.Minute)))

	err := env.authService.ResetPassword(ctx, "stale-token", "NewSecret99")
	assert.ErrorIs(t, err, appErrors.ErrResetTokenExpired)
}
