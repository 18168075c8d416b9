package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gemvault_backend/internal/appErrors"
	"gemvault_backend/internal/auth"
	"gemvault_backend/internal/email"
	"gemvault_backend/internal/logger"
	"gemvault_backend/internal/models"
	"gemvault_backend/internal/repositories"
	"gemvault_backend/internal/services/dto"
)

const resetTokenTTL = time.Hour

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	VerifyEmail(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	emails   email.Provider
}

func NewAuthService(userRepo repositories.UserRepository, emails email.Provider) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		emails:   emails,
	}
}

// Register создает аккаунт с ролевым профилем и отправляет письмо
// с токеном верификации. Токен в ответ API не попадает.
func (s *AuthServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	roleName := req.Role
	if roleName == "" {
		roleName = string(models.RoleUser)
	}
	if !models.UserRole(roleName).Valid() {
		return nil, appErrors.ErrInvalidUserRole
	}

	// Быстрая проверка уникальности для дружелюбной ошибки.
	// Гонку закрывают уникальные индексы схемы.
	if existing, err := s.userRepo.FindByEmail(req.Email); err != nil {
		return nil, appErrors.InternalError(err)
	} else if existing != nil {
		return nil, appErrors.ErrEmailAlreadyExists
	}
	if existing, err := s.userRepo.FindByUsername(req.Username); err != nil {
		return nil, appErrors.InternalError(err)
	} else if existing != nil {
		return nil, appErrors.ErrUsernameAlreadyExists
	}

	role, err := s.userRepo.FindRoleByName(roleName)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if role == nil {
		return nil, appErrors.ErrInvalidUserRole
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	verificationToken, err := auth.GenerateRandomToken()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	user := &models.User{
		Username:          req.Username,
		Email:             req.Email,
		PasswordHash:      passwordHash,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		RoleID:            role.ID,
		Role:              *role,
		VerificationToken: &verificationToken,
	}
	attachRoleProfile(user, roleName, req)

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.duplicateError(req.Email)
		}
		return nil, appErrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "User registered", "user_id", user.ID, "role", roleName)

	// Отправка письма не блокирует регистрацию
	go func(to, username, token string) {
		if err := s.emails.SendVerificationEmail(to, username, token); err != nil {
			logger.Error("Failed to send verification email", "error", err, "to", to)
		}
	}(user.Email, user.Username, verificationToken)

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// duplicateError выясняет, какой именно уникальный индекс сработал
func (s *AuthServiceImpl) duplicateError(email string) (*dto.UserResponse, error) {
	if existing, err := s.userRepo.FindByEmail(email); err == nil && existing != nil {
		return nil, appErrors.ErrEmailAlreadyExists
	}
	return nil, appErrors.ErrUsernameAlreadyExists
}

func attachRoleProfile(user *models.User, roleName string, req dto.RegisterRequest) {
	switch models.UserRole(roleName) {
	case models.RoleCutter:
		profile := &models.CutterProfile{
			ExpertiseLevel:         string(models.ExpertiseBeginner),
			AvailableForCustomWork: true,
		}
		if seed := req.CutterProfile; seed != nil {
			profile.Specialty = seed.Specialty
			profile.ExperienceYears = seed.ExperienceYears
			profile.Certification = datatypes.NewJSONSlice(seed.Certification)
			profile.Bio = seed.Bio
			profile.WorkshopLocation = seed.WorkshopLocation
			profile.ToolsUsed = seed.ToolsUsed
			if seed.ExpertiseLevel != nil {
				profile.ExpertiseLevel = *seed.ExpertiseLevel
			}
			if seed.AvailableForCustomWork != nil {
				profile.AvailableForCustomWork = *seed.AvailableForCustomWork
			}
		}
		user.CutterProfile = profile

	case models.RoleDealer:
		profile := &models.DealerProfile{}
		if seed := req.DealerProfile; seed != nil {
			profile.CompanyName = seed.CompanyName
			profile.BusinessLicense = seed.BusinessLicense
			profile.SpecialtyTypes = datatypes.NewJSONSlice(seed.SpecialtyTypes)
			profile.YearsInBusiness = seed.YearsInBusiness
		}
		user.DealerProfile = profile

	case models.RoleAppraiser:
		profile := &models.AppraiserProfile{}
		if seed := req.AppraiserProfile; seed != nil {
			profile.CertificationAuthority = seed.CertificationAuthority
			profile.CertificationNumber = seed.CertificationNumber
			profile.Specialization = datatypes.NewJSONSlice(seed.Specialization)
			profile.YearsExperience = seed.YearsExperience
		}
		user.AppraiserProfile = profile
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if user == nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
		return nil, appErrors.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, appErrors.ErrUserNotVerified
	}

	token, err := auth.GenerateToken(user.ID, user.RoleName())
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		logger.CtxWarn(ctx, "Failed to update last login", "error", err, "user_id", user.ID)
	} else {
		now := time.Now()
		user.LastLogin = &now
	}

	logger.CtxInfo(ctx, "User logged in", "user_id", user.ID)

	// Ответ логина несет полный профиль с портфолио, поэтому
	// пользователь перечитывается со всеми связями
	full, err := s.userRepo.FindByID(user.ID)
	if err != nil || full == nil {
		full = user
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(full),
	}, nil
}

// VerifyEmail гасит одноразовый токен: повторный вызов с тем же
// токеном вернет ошибку, потому что токен уже обнулен.
func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		return appErrors.InternalError(err)
	}
	if user == nil {
		return appErrors.ErrInvalidVerificationToken
	}

	if err := s.userRepo.MarkVerified(user.ID); err != nil {
		return appErrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Email verified", "user_id", user.ID)
	return nil
}

// ForgotPassword отвечает одинаково вне зависимости от того,
// существует ли аккаунт
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		return appErrors.InternalError(err)
	}
	if user == nil {
		logger.CtxDebug(ctx, "Password reset requested for unknown email")
		return nil
	}

	resetToken, err := auth.GenerateRandomToken()
	if err != nil {
		return appErrors.InternalError(err)
	}

	if err := s.userRepo.SetResetToken(user.ID, resetToken, time.Now().Add(resetTokenTTL)); err != nil {
		return appErrors.InternalError(err)
	}

	go func(to, username, token string) {
		if err := s.emails.SendPasswordResetEmail(to, username, token); err != nil {
			logger.Error("Failed to send password reset email", "error", err, "to", to)
		}
	}(user.Email, user.Username, resetToken)

	logger.CtxInfo(ctx, "Password reset requested", "user_id", user.ID)
	return nil
}

func (s *AuthServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		return appErrors.InternalError(err)
	}
	if user == nil {
		return appErrors.ErrInvalidResetToken
	}

	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		return appErrors.ErrResetTokenExpired
	}

	passwordHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return appErrors.InternalError(err)
	}

	if err := s.userRepo.ResetPassword(user.ID, passwordHash); err != nil {
		return appErrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Password reset completed", "user_id", user.ID)
	return nil
}
