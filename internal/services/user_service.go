package services

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gemvault_backend/internal/appErrors"
	"gemvault_backend/internal/auth"
	"gemvault_backend/internal/logger"
	"gemvault_backend/internal/models"
	"gemvault_backend/internal/repositories"
	"gemvault_backend/internal/services/dto"
)

type UserService interface {
	GetUserByID(ctx context.Context, id uint) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, id uint, req dto.ChangePasswordRequest) error
	DeleteUser(ctx context.Context, id uint) error

	GetAllCutters(ctx context.Context) ([]dto.UserResponse, error)
	GetCutterByID(ctx context.Context, userID uint) (*dto.UserResponse, error)

	UpdateCutterProfile(ctx context.Context, userID uint, req dto.UpdateCutterProfileRequest) (*models.CutterProfile, error)
	UpdateDealerProfile(ctx context.Context, userID uint, req dto.UpdateDealerProfileRequest) (*models.DealerProfile, error)
	UpdateAppraiserProfile(ctx context.Context, userID uint, req dto.UpdateAppraiserProfileRequest) (*models.AppraiserProfile, error)

	GetPortfolio(ctx context.Context, cutterUserID uint) ([]models.PortfolioItem, error)
	AddPortfolioItem(ctx context.Context, userID uint, req dto.CreatePortfolioItemRequest) (*models.PortfolioItem, error)
	UpdatePortfolioItem(ctx context.Context, userID, itemID uint, req dto.UpdatePortfolioItemRequest) (*models.PortfolioItem, error)
	DeletePortfolioItem(ctx context.Context, userID, itemID uint) error
}

type UserServiceImpl struct {
	userRepo      repositories.UserRepository
	profileRepo   repositories.ProfileRepository
	portfolioRepo repositories.PortfolioRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	portfolioRepo repositories.PortfolioRepository,
) UserService {
	return &UserServiceImpl{
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		portfolioRepo: portfolioRepo,
	}
}

func (s *UserServiceImpl) GetUserByID(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if user == nil {
		return nil, appErrors.ErrUserNotFound
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if user == nil {
		return nil, appErrors.ErrUserNotFound
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.userRepo.FindByEmail(*req.Email)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		if existing != nil {
			return nil, appErrors.ErrEmailAlreadyExists
		}
	}
	if req.Username != nil && *req.Username != user.Username {
		existing, err := s.userRepo.FindByUsername(*req.Username)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		if existing != nil {
			return nil, appErrors.ErrUsernameAlreadyExists
		}
	}

	input := repositories.UserUpdateInput{
		Username:        req.Username,
		Email:           req.Email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ProfileImageURL: req.ProfileImageURL,
	}

	if req.Password != nil {
		passwordHash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		input.PasswordHash = &passwordHash
	}

	if err := s.userRepo.Update(id, input); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, appErrors.ErrEmailAlreadyExists
		}
		return nil, appErrors.InternalError(err)
	}

	updated, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "User updated", "user_id", id)

	resp := dto.NewUserResponse(updated)
	return &resp, nil
}

// ChangePassword требует текущий пароль даже при живой сессии
func (s *UserServiceImpl) ChangePassword(ctx context.Context, id uint, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return appErrors.InternalError(err)
	}
	if user == nil {
		return appErrors.ErrUserNotFound
	}

	if !auth.CheckPassword(req.CurrentPassword, user.PasswordHash) {
		return appErrors.ErrIncorrectPassword
	}

	passwordHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return appErrors.InternalError(err)
	}

	if err := s.userRepo.Update(id, repositories.UserUpdateInput{PasswordHash: &passwordHash}); err != nil {
		return appErrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Password changed", "user_id", id)
	return nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id uint) error {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return appErrors.InternalError(err)
	}
	if user == nil {
		return appErrors.ErrUserNotFound
	}

	if err := s.userRepo.Delete(id); err != nil {
		return appErrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "User deleted", "user_id", id)
	return nil
}

func (s *UserServiceImpl) GetAllCutters(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.userRepo.GetAllCutters()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}
	return responses, nil
}

// GetCutterByID - публичная карточка огранщика с профилем и портфолио
func (s *UserServiceImpl) GetCutterByID(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if user == nil || user.RoleName() != string(models.RoleCutter) {
		return nil, appErrors.ErrCutterNotFound
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Профили.
// Профиль заводится лениво при первом обновлении, если его не было
// при регистрации, но только для пользователя с подходящей ролью.

// requireRole возвращает ErrProfileNotFound, если роль пользователя
// не соответствует запрошенному профилю
func (s *UserServiceImpl) requireRole(userID uint, role models.UserRole) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return appErrors.InternalError(err)
	}
	if user == nil {
		return appErrors.ErrUserNotFound
	}
	if user.RoleName() != string(role) {
		return appErrors.ErrProfileNotFound
	}
	return nil
}

func (s *UserServiceImpl) UpdateCutterProfile(ctx context.Context, userID uint, req dto.UpdateCutterProfileRequest) (*models.CutterProfile, error) {
	existing, err := s.profileRepo.FindCutterByUserID(userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	if existing == nil {
		if err := s.requireRole(userID, models.RoleCutter); err != nil {
			return nil, err
		}

		profile := &models.CutterProfile{
			UserID:                 userID,
			Specialty:              req.Specialty,
			ExperienceYears:        req.ExperienceYears,
			Bio:                    req.Bio,
			WorkshopLocation:       req.WorkshopLocation,
			ExpertiseLevel:         string(models.ExpertiseBeginner),
			AvailableForCustomWork: true,
			ToolsUsed:              req.ToolsUsed,
		}
		if req.Certification != nil {
			profile.Certification = datatypes.NewJSONSlice(*req.Certification)
		}
		if req.ExpertiseLevel != nil {
			profile.ExpertiseLevel = *req.ExpertiseLevel
		}
		if req.AvailableForCustomWork != nil {
			profile.AvailableForCustomWork = *req.AvailableForCustomWork
		}

		if err := s.profileRepo.CreateCutter(profile); err != nil {
			return nil, appErrors.InternalError(err)
		}
		return profile, nil
	}

	input := repositories.CutterProfileUpdateInput{
		Specialty:              req.Specialty,
		ExperienceYears:        req.ExperienceYears,
		Certification:          req.Certification,
		Bio:                    req.Bio,
		WorkshopLocation:       req.WorkshopLocation,
		ExpertiseLevel:         req.ExpertiseLevel,
		AvailableForCustomWork: req.AvailableForCustomWork,
		ToolsUsed:              req.ToolsUsed,
	}

	if _, err := s.profileRepo.UpdateCutter(userID, input); err != nil {
		return nil, appErrors.InternalError(err)
	}

	return s.profileRepo.FindCutterByUserID(userID)
}

func (s *UserServiceImpl) UpdateDealerProfile(ctx context.Context, userID uint, req dto.UpdateDealerProfileRequest) (*models.DealerProfile, error) {
	existing, err := s.profileRepo.FindDealerByUserID(userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	if existing == nil {
		if err := s.requireRole(userID, models.RoleDealer); err != nil {
			return nil, err
		}

		profile := &models.DealerProfile{
			UserID:          userID,
			CompanyName:     req.CompanyName,
			BusinessLicense: req.BusinessLicense,
			YearsInBusiness: req.YearsInBusiness,
		}
		if req.SpecialtyTypes != nil {
			profile.SpecialtyTypes = datatypes.NewJSONSlice(*req.SpecialtyTypes)
		}

		if err := s.profileRepo.CreateDealer(profile); err != nil {
			return nil, appErrors.InternalError(err)
		}
		return profile, nil
	}

	input := repositories.DealerProfileUpdateInput{
		CompanyName:     req.CompanyName,
		BusinessLicense: req.BusinessLicense,
		SpecialtyTypes:  req.SpecialtyTypes,
		YearsInBusiness: req.YearsInBusiness,
	}

	if _, err := s.profileRepo.UpdateDealer(userID, input); err != nil {
		return nil, appErrors.InternalError(err)
	}

	return s.profileRepo.FindDealerByUserID(userID)
}

func (s *UserServiceImpl) UpdateAppraiserProfile(ctx context.Context, userID uint, req dto.UpdateAppraiserProfileRequest) (*models.AppraiserProfile, error) {
	existing, err := s.profileRepo.FindAppraiserByUserID(userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	if existing == nil {
		if err := s.requireRole(userID, models.RoleAppraiser); err != nil {
			return nil, err
		}

		profile := &models.AppraiserProfile{
			UserID:                 userID,
			CertificationAuthority: req.CertificationAuthority,
			CertificationNumber:    req.CertificationNumber,
			YearsExperience:        req.YearsExperience,
		}
		if req.Specialization != nil {
			profile.Specialization = datatypes.NewJSONSlice(*req.Specialization)
		}

		if err := s.profileRepo.CreateAppraiser(profile); err != nil {
			return nil, appErrors.InternalError(err)
		}
		return profile, nil
	}

	input := repositories.AppraiserProfileUpdateInput{
		CertificationAuthority: req.CertificationAuthority,
		CertificationNumber:    req.CertificationNumber,
		Specialization:         req.Specialization,
		YearsExperience:        req.YearsExperience,
	}

	if _, err := s.profileRepo.UpdateAppraiser(userID, input); err != nil {
		return nil, appErrors.InternalError(err)
	}

	return s.profileRepo.FindAppraiserByUserID(userID)
}

// Портфолио

// cutterProfileFor возвращает профиль огранщика или ошибку,
// если у пользователя его нет
func (s *UserServiceImpl) cutterProfileFor(userID uint) (*models.CutterProfile, error) {
	profile, err := s.profileRepo.FindCutterByUserID(userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if profile == nil {
		return nil, appErrors.ErrCutterNotFound
	}
	return profile, nil
}

func (s *UserServiceImpl) GetPortfolio(ctx context.Context, cutterUserID uint) ([]models.PortfolioItem, error) {
	profile, err := s.cutterProfileFor(cutterUserID)
	if err != nil {
		return nil, err
	}

	return s.portfolioRepo.ListByCutterProfile(profile.ID)
}

func (s *UserServiceImpl) AddPortfolioItem(ctx context.Context, userID uint, req dto.CreatePortfolioItemRequest) (*models.PortfolioItem, error) {
	profile, err := s.cutterProfileFor(userID)
	if err != nil {
		return nil, err
	}

	item := &models.PortfolioItem{
		CutterProfileID: profile.ID,
		Title:           req.Title,
		Description:     req.Description,
		GemstoneType:    req.GemstoneType,
		CutType:         req.CutType,
		ImageURLs:       datatypes.NewJSONSlice(req.ImageURLs),
	}

	if err := s.portfolioRepo.Create(item); err != nil {
		return nil, appErrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Portfolio item created", "user_id", userID, "item_id", item.ID)
	return item, nil
}

func (s *UserServiceImpl) UpdatePortfolioItem(ctx context.Context, userID, itemID uint, req dto.UpdatePortfolioItemRequest) (*models.PortfolioItem, error) {
	profile, err := s.cutterProfileFor(userID)
	if err != nil {
		return nil, err
	}

	input := repositories.PortfolioItemUpdateInput{
		Title:        req.Title,
		Description:  req.Description,
		GemstoneType: req.GemstoneType,
		CutType:      req.CutType,
		ImageURLs:    req.ImageURLs,
	}

	rows, err := s.portfolioRepo.Update(itemID, profile.ID, input)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if rows == 0 {
		return nil, appErrors.ErrPortfolioItemNotFound
	}

	return s.portfolioRepo.FindByID(itemID)
}

func (s *UserServiceImpl) DeletePortfolioItem(ctx context.Context, userID, itemID uint) error {
	profile, err := s.cutterProfileFor(userID)
	if err != nil {
		return err
	}

	rows, err := s.portfolioRepo.Delete(itemID, profile.ID)
	if err != nil {
		return appErrors.InternalError(err)
	}
	if rows == 0 {
		return appErrors.ErrPortfolioItemNotFound
	}

	logger.CtxInfo(ctx, "Portfolio item deleted", "user_id", userID, "item_id", itemID)
	return nil
}
