package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gemvault_backend/internal/models"
)

// UserUpdateInput - частичное обновление аккаунта.
// nil-поле означает "не трогать". Перечень полей закрытый:
// все, что не перечислено здесь, через Update изменить нельзя.
type UserUpdateInput struct {
	Username        *string
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
	PasswordHash    *string
}

type UserRepository interface {
	// Create создает пользователя вместе с его ролевым профилем
	// в одной транзакции
	Create(user *models.User) error

	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByVerificationToken(token string) (*models.User, error)
	FindByResetToken(token string) (*models.User, error)
	FindRoleByName(name string) (*models.Role, error)

	Update(id uint, input UserUpdateInput) error
	UpdateLastLogin(id uint) error
	MarkVerified(id uint) error
	SetResetToken(id uint, token string, expiresAt time.Time) error
	ResetPassword(id uint, passwordHash string) error

	Delete(id uint) error

	GetAllCutters() ([]models.User, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		cutterProfile := user.CutterProfile
		dealerProfile := user.DealerProfile
		appraiserProfile := user.AppraiserProfile
		user.CutterProfile = nil
		user.DealerProfile = nil
		user.AppraiserProfile = nil

		// Ассоциации создаются вручную ниже, автосохранение отключено
		if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
			return err
		}

		if cutterProfile != nil {
			cutterProfile.UserID = user.ID
			if err := tx.Create(cutterProfile).Error; err != nil {
				return err
			}
			user.CutterProfile = cutterProfile
		}
		if dealerProfile != nil {
			dealerProfile.UserID = user.ID
			if err := tx.Create(dealerProfile).Error; err != nil {
				return err
			}
			user.DealerProfile = dealerProfile
		}
		if appraiserProfile != nil {
			appraiserProfile.UserID = user.ID
			if err := tx.Create(appraiserProfile).Error; err != nil {
				return err
			}
			user.AppraiserProfile = appraiserProfile
		}

		return nil
	})
}

// FindByID возвращает (nil, nil), если пользователь не найден.
// Решение, ошибка это или нет, принимает вызывающий код.
func (r *UserRepositoryImpl) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Role").
		Preload("CutterProfile").
		Preload("CutterProfile.PortfolioItems").
		Preload("CutterProfile.Skills.Skill").
		Preload("DealerProfile").Preload("AppraiserProfile").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Role").First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Role").First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByVerificationToken(token string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "verification_token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByResetToken(token string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "reset_token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindRoleByName(name string) (*models.Role, error) {
	var role models.Role
	err := r.db.First(&role, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

// Update применяет частичное обновление. Собирается map только из
// переданных полей, updated_at обновляется всегда - даже пустой
// ввод фиксирует факт изменения.
func (r *UserRepositoryImpl) Update(id uint, input UserUpdateInput) error {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}

	if input.Username != nil {
		updates["username"] = *input.Username
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.FirstName != nil {
		updates["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		updates["last_name"] = *input.LastName
	}
	if input.ProfileImageURL != nil {
		updates["profile_image_url"] = *input.ProfileImageURL
	}
	if input.PasswordHash != nil {
		updates["password_hash"] = *input.PasswordHash
	}

	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error
}

func (r *UserRepositoryImpl) UpdateLastLogin(id uint) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Update("last_login", time.Now()).Error
}

// MarkVerified помечает email подтвержденным и гасит токен
func (r *UserRepositoryImpl) MarkVerified(id uint) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_verified":        true,
		"verification_token": nil,
	}).Error
}

func (r *UserRepositoryImpl) SetResetToken(id uint, token string, expiresAt time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"reset_token":     token,
		"reset_token_exp": expiresAt,
	}).Error
}

// ResetPassword устанавливает новый хеш и гасит reset-токен
// одним запросом
func (r *UserRepositoryImpl) ResetPassword(id uint, passwordHash string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password_hash":   passwordHash,
		"reset_token":     nil,
		"reset_token_exp": nil,
	}).Error
}

// Delete удаляет пользователя и все зависимые строки в одной транзакции
func (r *UserRepositoryImpl) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var cutterProfile models.CutterProfile
		err := tx.First(&cutterProfile, "user_id = ?", id).Error
		if err == nil {
			if err := tx.Where("cutter_profile_id = ?", cutterProfile.ID).
				Delete(&models.PortfolioItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("cutter_profile_id = ?", cutterProfile.ID).
				Delete(&models.CutterSkill{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&cutterProfile).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.DealerProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.AppraiserProfile{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.User{}, id).Error
	})
}

// GetAllCutters возвращает всех огранщиков с профилем и портфолио
func (r *UserRepositoryImpl) GetAllCutters() ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("Role").
		Preload("CutterProfile").
		Preload("CutterProfile.PortfolioItems").
		Preload("CutterProfile.Skills.Skill").
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", models.RoleCutter).
		Order("users.id").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
