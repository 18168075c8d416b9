package repositories

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gemvault_backend/internal/models"
)

// Частичные обновления ролевых профилей. nil = не трогать.

type CutterProfileUpdateInput struct {
	Specialty              *string
	ExperienceYears        *int
	Certification          *[]string
	Bio                    *string
	WorkshopLocation       *string
	ExpertiseLevel         *string
	AvailableForCustomWork *bool
	ToolsUsed              *string
}

type DealerProfileUpdateInput struct {
	CompanyName     *string
	BusinessLicense *string
	SpecialtyTypes  *[]string
	YearsInBusiness *int
}

type AppraiserProfileUpdateInput struct {
	CertificationAuthority *string
	CertificationNumber    *string
	Specialization         *[]string
	YearsExperience        *int
}

type ProfileRepository interface {
	FindCutterByUserID(userID uint) (*models.CutterProfile, error)
	FindDealerByUserID(userID uint) (*models.DealerProfile, error)
	FindAppraiserByUserID(userID uint) (*models.AppraiserProfile, error)

	// Create* нужны для ленивого создания профиля при первом
	// обновлении, когда профиль не был заведен при регистрации
	CreateCutter(profile *models.CutterProfile) error
	CreateDealer(profile *models.DealerProfile) error
	CreateAppraiser(profile *models.AppraiserProfile) error

	UpdateCutter(userID uint, input CutterProfileUpdateInput) (int64, error)
	UpdateDealer(userID uint, input DealerProfileUpdateInput) (int64, error)
	UpdateAppraiser(userID uint, input AppraiserProfileUpdateInput) (int64, error)
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) FindCutterByUserID(userID uint) (*models.CutterProfile, error) {
	var profile models.CutterProfile
	err := r.db.Preload("PortfolioItems").Preload("Skills.Skill").
		First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindDealerByUserID(userID uint) (*models.DealerProfile, error) {
	var profile models.DealerProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindAppraiserByUserID(userID uint) (*models.AppraiserProfile, error) {
	var profile models.AppraiserProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) CreateCutter(profile *models.CutterProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) CreateDealer(profile *models.DealerProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) CreateAppraiser(profile *models.AppraiserProfile) error {
	return r.db.Create(profile).Error
}

// UpdateCutter применяет частичное обновление по user_id.
// Возвращает число затронутых строк: 0 = профиля нет.
func (r *ProfileRepositoryImpl) UpdateCutter(userID uint, input CutterProfileUpdateInput) (int64, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}

	if input.Specialty != nil {
		updates["specialty"] = *input.Specialty
	}
	if input.ExperienceYears != nil {
		updates["experience_years"] = *input.ExperienceYears
	}
	if input.Certification != nil {
		updates["certification"] = datatypes.NewJSONSlice(*input.Certification)
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.WorkshopLocation != nil {
		updates["workshop_location"] = *input.WorkshopLocation
	}
	if input.ExpertiseLevel != nil {
		updates["expertise_level"] = *input.ExpertiseLevel
	}
	if input.AvailableForCustomWork != nil {
		updates["available_for_custom_work"] = *input.AvailableForCustomWork
	}
	if input.ToolsUsed != nil {
		updates["tools_used"] = *input.ToolsUsed
	}

	result := r.db.Model(&models.CutterProfile{}).Where("user_id = ?", userID).Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *ProfileRepositoryImpl) UpdateDealer(userID uint, input DealerProfileUpdateInput) (int64, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}

	if input.CompanyName != nil {
		updates["company_name"] = *input.CompanyName
	}
	if input.BusinessLicense != nil {
		updates["business_license"] = *input.BusinessLicense
	}
	if input.SpecialtyTypes != nil {
		updates["specialty_types"] = datatypes.NewJSONSlice(*input.SpecialtyTypes)
	}
	if input.YearsInBusiness != nil {
		updates["years_in_business"] = *input.YearsInBusiness
	}

	result := r.db.Model(&models.DealerProfile{}).Where("user_id = ?", userID).Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *ProfileRepositoryImpl) UpdateAppraiser(userID uint, input AppraiserProfileUpdateInput) (int64, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}

	if input.CertificationAuthority != nil {
		updates["certification_authority"] = *input.CertificationAuthority
	}
	if input.CertificationNumber != nil {
		updates["certification_number"] = *input.CertificationNumber
	}
	if input.Specialization != nil {
		updates["specialization"] = datatypes.NewJSONSlice(*input.Specialization)
	}
	if input.YearsExperience != nil {
		updates["years_experience"] = *input.YearsExperience
	}

	result := r.db.Model(&models.AppraiserProfile{}).Where("user_id = ?", userID).Updates(updates)
	return result.RowsAffected, result.Error
}
