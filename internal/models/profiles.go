package models

import "gorm.io/datatypes"

type ExpertiseLevel string

const (
	ExpertiseBeginner     ExpertiseLevel = "Beginner"
	ExpertiseIntermediate ExpertiseLevel = "Intermediate"
	ExpertiseExpert       ExpertiseLevel = "Expert"
	ExpertiseMaster       ExpertiseLevel = "Master"
)

func (l ExpertiseLevel) Valid() bool {
	switch l {
	case ExpertiseBeginner, ExpertiseIntermediate, ExpertiseExpert, ExpertiseMaster:
		return true
	}
	return false
}

// CutterProfile - профиль огранщика. Создается вместе с пользователем
// в одной транзакции, один на пользователя.
type CutterProfile struct {
	BaseModel
	UserID                 uint                        `gorm:"uniqueIndex;not null" json:"user_id"`
	Specialty              *string                     `gorm:"size:255" json:"specialty"`
	ExperienceYears        *int                        `json:"experience_years"`
	Certification          datatypes.JSONSlice[string] `json:"certification"`
	PortfolioVerified      bool                        `gorm:"default:false" json:"portfolio_verified"`
	Bio                    *string                     `gorm:"type:text" json:"bio"`
	WorkshopLocation       *string                     `gorm:"size:255" json:"workshop_location"`
	ExpertiseLevel         string                      `gorm:"size:20;default:'Beginner'" json:"expertise_level"`
	AvailableForCustomWork bool                        `gorm:"default:true" json:"available_for_custom_work"`
	ToolsUsed              *string                     `gorm:"type:text" json:"tools_used"`

	PortfolioItems []PortfolioItem `gorm:"foreignKey:CutterProfileID" json:"portfolio_items,omitempty"`
	Skills         []CutterSkill   `gorm:"foreignKey:CutterProfileID" json:"skills,omitempty"`
}

// DealerProfile - профиль дилера
type DealerProfile struct {
	BaseModel
	UserID          uint                        `gorm:"uniqueIndex;not null" json:"user_id"`
	CompanyName     *string                     `gorm:"size:255" json:"company_name"`
	BusinessLicense *string                     `gorm:"size:255" json:"business_license"`
	SpecialtyTypes  datatypes.JSONSlice[string] `json:"specialty_types"`
	YearsInBusiness *int                        `json:"years_in_business"`
}

// AppraiserProfile - профиль оценщика
type AppraiserProfile struct {
	BaseModel
	UserID                 uint                        `gorm:"uniqueIndex;not null" json:"user_id"`
	CertificationAuthority *string                     `gorm:"size:255" json:"certification_authority"`
	CertificationNumber    *string                     `gorm:"size:255" json:"certification_number"`
	Specialization         datatypes.JSONSlice[string] `json:"specialization"`
	YearsExperience        *int                        `json:"years_experience"`
	AppraisalCount         int                         `gorm:"default:0" json:"appraisal_count"`
}
