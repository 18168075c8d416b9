package dto

// UpdateUserRequest - частичное обновление аккаунта.
// Отсутствующее поле не изменяется.
type UpdateUserRequest struct {
	Username        *string `json:"username" binding:"omitempty,username"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Password        *string `json:"password" binding:"omitempty,password_strength"`
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	ProfileImageURL *string `json:"profile_image_url"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,password_strength"`
}

type UpdateCutterProfileRequest struct {
	Specialty              *string   `json:"specialty"`
	ExperienceYears        *int      `json:"experience_years" binding:"omitempty,gte=0"`
	Certification          *[]string `json:"certification"`
	Bio                    *string   `json:"bio"`
	WorkshopLocation       *string   `json:"workshop_location"`
	ExpertiseLevel         *string   `json:"expertise_level" binding:"omitempty,expertise_level"`
	AvailableForCustomWork *bool     `json:"available_for_custom_work"`
	ToolsUsed              *string   `json:"tools_used"`
}

type UpdateDealerProfileRequest struct {
	CompanyName     *string   `json:"company_name"`
	BusinessLicense *string   `json:"business_license"`
	SpecialtyTypes  *[]string `json:"specialty_types"`
	YearsInBusiness *int      `json:"years_in_business" binding:"omitempty,gte=0"`
}

type UpdateAppraiserProfileRequest struct {
	CertificationAuthority *string   `json:"certification_authority"`
	CertificationNumber    *string   `json:"certification_number"`
	Specialization         *[]string `json:"specialization"`
	YearsExperience        *int      `json:"years_experience" binding:"omitempty,gte=0"`
}
