package dto

import (
	"time"

	"gemvault_backend/internal/models"
)

type RegisterRequest struct {
	Username  string  `json:"username" binding:"required,username"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,password_strength"`
	Role      string  `json:"role" binding:"omitempty,user_role"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`

	// Данные ролевого профиля, учитываются только при совпадающей роли
	CutterProfile    *CutterProfileSeed    `json:"cutter_profile"`
	DealerProfile    *DealerProfileSeed    `json:"dealer_profile"`
	AppraiserProfile *AppraiserProfileSeed `json:"appraiser_profile"`
}

type CutterProfileSeed struct {
	Specialty              *string  `json:"specialty"`
	ExperienceYears        *int     `json:"experience_years"`
	Certification          []string `json:"certification"`
	Bio                    *string  `json:"bio"`
	WorkshopLocation       *string  `json:"workshop_location"`
	ExpertiseLevel         *string  `json:"expertise_level" binding:"omitempty,expertise_level"`
	AvailableForCustomWork *bool    `json:"available_for_custom_work"`
	ToolsUsed              *string  `json:"tools_used"`
}

type DealerProfileSeed struct {
	CompanyName     *string  `json:"company_name"`
	BusinessLicense *string  `json:"business_license"`
	SpecialtyTypes  []string `json:"specialty_types"`
	YearsInBusiness *int     `json:"years_in_business"`
}

type AppraiserProfileSeed struct {
	CertificationAuthority *string  `json:"certification_authority"`
	CertificationNumber    *string  `json:"certification_number"`
	Specialization         []string `json:"specialization"`
	YearsExperience        *int     `json:"years_experience"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,password_strength"`
}

// UserResponse - представление пользователя в ответах API.
// Хеш пароля и одноразовые токены наружу не отдаются никогда.
type UserResponse struct {
	ID              uint       `json:"id"`
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	FirstName       *string    `json:"first_name"`
	LastName        *string    `json:"last_name"`
	ProfileImageURL *string    `json:"profile_image_url"`
	Role            string     `json:"role"`
	IsVerified      bool       `json:"is_verified"`
	LastLogin       *time.Time `json:"last_login"`
	CreatedAt       time.Time  `json:"created_at"`

	CutterProfile    *models.CutterProfile    `json:"cutter_profile,omitempty"`
	DealerProfile    *models.DealerProfile    `json:"dealer_profile,omitempty"`
	AppraiserProfile *models.AppraiserProfile `json:"appraiser_profile,omitempty"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Username:        user.Username,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		ProfileImageURL: user.ProfileImageURL,
		Role:            user.RoleName(),
		IsVerified:      user.IsVerified,
		LastLogin:       user.LastLogin,
		CreatedAt:       user.CreatedAt,

		CutterProfile:    user.CutterProfile,
		DealerProfile:    user.DealerProfile,
		AppraiserProfile: user.AppraiserProfile,
	}
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
