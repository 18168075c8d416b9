package validator

import (
	"regexp"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"gemvault_backend/internal/models"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)

// Init регистрирует кастомные правила в валидаторе gin.
// Вызывается один раз при старте приложения.
func Init() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("username", validateUsername); err != nil {
		return err
	}
	if err := v.RegisterValidation("password_strength", validatePasswordStrength); err != nil {
		return err
	}
	if err := v.RegisterValidation("user_role", validateUserRole); err != nil {
		return err
	}
	if err := v.RegisterValidation("expertise_level", validateExpertiseLevel); err != nil {
		return err
	}

	return nil
}

// validateUsername: 3-30 символов, только буквы, цифры и подчеркивание
func validateUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}

// validatePasswordStrength: минимум 8 символов, хотя бы одна заглавная,
// одна строчная буква и одна цифра
func validatePasswordStrength(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasUpper && hasLower && hasDigit
}

func validateUserRole(fl validator.FieldLevel) bool {
	return models.UserRole(fl.Field().String()).Valid()
}

func validateExpertiseLevel(fl validator.FieldLevel) bool {
	return models.ExpertiseLevel(fl.Field().String()).Valid()
}

// FormatValidationErrors превращает ошибки валидатора в map поле -> сообщение
func FormatValidationErrors(err error) map[string]string {
	details := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		details["error"] = err.Error()
		return details
	}

	for _, fieldErr := range validationErrors {
		details[fieldErr.Field()] = messageForTag(fieldErr)
	}

	return details
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "username":
		return "Username must be 3-30 characters and contain only letters, numbers and underscores"
	case "password_strength":
		return "Password must be at least 8 characters and contain uppercase, lowercase and a digit"
	case "user_role":
		return "Invalid user role"
	case "expertise_level":
		return "Expertise level must be one of: Beginner, Intermediate, Expert, Master"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	default:
		return "Invalid value"
	}
}
