package appErrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения.
// HTTP-маппинг выполняется по полю HTTPCode, а не по тексту сообщения.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Конструктор
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// С цепочкой ошибок
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// Вспомогательные методы
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// Для маршалинга в JSON
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Предопределенные ошибки
var (
	// Аутентификация
	// Одно и то же сообщение для "нет такого пользователя" и "неверный пароль",
	// чтобы не раскрывать существование аккаунта.
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Insufficient permissions", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
	ErrUserNotVerified    = New(CodeUserNotVerified, "Please verify your email before logging in", http.StatusUnauthorized)

	// Смена пароля уже аутентифицированным пользователем: неверный
	// текущий пароль - это ошибка ввода, не ошибка сессии.
	ErrIncorrectPassword = New(CodeInvalidCredentials, "Current password is incorrect", http.StatusBadRequest)

	// Одноразовые токены (верификация email, сброс пароля) - это 400, а не 401:
	// клиент не аутентифицируется ими, он передает их в теле запроса.
	ErrInvalidVerificationToken = New(CodeInvalidToken, "Invalid verification token", http.StatusBadRequest)
	ErrInvalidResetToken        = New(CodeInvalidToken, "Invalid or expired reset token", http.StatusBadRequest)
	ErrResetTokenExpired        = New(CodeTokenExpired, "Reset token has expired", http.StatusBadRequest)

	// Пользователи
	ErrUserNotFound          = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists    = New(CodeEmailAlreadyExists, "Email already in use", http.StatusConflict)
	ErrUsernameAlreadyExists = New(CodeUsernameAlreadyExists, "Username already in use", http.StatusConflict)
	ErrInvalidUserRole       = New(CodeInvalidUserRole, "Invalid user role", http.StatusBadRequest)

	// Профили и портфолио
	ErrProfileNotFound = New(CodeProfileNotFound, "Profile not found", http.StatusNotFound)
	ErrCutterNotFound  = New(CodeCutterNotFound, "Cutter not found", http.StatusNotFound)
	// Единая ошибка для "нет такого элемента" и "элемент не ваш",
	// чтобы не раскрывать существование чужих записей.
	ErrPortfolioItemNotFound = New(CodePortfolioNotFound, "Portfolio item not found or does not belong to this cutter", http.StatusNotFound)

	// Справочные данные
	ErrFamilyNotFound      = New(CodeFamilyNotFound, "Gemstone family not found", http.StatusNotFound)
	ErrFamilyAlreadyExists = New(CodeFamilyAlreadyExists, "Gemstone family with this name already exists", http.StatusConflict)

	// Валидация
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

// Функции-помощники для создания ошибок с деталями
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}
