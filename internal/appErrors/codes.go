package appErrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Ресурсы
	CodeUserNotFound      ErrorCode = "USER_NOT_FOUND"
	CodeProfileNotFound   ErrorCode = "PROFILE_NOT_FOUND"
	CodePortfolioNotFound ErrorCode = "PORTFOLIO_NOT_FOUND"
	CodeFamilyNotFound    ErrorCode = "GEMSTONE_FAMILY_NOT_FOUND"
	CodeCutterNotFound    ErrorCode = "CUTTER_NOT_FOUND"

	// Бизнес-логика
	CodeEmailAlreadyExists    ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeUsernameAlreadyExists ErrorCode = "USERNAME_ALREADY_EXISTS"
	CodeFamilyAlreadyExists   ErrorCode = "GEMSTONE_FAMILY_ALREADY_EXISTS"
	CodeUserNotVerified       ErrorCode = "USER_NOT_VERIFIED"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
