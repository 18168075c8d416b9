package models

import "time"

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleAdmin     UserRole = "admin"
	RoleCollector UserRole = "collector"
	RoleDealer    UserRole = "dealer"
	RoleCutter    UserRole = "cutter"
	RoleAppraiser UserRole = "appraiser"
)

// AllRoles - полный список ролей, в порядке сидирования таблицы roles
var AllRoles = []UserRole{RoleUser, RoleAdmin, RoleCollector, RoleDealer, RoleCutter, RoleAppraiser}

func (r UserRole) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// Role - справочная таблица ролей. Сидируется при миграции,
// приложение ее не изменяет.
type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

func (Role) TableName() string {
	return "roles"
}

// User - аккаунт пользователя. Уникальность email и username
// обеспечивается индексами на уровне схемы: предварительная проверка
// в сервисе - только быстрый путь для дружелюбного сообщения.
type User struct {
	BaseModel
	Username        string  `gorm:"size:30;uniqueIndex;not null" json:"username"`
	Email           string  `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash    string  `gorm:"not null" json:"-"`
	FirstName       *string `gorm:"size:100" json:"first_name"`
	LastName        *string `gorm:"size:100" json:"last_name"`
	ProfileImageURL *string `gorm:"size:500" json:"profile_image_url"`
	RoleID          uint    `gorm:"not null;index" json:"-"`
	Role            Role    `gorm:"foreignKey:RoleID" json:"role"`
	IsVerified      bool    `gorm:"default:false" json:"is_verified"`

	// Одноразовые токены. NULL = токен отсутствует/погашен.
	VerificationToken *string    `gorm:"size:64;index" json:"-"`
	ResetToken        *string    `gorm:"size:64;index" json:"-"`
	ResetTokenExp     *time.Time `json:"-"`

	LastLogin *time.Time `json:"last_login"`

	// Relations
	CutterProfile    *CutterProfile    `gorm:"foreignKey:UserID" json:"-"`
	DealerProfile    *DealerProfile    `gorm:"foreignKey:UserID" json:"-"`
	AppraiserProfile *AppraiserProfile `gorm:"foreignKey:UserID" json:"-"`
}

// RoleName возвращает имя роли или "user", если связь не загружена
func (u *User) RoleName() string {
	if u.Role.Name == "" {
		return string(RoleUser)
	}
	return u.Role.Name
}
