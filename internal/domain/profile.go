package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppRole роль пользователя в приложении
type AppRole string

const (
	RoleAdmin AppRole = "admin"
	RoleUser  AppRole = "user"
)

// Profile профиль гостя, заводится провайдером аутентификации при регистрации
type Profile struct {
	ID        uuid.UUID
	Email     string
	FullName  *string
	Phone     *string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
