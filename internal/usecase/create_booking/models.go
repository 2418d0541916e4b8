package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// Request модель запроса на создание бронирования.
// Даты берутся из сессии выбора либо передаются явно (CheckIn и CheckOut вместе).
type Request struct {
	UserID          uuid.UUID   // ID пользователя из токена
	RoomID          uuid.UUID   // ID комнаты
	SessionID       *uuid.UUID  // Сессия выбора дат (опционально)
	CheckIn         *types.Date // Дата заезда (если нет сессии)
	CheckOut        *types.Date // Дата выезда (если нет сессии)
	Guests          int         // Количество гостей
	SpecialRequests *string     // Пожелания гостя (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	RoomID          uuid.UUID
	RoomName        string
	CheckIn         types.Date
	CheckOut        types.Date
	Nights          int
	NightlyRate     float64
	TotalPrice      float64
	Guests          int
	SpecialRequests *string
	Status          domain.BookingStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
