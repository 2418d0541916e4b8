package select_dates

import (
	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// Request модель клика по дню календаря
type Request struct {
	RoomID    uuid.UUID  // ID комнаты
	SessionID *uuid.UUID // Сессия выбора (nil = начать новую)
	Day       types.Date // Выбранный день
}

// Response модель ответа с обновленным выбором
type Response struct {
	SessionID uuid.UUID
	RoomID    uuid.UUID
	Day       types.Date
	Outcome   domain.SelectionOutcome
	State     domain.SelectionState
	Selection domain.Selection
	Nights    int
	Quote     *domain.PriceQuote // nil, если бронирование пока нельзя отправить
	Unmet     []error            // Невыполненные условия для отправки бронирования
}
