package get_room_availability

import (
	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// Options настройки календаря из конфигурации
type Options struct {
	CheckoutPolicy domain.CheckoutPolicy
	CalendarDays   int // Размер окна по умолчанию
}

// Request модель запроса календаря доступности комнаты
type Request struct {
	RoomID    uuid.UUID   // ID комнаты
	SessionID *uuid.UUID  // Сессия выбора дат для подсветки интервала (опционально)
	From      *types.Date // Первый день окна (по умолчанию сегодня)
	Days      int         // Размер окна (0 = по умолчанию)
}

// Response модель ответа с календарем доступности
type Response struct {
	RoomID         uuid.UUID
	Today          types.Date
	From           types.Date
	Days           int
	CheckoutPolicy domain.CheckoutPolicy
	BookedDays     []types.Date      // Все занятые дни комнаты, по возрастанию
	Calendar       []domain.DayState // Состояние каждого дня окна
	SessionID      *uuid.UUID
	Selection      domain.Selection
}
