package domain

import "github.com/m04kA/hotel-booking-service/pkg/types"

// Default configuration values
const (
	DefaultCalendarDays   = 60 // два месяца, как показывает календарь на странице комнаты
	DefaultFeaturedLimit  = 3
	DefaultCheckoutPolicy = CheckoutDayBlocked
)

// Business validation constants
const (
	MaxCalendarDays          = 366
	MaxSpecialRequestsLength = 1000
	MaxRoomNameLength        = 200
	MinGuests                = 1
	MaxRoomCapacity          = 20
	MaxRoomsPageSize         = 100
)

// Time format constants
const (
	DateFormat = types.DateLayout // YYYY-MM-DD
)

// AllStatuses список всех допустимых статусов бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// BlockingStatuses статусы, при которых бронирование занимает даты в календаре.
// Отмененные и завершенные бронирования даты не блокируют.
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
