package create_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrProfileNotFound возвращается, когда у пользователя нет профиля гостя
	ErrProfileNotFound = errors.New("create_booking: user profile not found")

	// ErrSessionNotFound возвращается, когда сессия выбора не найдена или истекла
	ErrSessionNotFound = errors.New("create_booking: selection session not found")

	// ErrSessionRoomMismatch возвращается, когда сессия открыта для другой комнаты
	ErrSessionRoomMismatch = errors.New("create_booking: session belongs to another room")

	// ErrInvalidDates возвращается, когда даты не образуют интервал (выезд не позже заезда, заезд в прошлом)
	ErrInvalidDates = errors.New("create_booking: invalid check-in/check-out dates")

	// ErrDatesUnavailable возвращается, когда выбранный интервал пересекается с занятыми днями
	ErrDatesUnavailable = errors.New("create_booking: selected dates are not available")

	// ErrTooManyGuests возвращается, когда гостей больше вместимости комнаты
	ErrTooManyGuests = errors.New("create_booking: guests exceed room capacity")

	// ErrCannotSubmit возвращается, когда не выполнены условия отправки бронирования.
	// Оборачивает все невыполненные условия из domain (ErrSelectionIncomplete, ErrRoomUnavailable...).
	ErrCannotSubmit = errors.New("create_booking: booking cannot be submitted")

	// ErrBookingsUnavailable возвращается, когда не удалось прочитать бронирования комнаты
	ErrBookingsUnavailable = errors.New("create_booking: failed to load room bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
