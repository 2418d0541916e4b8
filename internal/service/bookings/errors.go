package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("bookings.service: access denied")

	// ErrDatesUnavailable возвращается, когда даты восстанавливаемого бронирования уже заняты
	ErrDatesUnavailable = errors.New("bookings.service: booking dates are already taken")

	// ErrConcurrentUpdate возвращается, когда бронирования комнаты изменились параллельно
	ErrConcurrentUpdate = errors.New("bookings.service: concurrent update of room bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
