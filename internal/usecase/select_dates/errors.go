package select_dates

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("select_dates: room not found")

	// ErrSessionNotFound возвращается, когда сессия выбора не найдена или истекла
	ErrSessionNotFound = errors.New("select_dates: selection session not found")

	// ErrSessionRoomMismatch возвращается, когда сессия открыта для другой комнаты
	ErrSessionRoomMismatch = errors.New("select_dates: session belongs to another room")

	// ErrBookingsUnavailable возвращается, когда не удалось прочитать бронирования комнаты
	ErrBookingsUnavailable = errors.New("select_dates: failed to load room bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("select_dates: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("select_dates: internal error")
)
