package get_room_availability

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("get_room_availability: room not found")

	// ErrSessionNotFound возвращается, когда сессия выбора не найдена или истекла
	ErrSessionNotFound = errors.New("get_room_availability: selection session not found")

	// ErrSessionRoomMismatch возвращается, когда сессия открыта для другой комнаты
	ErrSessionRoomMismatch = errors.New("get_room_availability: session belongs to another room")

	// ErrBookingsUnavailable возвращается, когда не удалось прочитать бронирования комнаты.
	// Частичные данные не возвращаются: календарь без занятых дней вводил бы в заблуждение.
	ErrBookingsUnavailable = errors.New("get_room_availability: failed to load room bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_room_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_room_availability: internal error")
)
