package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrRoomReferenceNotFound возвращается, когда комната бронирования не существует
	ErrRoomReferenceNotFound = errors.New("booking.repository: referenced room not found")

	// ErrProfileReferenceNotFound возвращается, когда у пользователя нет профиля
	ErrProfileReferenceNotFound = errors.New("booking.repository: referenced user profile not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
