package profiles

import "errors"

var (
	// ErrProfileNotFound возвращается, когда профиль пользователя не заведен
	ErrProfileNotFound = errors.New("profiles.service: profile not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("profiles.service: internal error")
)
