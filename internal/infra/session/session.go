package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/internal/domain"
)

var (
	// ErrSessionNotFound возвращается, если сессии нет или истек ее TTL
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrEncode возвращается при ошибке сериализации сессии
	ErrEncode = errors.New("session.store: failed to encode session")

	// ErrDecode возвращается при ошибке десериализации сессии
	ErrDecode = errors.New("session.store: failed to decode session")

	// ErrStorage возвращается при ошибке хранилища
	ErrStorage = errors.New("session.store: storage error")
)

// Session состояние выбора дат на странице одной комнаты.
// Живет от открытия страницы до успешного бронирования или сброса.
type Session struct {
	ID        uuid.UUID        `json:"id"`
	RoomID    uuid.UUID        `json:"roomId"`
	Selection domain.Selection `json:"selection"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

func newSession(roomID uuid.UUID, now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		RoomID:    roomID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func cloneSession(s *Session) *Session {
	out := *s
	if s.Selection.CheckIn != nil {
		checkIn := *s.Selection.CheckIn
		out.Selection.CheckIn = &checkIn
	}
	if s.Selection.CheckOut != nil {
		checkOut := *s.Selection.CheckOut
		out.Selection.CheckOut = &checkOut
	}
	return &out
}
