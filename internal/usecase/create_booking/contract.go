package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/internal/infra/session"
	"github.com/m04kA/hotel-booking-service/internal/integrations/notifications"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListIntervalsByRoom(ctx context.Context, roomID uuid.UUID, statuses []domain.BookingStatus) ([]domain.ReservationInterval, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
}

// SessionStore интерфейс хранилища сессий выбора дат
type SessionStore interface {
	Get(ctx context.Context, id uuid.UUID) (*session.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventPublisher интерфейс публикации событий бронирования
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, event notifications.BookingCreatedEvent) error
}

// Metrics доменные счетчики бронирований
type Metrics interface {
	IncBookingCreated(roomType string)
	IncBookingConflict(stage string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
