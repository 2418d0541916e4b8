package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/internal/integrations/notifications"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error)
	ListAll(ctx context.Context, status *domain.BookingStatus) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error
	ListIntervalsByRoom(ctx context.Context, roomID uuid.UUID, statuses []domain.BookingStatus) ([]domain.ReservationInterval, error)
}

// TransactionManager интерфейс для работы с транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// ProfileRepository интерфейс проверки ролей пользователя
type ProfileRepository interface {
	HasRole(ctx context.Context, userID uuid.UUID, role domain.AppRole) (bool, error)
}

// EventPublisher интерфейс публикации событий бронирования
type EventPublisher interface {
	PublishBookingStatusChanged(ctx context.Context, event notifications.BookingStatusChangedEvent) error
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

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }
