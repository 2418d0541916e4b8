package create_booking

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/internal/infra/session"
	"github.com/m04kA/hotel-booking-service/internal/integrations/notifications"
	"github.com/m04kA/hotel-booking-service/pkg/dbmetrics"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if fn, ok := args.Get(0).(func(context.Context, *domain.Booking) *domain.Booking); ok {
		return fn(ctx, booking), args.Error(1)
	}
	created, _ := args.Get(0).(*domain.Booking)
	return created, args.Error(1)
}

func (m *mockBookingRepo) ListIntervalsByRoom(ctx context.Context, roomID uuid.UUID, statuses []domain.BookingStatus) ([]domain.ReservationInterval, error) {
	args := m.Called(ctx, roomID, statuses)
	intervals, _ := args.Get(0).([]domain.ReservationInterval)
	return intervals, args.Error(1)
}

type mockRoomRepo struct{ mock.Mock }

func (m *mockRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	args := m.Called(ctx, id)
	room, _ := args.Get(0).(*domain.Room)
	return room, args.Error(1)
}

type mockSessionStore struct{ mock.Mock }

func (m *mockSessionStore) Get(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	args := m.Called(ctx, id)
	sess, _ := args.Get(0).(*session.Session)
	return sess, args.Error(1)
}

func (m *mockSessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) PublishBookingCreated(ctx context.Context, event notifications.BookingCreatedEvent) error {
	return m.Called(ctx, event).Error(0)
}

type recordingMetrics struct {
	mu        sync.Mutex
	created   []string
	conflicts []string
}

func (r *recordingMetrics) IncBookingCreated(roomType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, roomType)
}

func (r *recordingMetrics) IncBookingConflict(stage string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflicts = append(r.conflicts, stage)
}

// inlineTx выполняет функцию без настоящей транзакции, запоминая факт вызова
type inlineTx struct {
	calls int
}

func (t *inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

// stubTx транзакция без базы: запросы идут в моки репозиториев, фиксация всегда успешна
type stubTx struct{}

func (stubTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (stubTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (stubTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

type stubBeginner struct{}

func (stubBeginner) BeginTx(context.Context, *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return stubTx{}, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
