package bookings

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	bookingRepo "github.com/m04kA/hotel-booking-service/internal/infra/storage/booking"
	"github.com/m04kA/hotel-booking-service/internal/integrations/notifications"
	"github.com/m04kA/hotel-booking-service/internal/service/bookings/models"
	"github.com/m04kA/hotel-booking-service/pkg/ptr"
	"github.com/m04kA/hotel-booking-service/pkg/txmanager"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	booking, _ := args.Get(0).(*domain.Booking)
	return booking, args.Error(1)
}

func (m *mockBookingRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error) {
	args := m.Called(ctx, userID)
	bookings, _ := args.Get(0).([]*domain.Booking)
	return bookings, args.Error(1)
}

func (m *mockBookingRepo) ListAll(ctx context.Context, status *domain.BookingStatus) ([]*domain.Booking, error) {
	args := m.Called(ctx, status)
	bookings, _ := args.Get(0).([]*domain.Booking)
	return bookings, args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockBookingRepo) ListIntervalsByRoom(ctx context.Context, roomID uuid.UUID, statuses []domain.BookingStatus) ([]domain.ReservationInterval, error) {
	args := m.Called(ctx, roomID, statuses)
	intervals, _ := args.Get(0).([]domain.ReservationInterval)
	return intervals, args.Error(1)
}

// inlineTx выполняет функцию без настоящей транзакции
type inlineTx struct {
	calls int
	err   error
}

func (t *inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return t.err
}

type mockProfileRepo struct{ mock.Mock }

func (m *mockProfileRepo) HasRole(ctx context.Context, userID uuid.UUID, role domain.AppRole) (bool, error) {
	args := m.Called(ctx, userID, role)
	return args.Bool(0), args.Error(1)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) PublishBookingStatusChanged(ctx context.Context, event notifications.BookingStatusChangedEvent) error {
	return m.Called(ctx, event).Error(0)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	bookings  *mockBookingRepo
	profiles  *mockProfileRepo
	publisher *mockPublisher
	tx        *inlineTx
	svc       *Service
}

func newFixture() *fixture {
	f := &fixture{
		bookings:  &mockBookingRepo{},
		profiles:  &mockProfileRepo{},
		publisher: &mockPublisher{},
		tx:        &inlineTx{},
	}
	f.svc = NewService(f.bookings, f.profiles, f.publisher, f.tx, domain.CheckoutDayBlocked, nopLogger{})
	f.svc.timeProvider = fixedTime{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	return f
}

func booking(userID uuid.UUID, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:         uuid.New(),
		UserID:     userID,
		RoomID:     uuid.New(),
		CheckIn:    types.MustParseDate("2024-06-05"),
		CheckOut:   types.MustParseDate("2024-06-09"),
		TotalPrice: 800,
		Guests:     2,
		Status:     status,
		Room:       &domain.Room{Name: "Ocean View", Type: domain.RoomDeluxe, PricePerNight: 200},
	}
}

func TestGetByID_Access(t *testing.T) {
	owner, admin, stranger := uuid.New(), uuid.New(), uuid.New()

	f := newFixture()
	b := booking(owner, domain.StatusConfirmed)
	f.bookings.On("GetByID", mock.Anything, b.ID).Return(b, nil)
	f.profiles.On("HasRole", mock.Anything, admin, domain.RoleAdmin).Return(true, nil)
	f.profiles.On("HasRole", mock.Anything, stranger, domain.RoleAdmin).Return(false, nil)

	resp, err := f.svc.GetByID(context.Background(), b.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Nights)
	require.NotNil(t, resp.Room)
	assert.Equal(t, "Ocean View", resp.Room.Name)
	f.profiles.AssertNotCalled(t, "HasRole", mock.Anything, owner, mock.Anything)

	_, err = f.svc.GetByID(context.Background(), b.ID, admin)
	assert.NoError(t, err)

	_, err = f.svc.GetByID(context.Background(), b.ID, stranger)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	f := newFixture()
	id := uuid.New()
	f.bookings.On("GetByID", mock.Anything, id).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := f.svc.GetByID(context.Background(), id, uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserDashboard_CountsStatuses(t *testing.T) {
	f := newFixture()
	userID := uuid.New()
	f.bookings.On("ListByUser", mock.Anything, userID).Return([]*domain.Booking{
		booking(userID, domain.StatusConfirmed),
		booking(userID, domain.StatusCompleted),
		booking(userID, domain.StatusCancelled),
		booking(userID, domain.StatusConfirmed),
	}, nil)

	resp, err := f.svc.GetUserDashboard(context.Background(), userID)
	require.NoError(t, err)

	assert.Len(t, resp.Bookings, 4)
	assert.Equal(t, models.StatsResponse{Total: 4, Confirmed: 2, Completed: 1}, resp.Stats)
}

func TestGetUserDashboard_Empty(t *testing.T) {
	f := newFixture()
	userID := uuid.New()
	f.bookings.On("ListByUser", mock.Anything, userID).Return([]*domain.Booking{}, nil)

	resp, err := f.svc.GetUserDashboard(context.Background(), userID)
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Zero(t, resp.Stats.Total)
}

func TestListAll(t *testing.T) {
	f := newFixture()
	confirmed := domain.StatusConfirmed
	f.bookings.On("ListAll", mock.Anything, &confirmed).Return([]*domain.Booking{booking(uuid.New(), confirmed)}, nil)
	f.bookings.On("ListAll", mock.Anything, (*domain.BookingStatus)(nil)).Return([]*domain.Booking{}, nil)

	resp, err := f.svc.ListAll(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("confirmed")})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	resp, err = f.svc.ListAll(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)

	_, err = f.svc.ListAll(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("lost")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_PublishesEvent(t *testing.T) {
	f := newFixture()
	admin := uuid.New()
	b := booking(uuid.New(), domain.StatusConfirmed)

	f.bookings.On("GetByID", mock.Anything, b.ID).Return(b, nil)
	f.bookings.On("UpdateStatus", mock.Anything, b.ID, domain.StatusCancelled).Return(nil)
	f.publisher.On("PublishBookingStatusChanged", mock.Anything, mock.MatchedBy(func(e notifications.BookingStatusChangedEvent) bool {
		return e.BookingID == b.ID &&
			e.PreviousStatus == "confirmed" &&
			e.Status == "cancelled" &&
			e.ChangedBy == admin
	})).Return(nil)

	resp, err := f.svc.UpdateStatus(context.Background(), b.ID, &models.UpdateStatusRequest{AdminID: admin, Status: "cancelled"})
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Status)
	f.publisher.AssertExpectations(t)
}

func TestUpdateStatus_SameStatusIsNoop(t *testing.T) {
	f := newFixture()
	b := booking(uuid.New(), domain.StatusCompleted)
	f.bookings.On("GetByID", mock.Anything, b.ID).Return(b, nil)

	resp, err := f.svc.UpdateStatus(context.Background(), b.ID, &models.UpdateStatusRequest{AdminID: uuid.New(), Status: "completed"})
	require.NoError(t, err)

	assert.Equal(t, "completed", resp.Status)
	f.bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishBookingStatusChanged", mock.Anything, mock.Anything)
}

func TestUpdateStatus_ReactivationChecksDates(t *testing.T) {
	// Отмененное бронирование 5-9 июня
	newCancelled := func(f *fixture) *domain.Booking {
		b := booking(uuid.New(), domain.StatusCancelled)
		f.bookings.On("GetByID", mock.Anything, b.ID).Return(b, nil)
		return b
	}

	t.Run("dates taken by another guest", func(t *testing.T) {
		f := newFixture()
		b := newCancelled(f)
		f.bookings.On("ListIntervalsByRoom", mock.Anything, b.RoomID, domain.BlockingStatuses).
			Return([]domain.ReservationInterval{{
				CheckIn:  types.MustParseDate("2024-06-08"),
				CheckOut: types.MustParseDate("2024-06-10"),
				Status:   domain.StatusConfirmed,
			}}, nil)

		_, err := f.svc.UpdateStatus(context.Background(), b.ID, &models.UpdateStatusRequest{Status: "confirmed"})

		assert.ErrorIs(t, err, ErrDatesUnavailable)
		assert.Equal(t, 1, f.tx.calls)
		f.bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		f.publisher.AssertNotCalled(t, "PublishBookingStatusChanged", mock.Anything, mock.Anything)
	})

	t.Run("dates still free", func(t *testing.T) {
		f := newFixture()
		b := newCancelled(f)
		f.bookings.On("ListIntervalsByRoom", mock.Anything, b.RoomID, domain.BlockingStatuses).
			Return([]domain.ReservationInterval{{
				CheckIn:  types.MustParseDate("2024-06-10"),
				CheckOut: types.MustParseDate("2024-06-12"),
				Status:   domain.StatusConfirmed,
			}}, nil)
		f.bookings.On("UpdateStatus", mock.Anything, b.ID, domain.StatusPending).Return(nil)
		f.publisher.On("PublishBookingStatusChanged", mock.Anything, mock.Anything).Return(nil)

		resp, err := f.svc.UpdateStatus(context.Background(), b.ID, &models.UpdateStatusRequest{Status: "pending"})

		require.NoError(t, err)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("cancellation skips the check", func(t *testing.T) {
		f := newFixture()
		b := booking(uuid.New(), domain.StatusConfirmed)
		f.bookings.On("GetByID", mock.Anything, b.ID).Return(b, nil)
		f.bookings.On("UpdateStatus", mock.Anything, b.ID, domain.StatusCancelled).Return(nil)
		f.publisher.On("PublishBookingStatusChanged", mock.Anything, mock.Anything).Return(nil)

		_, err := f.svc.UpdateStatus(context.Background(), b.ID, &models.UpdateStatusRequest{Status: "cancelled"})

		require.NoError(t, err)
		f.bookings.AssertNotCalled(t, "ListIntervalsByRoom", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("serialization failure", func(t *testing.T) {
		f := newFixture()
		f.tx.err = fmt.Errorf("%w: could not serialize access", txmanager.ErrSerializationFailure)
		b := newCancelled(f)
		f.bookings.On("ListIntervalsByRoom", mock.Anything, b.RoomID, domain.BlockingStatuses).
			Return([]domain.ReservationInterval{}, nil)
		f.bookings.On("UpdateStatus", mock.Anything, b.ID, domain.StatusConfirmed).Return(nil)

		_, err := f.svc.UpdateStatus(context.Background(), b.ID, &models.UpdateStatusRequest{Status: "confirmed"})

		assert.ErrorIs(t, err, ErrConcurrentUpdate)
		f.publisher.AssertNotCalled(t, "PublishBookingStatusChanged", mock.Anything, mock.Anything)
	})
}

func TestUpdateStatus_Errors(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.UpdateStatus(context.Background(), uuid.New(), &models.UpdateStatusRequest{Status: "archived"})
		assert.ErrorIs(t, err, ErrInvalidInput)
		f.bookings.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture()
		id := uuid.New()
		f.bookings.On("GetByID", mock.Anything, id).Return(nil, bookingRepo.ErrBookingNotFound)

		_, err := f.svc.UpdateStatus(context.Background(), id, &models.UpdateStatusRequest{Status: "cancelled"})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("publish failure keeps update", func(t *testing.T) {
		f := newFixture()
		b := booking(uuid.New(), domain.StatusPending)
		f.bookings.On("GetByID", mock.Anything, b.ID).Return(b, nil)
		f.bookings.On("UpdateStatus", mock.Anything, b.ID, domain.StatusConfirmed).Return(nil)
		f.publisher.On("PublishBookingStatusChanged", mock.Anything, mock.Anything).Return(errors.New("channel closed"))

		resp, err := f.svc.UpdateStatus(context.Background(), b.ID, &models.UpdateStatusRequest{Status: "confirmed"})
		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
	})
}
