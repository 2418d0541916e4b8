package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/internal/infra/session"
	bookingRepo "github.com/m04kA/hotel-booking-service/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/hotel-booking-service/internal/infra/storage/room"
	"github.com/m04kA/hotel-booking-service/internal/integrations/notifications"
	"github.com/m04kA/hotel-booking-service/pkg/txmanager"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// Стадии, на которых обнаружен конфликт дат (метка метрики)
const (
	conflictStageSelection = "selection"
	conflictStageSubmit    = "submit"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	sessions     SessionStore
	publisher    EventPublisher
	metrics      Metrics
	txManager    TransactionManager
	policy       domain.CheckoutPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	sessions SessionStore,
	publisher EventPublisher,
	metrics Metrics,
	txManager TransactionManager,
	policy domain.CheckoutPolicy,
	logger Logger,
) *UseCase {
	if policy == "" {
		policy = domain.DefaultCheckoutPolicy
	}

	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		sessions:     sessions,
		publisher:    publisher,
		metrics:      metrics,
		txManager:    txManager,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Занятость дат перепроверяется в сериализуемой транзакции с блокировкой строк комнаты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, room=%s, guests=%d", req.UserID, req.RoomID, req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущую дату
	today := types.Today(uc.timeProvider.Now())

	// 3. Получаем комнату
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 4. Проверяем вместимость
	if !room.FitsGuests(req.Guests) {
		uc.logger.Warn("CreateBooking: %d guests exceed capacity %d of room id=%s", req.Guests, room.Capacity, room.ID)
		return nil, fmt.Errorf("%w: room fits at most %d guests", ErrTooManyGuests, room.Capacity)
	}

	// 5. Определяем выбранные даты
	selection, err := uc.resolveSelection(ctx, req, today)
	if err != nil {
		return nil, err
	}

	// 6. Считаем стоимость и проверяем условия отправки
	quote, err := domain.NewQuote(selection, room)
	if err != nil {
		uc.logger.Warn("CreateBooking: booking cannot be submitted: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrCannotSubmit, err)
	}

	var result *domain.Booking

	// 7. Перепроверяем занятость и создаем бронирование в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Читаем блокирующие бронирования комнаты с блокировкой (FOR UPDATE)
		intervals, err := uc.bookingRepo.ListIntervalsByRoom(txCtx, room.ID, domain.BlockingStatuses)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: %w", ErrBookingsUnavailable, err)
		}

		// 7.2. Проверяем, что за время выбора даты никто не занял
		booked := domain.NewBookedDays(intervals, uc.policy)
		if booked.AnyBooked(quote.CheckIn, quote.CheckOut) {
			uc.metrics.IncBookingConflict(conflictStageSubmit)
			uc.logger.Warn("CreateBooking: dates %s - %s of room id=%s were booked concurrently",
				quote.CheckIn, quote.CheckOut, room.ID)
			return fmt.Errorf("%w: %s - %s overlaps booked days", ErrDatesUnavailable, quote.CheckIn, quote.CheckOut)
		}

		// 7.3. Создаем бронирование
		booking := &domain.Booking{
			UserID:          req.UserID,
			RoomID:          room.ID,
			CheckIn:         quote.CheckIn,
			CheckOut:        quote.CheckOut,
			TotalPrice:      quote.Total,
			Guests:          req.Guests,
			SpecialRequests: normalizeSpecialRequests(req.SpecialRequests),
			Status:          domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrProfileReferenceNotFound) {
				uc.logger.Warn("CreateBooking: profile of user id=%s missing: %v", req.UserID, err)
				return fmt.Errorf("%w: %v", ErrProfileNotFound, err)
			}
			if errors.Is(err, bookingRepo.ErrRoomReferenceNotFound) {
				uc.logger.Warn("CreateBooking: room id=%s deleted during booking: %v", room.ID, err)
				return fmt.Errorf("%w: %v", ErrRoomNotFound, err)
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конкурентная транзакция заняла те же даты раньше нас
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.metrics.IncBookingConflict(conflictStageSubmit)
			uc.logger.Warn("CreateBooking: serialization conflict for room id=%s: %v", room.ID, err)
			return nil, fmt.Errorf("%w: concurrent booking of the same dates", ErrDatesUnavailable)
		}
		// Сессия сохраняется: гость может выбрать другие даты
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s (%d nights, total=%.2f)",
		result.ID, quote.Nights, result.TotalPrice)

	uc.metrics.IncBookingCreated(string(room.Type))

	// 8. Сценарий бронирования завершен: сбрасываем выбор
	if req.SessionID != nil {
		if err := uc.sessions.Delete(ctx, *req.SessionID); err != nil {
			uc.logger.Warn("CreateBooking: failed to delete session id=%s: %v", *req.SessionID, err)
		}
	}

	// 9. Публикуем событие (ошибка публикации не отменяет бронирование)
	event := notifications.BookingCreatedEvent{
		BookingID:  result.ID,
		UserID:     result.UserID,
		RoomID:     room.ID,
		RoomName:   room.Name,
		CheckIn:    result.CheckIn,
		CheckOut:   result.CheckOut,
		Nights:     quote.Nights,
		Guests:     result.Guests,
		TotalPrice: result.TotalPrice,
		Status:     string(result.Status),
		OccurredAt: uc.timeProvider.Now().UTC(),
	}
	if err := uc.publisher.PublishBookingCreated(ctx, event); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish booking.created for id=%s: %v", result.ID, err)
	}

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		RoomID:          result.RoomID,
		RoomName:        room.Name,
		CheckIn:         result.CheckIn,
		CheckOut:        result.CheckOut,
		Nights:          quote.Nights,
		NightlyRate:     quote.NightlyRate,
		TotalPrice:      result.TotalPrice,
		Guests:          result.Guests,
		SpecialRequests: result.SpecialRequests,
		Status:          result.Status,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// resolveSelection берет выбор из сессии или прогоняет явные даты через автомат выбора
func (uc *UseCase) resolveSelection(ctx context.Context, req *Request, today types.Date) (domain.Selection, error) {
	if req.SessionID != nil {
		sess, err := uc.sessions.Get(ctx, *req.SessionID)
		if err != nil {
			if errors.Is(err, session.ErrSessionNotFound) {
				uc.logger.Warn("CreateBooking: session id=%s not found", *req.SessionID)
				return domain.Selection{}, ErrSessionNotFound
			}
			uc.logger.Error("CreateBooking: failed to get session id=%s: %v", *req.SessionID, err)
			return domain.Selection{}, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
		}

		if sess.RoomID != req.RoomID {
			uc.logger.Warn("CreateBooking: session id=%s belongs to room id=%s", sess.ID, sess.RoomID)
			return domain.Selection{}, ErrSessionRoomMismatch
		}

		if err := sess.Selection.Validate(); err != nil {
			uc.logger.Warn("CreateBooking: session id=%s has broken selection: %v", sess.ID, err)
			return domain.Selection{}, fmt.Errorf("%w: %v", ErrInvalidDates, err)
		}

		// Сессия могла пережить смену суток
		if sess.Selection.CheckIn != nil && domain.IsPast(*sess.Selection.CheckIn, today) {
			uc.logger.Warn("CreateBooking: session id=%s check-in %s is in the past", sess.ID, *sess.Selection.CheckIn)
			return domain.Selection{}, fmt.Errorf("%w: check-in %s is in the past", ErrInvalidDates, *sess.Selection.CheckIn)
		}

		return sess.Selection, nil
	}

	intervals, err := uc.bookingRepo.ListIntervalsByRoom(ctx, req.RoomID, domain.BlockingStatuses)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list bookings for room id=%s: %v", req.RoomID, err)
		return domain.Selection{}, fmt.Errorf("%w: %w", ErrBookingsUnavailable, err)
	}

	booked := domain.NewBookedDays(intervals, uc.policy)
	selection, err := replaySelection(*req.CheckIn, *req.CheckOut, booked, today)
	if err != nil {
		if errors.Is(err, ErrDatesUnavailable) {
			uc.metrics.IncBookingConflict(conflictStageSelection)
		}
		uc.logger.Warn("CreateBooking: dates rejected: %v", err)
		return domain.Selection{}, err
	}

	return selection, nil
}
