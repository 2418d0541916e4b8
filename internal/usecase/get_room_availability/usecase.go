package get_room_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/internal/infra/session"
	roomRepo "github.com/m04kA/hotel-booking-service/internal/infra/storage/room"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// UseCase use case для получения календаря доступности комнаты
type UseCase struct {
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	sessions     SessionStore
	options      Options
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	sessions SessionStore,
	options Options,
	logger Logger,
) *UseCase {
	if options.CalendarDays <= 0 {
		options.CalendarDays = domain.DefaultCalendarDays
	}
	if options.CheckoutPolicy == "" {
		options.CheckoutPolicy = domain.DefaultCheckoutPolicy
	}

	return &UseCase{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		sessions:     sessions,
		options:      options,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения календаря доступности.
// Множество занятых дней каждый раз строится заново из актуального списка бронирований.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomAvailability: room=%s, days=%d", req.RoomID, req.Days)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRoomAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем окно календаря
	today := types.Today(uc.timeProvider.Now())
	from := today
	if req.From != nil && !req.From.IsZero() {
		from = *req.From
	}
	days := req.Days
	if days == 0 {
		days = uc.options.CalendarDays
	}

	// 3. Проверяем существование комнаты
	if _, err := uc.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetRoomAvailability: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetRoomAvailability: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 4. Читаем выбор из сессии, если она передана
	var selection domain.Selection
	if req.SessionID != nil {
		sess, err := uc.sessions.Get(ctx, *req.SessionID)
		if err != nil {
			if errors.Is(err, session.ErrSessionNotFound) {
				uc.logger.Warn("GetRoomAvailability: session id=%s not found", *req.SessionID)
				return nil, ErrSessionNotFound
			}
			uc.logger.Error("GetRoomAvailability: failed to get session id=%s: %v", *req.SessionID, err)
			return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
		}
		if sess.RoomID != req.RoomID {
			uc.logger.Warn("GetRoomAvailability: session id=%s belongs to room id=%s", sess.ID, sess.RoomID)
			return nil, ErrSessionRoomMismatch
		}
		// Значение из хранилища могло быть повреждено: календарь отдаем без подсветки
		if err := sess.Selection.Validate(); err != nil {
			uc.logger.Warn("GetRoomAvailability: session id=%s has broken selection: %v", sess.ID, err)
		} else {
			selection = sess.Selection
		}
	}

	// 5. Читаем блокирующие бронирования комнаты
	intervals, err := uc.bookingRepo.ListIntervalsByRoom(ctx, req.RoomID, domain.BlockingStatuses)
	if err != nil {
		uc.logger.Error("GetRoomAvailability: failed to list bookings for room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: %v", ErrBookingsUnavailable, err)
	}

	// 6. Строим множество занятых дней и состояние каждого дня окна
	booked := domain.NewBookedDays(intervals, uc.options.CheckoutPolicy)
	calendar := domain.DescribeWindow(from, days, today, booked, selection)

	uc.logger.Info("GetRoomAvailability: room=%s, %d booked days from %d reservations",
		req.RoomID, booked.Len(), len(intervals))

	return &Response{
		RoomID:         req.RoomID,
		Today:          today,
		From:           from,
		Days:           days,
		CheckoutPolicy: uc.options.CheckoutPolicy,
		BookedDays:     booked.Days(),
		Calendar:       calendar,
		SessionID:      req.SessionID,
		Selection:      selection,
	}, nil
}
