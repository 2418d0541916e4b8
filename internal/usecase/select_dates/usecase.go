package select_dates

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/internal/infra/session"
	roomRepo "github.com/m04kA/hotel-booking-service/internal/infra/storage/room"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// UseCase use case обработки клика по календарю: один переход автомата выбора дат
type UseCase struct {
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	sessions     SessionStore
	metrics      Metrics
	policy       domain.CheckoutPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	sessions SessionStore,
	metrics Metrics,
	policy domain.CheckoutPolicy,
	logger Logger,
) *UseCase {
	if policy == "" {
		policy = domain.DefaultCheckoutPolicy
	}

	return &UseCase{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		sessions:     sessions,
		metrics:      metrics,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute применяет клик по дню к выбору из сессии и сохраняет результат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SelectDates: room=%s, day=%s", req.RoomID, req.Day)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SelectDates: validation failed: %v", err)
		return nil, err
	}

	today := types.Today(uc.timeProvider.Now())

	// 2. Получаем комнату (нужна для расчета стоимости)
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("SelectDates: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("SelectDates: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Загружаем или создаем сессию выбора
	sess, err := uc.loadSession(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Перечитываем бронирования: занятые дни строятся заново на каждый клик
	intervals, err := uc.bookingRepo.ListIntervalsByRoom(ctx, req.RoomID, domain.BlockingStatuses)
	if err != nil {
		uc.logger.Error("SelectDates: failed to list bookings for room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: %v", ErrBookingsUnavailable, err)
	}
	booked := domain.NewBookedDays(intervals, uc.policy)

	// 5. Восстанавливаем автомат из сессии
	selector := domain.NewRangeSelector(booked, today)
	if err := selector.Restore(sess.Selection); err != nil {
		uc.logger.Warn("SelectDates: session id=%s has invalid selection, resetting: %v", sess.ID, err)
		selector.Reset()
		sess.Selection = domain.Selection{}
	}

	// 6. Применяем клик. Сессия сохраняется только при изменении выбора.
	changes, unsubscribe := selector.Subscribe(1)
	defer unsubscribe()

	event := selector.Select(req.Day)
	uc.metrics.IncSelectionClick(string(event.Outcome))

	select {
	case changed := <-changes:
		sess.Selection = changed.Selection
		if err := uc.sessions.Save(ctx, sess); err != nil {
			uc.logger.Error("SelectDates: failed to save session id=%s: %v", sess.ID, err)
			return nil, fmt.Errorf("%w: failed to save session: %v", ErrInternal, err)
		}
	default:
		uc.logger.Info("SelectDates: day %s is disabled, selection unchanged", req.Day)
	}

	uc.logger.Info("SelectDates: session=%s outcome=%s state=%s",
		sess.ID, event.Outcome, event.Selection.State())

	// 7. Считаем стоимость и условия отправки бронирования
	resp := &Response{
		SessionID: sess.ID,
		RoomID:    req.RoomID,
		Day:       req.Day,
		Outcome:   event.Outcome,
		State:     event.Selection.State(),
		Selection: event.Selection,
		Nights:    event.Selection.Nights(),
	}

	quote, err := domain.NewQuote(event.Selection, room)
	if err != nil {
		resp.Unmet = domain.UnmetConditions(err)
	} else {
		resp.Quote = quote
	}

	return resp, nil
}

// Reset сбрасывает выбор: сессия удаляется, следующий клик начнет новую
func (uc *UseCase) Reset(ctx context.Context, sessionID uuid.UUID) error {
	uc.logger.Info("SelectDates: reset session=%s", sessionID)

	if sessionID == uuid.Nil {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		uc.logger.Error("SelectDates: failed to delete session id=%s: %v", sessionID, err)
		return fmt.Errorf("%w: failed to delete session: %v", ErrInternal, err)
	}

	return nil
}

func (uc *UseCase) loadSession(ctx context.Context, req *Request) (*session.Session, error) {
	if req.SessionID == nil {
		sess, err := uc.sessions.Create(ctx, req.RoomID)
		if err != nil {
			uc.logger.Error("SelectDates: failed to create session: %v", err)
			return nil, fmt.Errorf("%w: failed to create session: %v", ErrInternal, err)
		}
		uc.logger.Info("SelectDates: started session=%s for room=%s", sess.ID, req.RoomID)
		return sess, nil
	}

	sess, err := uc.sessions.Get(ctx, *req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			uc.logger.Warn("SelectDates: session id=%s not found", *req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("SelectDates: failed to get session id=%s: %v", *req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	if sess.RoomID != req.RoomID {
		uc.logger.Warn("SelectDates: session id=%s belongs to room id=%s", sess.ID, sess.RoomID)
		return nil, ErrSessionRoomMismatch
	}

	return sess, nil
}
