package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	bookingRepo "github.com/m04kA/hotel-booking-service/internal/infra/storage/booking"
	"github.com/m04kA/hotel-booking-service/internal/integrations/notifications"
	"github.com/m04kA/hotel-booking-service/internal/service/bookings/models"
	"github.com/m04kA/hotel-booking-service/pkg/txmanager"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	profileRepo  ProfileRepository
	publisher    EventPublisher
	txManager    TransactionManager
	policy       domain.CheckoutPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	profileRepo ProfileRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	policy domain.CheckoutPolicy,
	logger Logger,
) *Service {
	if policy == "" {
		policy = domain.DefaultCheckoutPolicy
	}

	return &Service{
		bookingRepo:  bookingRepo,
		profileRepo:  profileRepo,
		publisher:    publisher,
		txManager:    txManager,
		policy:       policy,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID.
// Гость видит только свои бронирования, администратор любые.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, userID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserDashboard получает бронирования гостя (сначала новые) и счетчики по статусам
func (s *Service) GetUserDashboard(ctx context.Context, userID uuid.UUID) (*models.DashboardResponse, error) {
	s.logger.Info("GetUserDashboard: fetching bookings for user=%s", userID)

	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserDashboard: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserDashboard - repository error: %v", ErrInternal, err)
	}

	stats := domain.CountBookingStats(bookings)

	s.logger.Info("GetUserDashboard: user=%s has %d bookings (%d confirmed, %d completed)",
		userID, stats.Total, stats.Confirmed, stats.Completed)

	return &models.DashboardResponse{
		Bookings: models.FromDomainBookingList(bookings).Bookings,
		Stats:    models.FromDomainStats(stats),
	}, nil
}

// ListAll получает все бронирования отеля. Доступно только администратору.
func (s *Service) ListAll(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListAll: fetching bookings, status=%v", req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil && *req.Status != "" {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("ListAll: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.ListAll(ctx, domainStatus)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus меняет статус бронирования. Доступно только администратору.
// Отмена или завершение освобождает даты в календаре комнаты.
// Возврат отмененного бронирования в pending/confirmed перепроверяет занятость дат.
func (s *Service) UpdateStatus(ctx context.Context, bookingID uuid.UUID, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s by admin=%s",
		bookingID, req.Status, req.AdminID)

	// 1. Валидируем статус
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, bookingID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	var (
		booking  *domain.Booking
		previous domain.BookingStatus
	)

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Получаем бронирование (нужен предыдущий статус для события)
		b, err := s.getBooking(txCtx, "UpdateStatus", bookingID)
		if err != nil {
			return err
		}
		booking, previous = b, b.Status

		if previous == newStatus {
			return nil
		}

		// 3. Бронирование снова занимает даты: они могли уйти другому гостю
		if newStatus.IsBlocking() && !previous.IsBlocking() {
			if err := s.checkDatesFree(txCtx, b); err != nil {
				return err
			}
		}

		// 4. Обновляем статус
		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, newStatus); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("UpdateStatus: booking id=%s not found during update", bookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %w", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			s.logger.Warn("UpdateStatus: serialization conflict for booking id=%s: %v", bookingID, err)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
		}
		return nil, err
	}

	if previous == newStatus {
		s.logger.Info("UpdateStatus: booking id=%s already has status=%s", bookingID, newStatus)
		return models.FromDomainBooking(booking), nil
	}

	now := s.timeProvider.Now()
	booking.Status = newStatus
	booking.UpdatedAt = now

	s.logger.Info("UpdateStatus: successfully updated booking id=%s from %s to %s", bookingID, previous, newStatus)

	// 5. Публикуем событие (ошибка публикации не откатывает смену статуса)
	event := notifications.BookingStatusChangedEvent{
		BookingID:      booking.ID,
		UserID:         booking.UserID,
		RoomID:         booking.RoomID,
		PreviousStatus: string(previous),
		Status:         string(newStatus),
		ChangedBy:      req.AdminID,
		OccurredAt:     now.UTC(),
	}
	if err := s.publisher.PublishBookingStatusChanged(ctx, event); err != nil {
		s.logger.Warn("UpdateStatus: failed to publish booking.status_changed for id=%s: %v", bookingID, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op string, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// checkDatesFree проверяет, что даты бронирования не заняты другими блокирующими бронированиями
func (s *Service) checkDatesFree(ctx context.Context, booking *domain.Booking) error {
	intervals, err := s.bookingRepo.ListIntervalsByRoom(ctx, booking.RoomID, domain.BlockingStatuses)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to list bookings of room id=%s: %v", booking.RoomID, err)
		return fmt.Errorf("%w: UpdateStatus - list room bookings: %w", ErrInternal, err)
	}

	booked := domain.NewBookedDays(intervals, s.policy)
	if booked.AnyBooked(booking.CheckIn, booking.CheckOut) {
		s.logger.Warn("UpdateStatus: dates %s - %s of booking id=%s are taken",
			booking.CheckIn, booking.CheckOut, booking.ID)
		return fmt.Errorf("%w: %s - %s", ErrDatesUnavailable, booking.CheckIn, booking.CheckOut)
	}

	return nil
}

// checkUserAccess проверяет, что пользователь владелец бронирования или администратор
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID uuid.UUID) error {
	if booking.UserID == userID {
		return nil
	}

	isAdmin, err := s.profileRepo.HasRole(ctx, userID, domain.RoleAdmin)
	if err != nil {
		s.logger.Error("checkUserAccess: failed to check role of user=%s: %v", userID, err)
		return fmt.Errorf("%w: checkUserAccess - failed to check role: %v", ErrInternal, err)
	}
	if !isAdmin {
		return ErrAccessDenied
	}

	return nil
}
