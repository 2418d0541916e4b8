package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
	"github.com/m04kA/hotel-booking-service/internal/api/middleware"
	createBooking "github.com/m04kA/hotel-booking-service/internal/usecase/create_booking"
)

const (
	msgUnauthorized        = "требуется авторизация"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgValidationFailed    = "ошибка валидации данных"
	msgRoomNotFound        = "комната не найдена"
	msgProfileNotFound     = "профиль пользователя не найден"
	msgSessionNotFound     = "сессия выбора дат не найдена или истекла"
	msgSessionRoomMismatch = "сессия выбора открыта для другой комнаты"
	msgInvalidDates        = "некорректные даты заезда и выезда"
	msgDatesUnavailable    = "выбранные даты уже заняты"
	msgTooManyGuests       = "количество гостей превышает вместимость комнаты"
	msgCannotSubmit        = "бронирование не может быть отправлено"
	msgBookingsUnavailable = "не удалось загрузить занятость комнаты, попробуйте позже"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - User ID not found in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondErrorDetails(w, http.StatusBadRequest, msgValidationFailed, []string{err.Error()})
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgValidationFailed)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%s", useCaseReq.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrProfileNotFound):
			h.logger.Warn("POST /bookings - Profile not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgProfileNotFound)

		case errors.Is(err, createBooking.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, createBooking.ErrSessionRoomMismatch):
			handlers.RespondConflict(w, msgSessionRoomMismatch)

		case errors.Is(err, createBooking.ErrInvalidDates):
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, createBooking.ErrDatesUnavailable):
			h.logger.Warn("POST /bookings - Dates unavailable: room_id=%s, user_id=%s", useCaseReq.RoomID, userID)
			handlers.RespondConflict(w, msgDatesUnavailable)

		case errors.Is(err, createBooking.ErrTooManyGuests):
			handlers.RespondBadRequest(w, msgTooManyGuests)

		case errors.Is(err, createBooking.ErrCannotSubmit):
			h.logger.Warn("POST /bookings - Cannot submit: %v", err)
			handlers.RespondErrorDetails(w, http.StatusUnprocessableEntity, msgCannotSubmit, unmetConditions(err))

		case errors.Is(err, createBooking.ErrBookingsUnavailable):
			h.logger.Error("POST /bookings - Bookings unavailable: room_id=%s, error=%v", useCaseReq.RoomID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBookingsUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, room_id=%s, user_id=%s, total=%.2f",
		result.ID, result.RoomID, result.UserID, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
