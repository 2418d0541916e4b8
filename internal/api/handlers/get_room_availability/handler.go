package get_room_availability

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
	getRoomAvailability "github.com/m04kA/hotel-booking-service/internal/usecase/get_room_availability"
)

const (
	msgInvalidRoomID       = "некорректный ID комнаты"
	msgInvalidParams       = "некорректные параметры запроса: sessionId (uuid), from (YYYY-MM-DD), days (число)"
	msgRoomNotFound        = "комната не найдена"
	msgSessionNotFound     = "сессия выбора дат не найдена или истекла"
	msgSessionRoomMismatch = "сессия выбора открыта для другой комнаты"
	msgBookingsUnavailable = "не удалось загрузить занятость комнаты, попробуйте позже"
)

type Handler struct {
	useCase GetRoomAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability
// Query params: sessionId, from (YYYY-MM-DD), days (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(mux.Vars(r)["roomId"])
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(roomID, query.Get("sessionId"), query.Get("from"), query.Get("days"))
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getRoomAvailability.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getRoomAvailability.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/availability - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getRoomAvailability.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, getRoomAvailability.ErrSessionRoomMismatch):
			handlers.RespondConflict(w, msgSessionRoomMismatch)

		case errors.Is(err, getRoomAvailability.ErrBookingsUnavailable):
			h.logger.Error("GET /rooms/{id}/availability - Bookings unavailable: room_id=%s, error=%v", roomID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBookingsUnavailable)

		default:
			h.logger.Error("GET /rooms/{id}/availability - Failed to get availability: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/availability - Availability retrieved: room_id=%s, booked_days=%d",
		roomID, len(result.BookedDays))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
