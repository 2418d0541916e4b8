package select_dates

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
	selectDates "github.com/m04kA/hotel-booking-service/internal/usecase/select_dates"
)

const (
	msgInvalidRoomID       = "некорректный ID комнаты"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDay          = "некорректный день, ожидается YYYY-MM-DD"
	msgRoomNotFound        = "комната не найдена"
	msgSessionNotFound     = "сессия выбора дат не найдена или истекла"
	msgSessionRoomMismatch = "сессия выбора открыта для другой комнаты"
	msgBookingsUnavailable = "не удалось загрузить занятость комнаты, попробуйте позже"
)

type Handler struct {
	useCase SelectDatesUseCase
	logger  Logger
}

func NewHandler(useCase SelectDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms/{roomId}/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(mux.Vars(r)["roomId"])
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/selection - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req SelectDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/{id}/selection - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /rooms/{id}/selection - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(roomID)
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/selection - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, selectDates.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDay)

		case errors.Is(err, selectDates.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/{id}/selection - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, selectDates.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, selectDates.ErrSessionRoomMismatch):
			handlers.RespondConflict(w, msgSessionRoomMismatch)

		case errors.Is(err, selectDates.ErrBookingsUnavailable):
			h.logger.Error("POST /rooms/{id}/selection - Bookings unavailable: room_id=%s, error=%v", roomID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBookingsUnavailable)

		default:
			h.logger.Error("POST /rooms/{id}/selection - Failed to apply click: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/{id}/selection - Click applied: room_id=%s, session_id=%s, outcome=%s",
		roomID, result.SessionID, result.Outcome)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
