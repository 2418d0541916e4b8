package create_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
	"github.com/m04kA/hotel-booking-service/internal/service/rooms"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации данных комнаты"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /admin/rooms - Validation failed: %v", err)
		handlers.RespondErrorDetails(w, http.StatusBadRequest, msgValidationFailed, []string{err.Error()})
		return
	}

	room, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		if errors.Is(err, rooms.ErrInvalidInput) {
			h.logger.Warn("POST /admin/rooms - Invalid input: %v", err)
			handlers.RespondErrorDetails(w, http.StatusBadRequest, msgValidationFailed, []string{err.Error()})
			return
		}
		h.logger.Error("POST /admin/rooms - Failed to create room: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/rooms - Room created: room_id=%s", room.ID)
	handlers.RespondJSON(w, http.StatusCreated, room)
}
