package delete_room

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
	"github.com/m04kA/hotel-booking-service/internal/service/rooms"
)

const (
	msgInvalidRoomID   = "некорректный ID комнаты"
	msgRoomNotFound    = "комната не найдена"
	msgRoomHasBookings = "у комнаты есть бронирования, удаление невозможно"
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

// Handle DELETE /api/v1/admin/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(mux.Vars(r)["roomId"])
	if err != nil {
		h.logger.Warn("DELETE /admin/rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	if err := h.service.Delete(r.Context(), roomID); err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, rooms.ErrRoomHasBookings):
			h.logger.Warn("DELETE /admin/rooms/{id} - Room has bookings: room_id=%s", roomID)
			handlers.RespondConflict(w, msgRoomHasBookings)

		default:
			h.logger.Error("DELETE /admin/rooms/{id} - Failed to delete room: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/rooms/{id} - Room deleted: room_id=%s", roomID)
	handlers.RespondNoContent(w)
}
