package get_featured_rooms

import (
	"net/http"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
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

// Handle GET /api/v1/rooms/featured
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.Featured(r.Context())
	if err != nil {
		h.logger.Error("GET /rooms/featured - Failed to get featured rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms/featured - Retrieved %d rooms", len(list.Rooms))
	handlers.RespondJSON(w, http.StatusOK, list)
}
