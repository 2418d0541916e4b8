package get_user_bookings

import (
	"net/http"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
	"github.com/m04kA/hotel-booking-service/internal/api/middleware"
)

const msgUnauthorized = "требуется авторизация"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/me/bookings
// Личный кабинет: бронирования гостя и счетчики по статусам.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /me/bookings - User ID not found in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	dashboard, err := h.service.GetUserDashboard(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /me/bookings - Failed to get bookings: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /me/bookings - Retrieved %d bookings for user_id=%s", len(dashboard.Bookings), userID)
	handlers.RespondJSON(w, http.StatusOK, dashboard)
}
