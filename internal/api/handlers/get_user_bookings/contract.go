package get_user_bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetUserDashboard(ctx context.Context, userID uuid.UUID) (*models.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
