package get_featured_rooms

import (
	"context"

	"github.com/m04kA/hotel-booking-service/internal/service/rooms/models"
)

type RoomService interface {
	Featured(ctx context.Context) (*models.RoomListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
