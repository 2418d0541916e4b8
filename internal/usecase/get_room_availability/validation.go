package get_room_availability

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID == uuid.Nil {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}

	if req.SessionID != nil && *req.SessionID == uuid.Nil {
		return fmt.Errorf("%w: sessionID must not be empty", ErrInvalidInput)
	}

	if req.Days < 0 || req.Days > domain.MaxCalendarDays {
		return fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidInput, domain.MaxCalendarDays)
	}

	return nil
}
