package update_booking_status

import (
	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(adminID uuid.UUID) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		AdminID: adminID,
		Status:  r.Status,
	}
}
