package update_room

import (
	"github.com/m04kA/hotel-booking-service/internal/service/rooms/models"
)

// UpdateRoomRequest HTTP request model. Обновляются только переданные поля.
type UpdateRoomRequest struct {
	Name          *string   `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description   *string   `json:"description,omitempty"`
	Type          *string   `json:"roomType,omitempty" validate:"omitempty,oneof=standard deluxe suite presidential"`
	PricePerNight *float64  `json:"pricePerNight,omitempty" validate:"omitempty,gt=0"`
	Capacity      *int      `json:"capacity,omitempty" validate:"omitempty,min=1,max=20"`
	SizeSqft      *int      `json:"sizeSqft,omitempty" validate:"omitempty,gt=0"`
	Amenities     *[]string `json:"amenities,omitempty"`
	ImageURL      *string   `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Images        *[]string `json:"images,omitempty"`
	IsAvailable   *bool     `json:"isAvailable,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateRoomRequest) ToServiceRequest() *models.UpdateRoomRequest {
	return &models.UpdateRoomRequest{
		Name:          r.Name,
		Description:   r.Description,
		Type:          r.Type,
		PricePerNight: r.PricePerNight,
		Capacity:      r.Capacity,
		SizeSqft:      r.SizeSqft,
		Amenities:     r.Amenities,
		ImageURL:      r.ImageURL,
		Images:        r.Images,
		IsAvailable:   r.IsAvailable,
	}
}
