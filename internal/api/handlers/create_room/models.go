package create_room

import (
	"github.com/m04kA/hotel-booking-service/internal/service/rooms/models"
)

// CreateRoomRequest HTTP request model
type CreateRoomRequest struct {
	Name          string   `json:"name" validate:"required,max=200"`
	Description   *string  `json:"description,omitempty"`
	Type          string   `json:"roomType" validate:"required,oneof=standard deluxe suite presidential"`
	PricePerNight float64  `json:"pricePerNight" validate:"gt=0"`
	Capacity      int      `json:"capacity" validate:"min=1,max=20"`
	SizeSqft      *int     `json:"sizeSqft,omitempty" validate:"omitempty,gt=0"`
	Amenities     []string `json:"amenities,omitempty" validate:"omitempty,dive,required"`
	ImageURL      *string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Images        []string `json:"images,omitempty" validate:"omitempty,dive,url"`
	IsAvailable   *bool    `json:"isAvailable,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateRoomRequest) ToServiceRequest() *models.CreateRoomRequest {
	return &models.CreateRoomRequest{
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
