package notifications

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// Routing keys событий бронирования
const (
	RoutingKeyBookingCreated       = "booking.created"
	RoutingKeyBookingStatusChanged = "booking.status_changed"
)

// BookingCreatedEvent событие создания бронирования (письмо-подтверждение гостю)
type BookingCreatedEvent struct {
	BookingID  uuid.UUID  `json:"bookingId"`
	UserID     uuid.UUID  `json:"userId"`
	RoomID     uuid.UUID  `json:"roomId"`
	RoomName   string     `json:"roomName"`
	CheckIn    types.Date `json:"checkIn"`
	CheckOut   types.Date `json:"checkOut"`
	Nights     int        `json:"nights"`
	Guests     int        `json:"guests"`
	TotalPrice float64    `json:"totalPrice"`
	Status     string     `json:"status"`
	OccurredAt time.Time  `json:"occurredAt"`
}

// BookingStatusChangedEvent событие смены статуса бронирования администратором
type BookingStatusChangedEvent struct {
	BookingID      uuid.UUID `json:"bookingId"`
	UserID         uuid.UUID `json:"userId"`
	RoomID         uuid.UUID `json:"roomId"`
	PreviousStatus string    `json:"previousStatus"`
	Status         string    `json:"status"`
	ChangedBy      uuid.UUID `json:"changedBy"`
	OccurredAt     time.Time `json:"occurredAt"`
}
