package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// Request модели

// UpdateStatusRequest запрос администратора на смену статуса бронирования
type UpdateStatusRequest struct {
	AdminID uuid.UUID `json:"-"`
	Status  string    `json:"status"`
}

// ListBookingsRequest запрос администратора на список всех бронирований
type ListBookingsRequest struct {
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	return domain.ParseBookingStatus(s)
}

// Response модели

// RoomSummary данные комнаты в списках бронирований
type RoomSummary struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"roomType"`
	PricePerNight float64   `json:"pricePerNight"`
	ImageURL      *string   `json:"imageUrl,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              uuid.UUID    `json:"id"`
	UserID          uuid.UUID    `json:"userId"`
	RoomID          uuid.UUID    `json:"roomId"`
	CheckIn         types.Date   `json:"checkIn"`
	CheckOut        types.Date   `json:"checkOut"`
	Nights          int          `json:"nights"`
	TotalPrice      float64      `json:"totalPrice"`
	Guests          int          `json:"guests"`
	SpecialRequests *string      `json:"specialRequests,omitempty"`
	Status          string       `json:"status"`
	Room            *RoomSummary `json:"room,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// StatsResponse счетчики личного кабинета
type StatsResponse struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
}

// DashboardResponse личный кабинет гостя: бронирования и счетчики
type DashboardResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Stats    StatsResponse     `json:"stats"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		RoomID:          b.RoomID,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Nights:          b.Nights(),
		TotalPrice:      b.TotalPrice,
		Guests:          b.Guests,
		SpecialRequests: b.SpecialRequests,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	if b.Room != nil {
		resp.Room = &RoomSummary{
			ID:            b.RoomID,
			Name:          b.Room.Name,
			Type:          string(b.Room.Type),
			PricePerNight: b.Room.PricePerNight,
			ImageURL:      b.Room.ImageURL,
		}
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}

	return resp
}

// FromDomainStats конвертирует счетчики в DTO
func FromDomainStats(stats domain.BookingStats) StatsResponse {
	return StatsResponse{
		Total:     stats.Total,
		Confirmed: stats.Confirmed,
		Completed: stats.Completed,
	}
}
