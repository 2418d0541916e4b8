package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// ErrInvalidBookingStatus возвращается при неизвестном статусе бронирования
var ErrInvalidBookingStatus = errors.New("invalid booking status")

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a room reservation
type Booking struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	RoomID          uuid.UUID
	CheckIn         types.Date
	CheckOut        types.Date
	TotalPrice      float64
	Guests          int
	SpecialRequests *string
	Status          BookingStatus

	// Данные комнаты из JOIN (заполняются только в списках)
	Room *Room

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the booking occupies calendar days
func (b *Booking) IsBlocking() bool {
	return b.Status.IsBlocking()
}

// Interval returns the reservation interval of the booking
func (b *Booking) Interval() ReservationInterval {
	return ReservationInterval{CheckIn: b.CheckIn, CheckOut: b.CheckOut, Status: b.Status}
}

// Nights returns the number of nights between check-in and check-out
func (b *Booking) Nights() int {
	return b.CheckIn.DaysUntil(b.CheckOut)
}

// IsBlocking сообщает, занимает ли бронирование с таким статусом даты в календаре
func (s BookingStatus) IsBlocking() bool {
	for _, blocking := range BlockingStatuses {
		if s == blocking {
			return true
		}
	}
	return false
}

// IsValid проверяет, что статус входит в список допустимых
func (s BookingStatus) IsValid() bool {
	for _, valid := range AllStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// ParseBookingStatus конвертирует строку в BookingStatus с валидацией
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidBookingStatus
	}
	return status, nil
}

// ReservationInterval строка, которую читает календарь доступности:
// даты заезда и выезда плюс статус
type ReservationInterval struct {
	CheckIn  types.Date
	CheckOut types.Date
	Status   BookingStatus
}

// BookingStats агрегаты для личного кабинета гостя
type BookingStats struct {
	Total     int
	Confirmed int
	Completed int
}

// CountBookingStats считает количество бронирований по статусам
func CountBookingStats(bookings []*Booking) BookingStats {
	stats := BookingStats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case StatusConfirmed:
			stats.Confirmed++
		case StatusCompleted:
			stats.Completed++
		}
	}
	return stats
}
