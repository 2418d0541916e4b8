package create_booking

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	createBooking "github.com/m04kA/hotel-booking-service/internal/usecase/create_booking"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model.
// Даты передаются либо через sessionId, либо парой checkIn/checkOut.
type CreateBookingRequest struct {
	RoomID          string  `json:"roomId" validate:"required,uuid"`
	SessionID       *string `json:"sessionId,omitempty" validate:"omitempty,uuid"`
	CheckIn         *string `json:"checkIn,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CheckOut        *string `json:"checkOut,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Guests          int     `json:"guests" validate:"required,min=1"`
	SpecialRequests *string `json:"specialRequests,omitempty" validate:"omitempty,max=1000"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"userId"`
	RoomID          uuid.UUID  `json:"roomId"`
	RoomName        string     `json:"roomName"`
	CheckIn         types.Date `json:"checkIn"`
	CheckOut        types.Date `json:"checkOut"`
	Nights          int        `json:"nights"`
	NightlyRate     float64    `json:"nightlyRate"`
	TotalPrice      float64    `json:"totalPrice"`
	Guests          int        `json:"guests"`
	SpecialRequests *string    `json:"specialRequests,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID uuid.UUID) (*createBooking.Request, error) {
	roomID, err := uuid.Parse(r.RoomID)
	if err != nil {
		return nil, err
	}

	req := &createBooking.Request{
		UserID:          userID,
		RoomID:          roomID,
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
	}

	if r.SessionID != nil {
		sessionID, err := uuid.Parse(*r.SessionID)
		if err != nil {
			return nil, err
		}
		req.SessionID = &sessionID
	}

	if r.CheckIn != nil {
		checkIn, err := types.ParseDate(*r.CheckIn)
		if err != nil {
			return nil, err
		}
		req.CheckIn = &checkIn
	}

	if r.CheckOut != nil {
		checkOut, err := types.ParseDate(*r.CheckOut)
		if err != nil {
			return nil, err
		}
		req.CheckOut = &checkOut
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		RoomID:          resp.RoomID,
		RoomName:        resp.RoomName,
		CheckIn:         resp.CheckIn,
		CheckOut:        resp.CheckOut,
		Nights:          resp.Nights,
		NightlyRate:     resp.NightlyRate,
		TotalPrice:      resp.TotalPrice,
		Guests:          resp.Guests,
		SpecialRequests: resp.SpecialRequests,
		Status:          string(resp.Status),
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}
}

// unmetConditions невыполненные условия отправки в порядке проверки
func unmetConditions(err error) []string {
	details := make([]string, 0, 3)
	for _, cond := range []error{domain.ErrSelectionIncomplete, domain.ErrTooFewNights, domain.ErrRoomUnavailable} {
		if errors.Is(err, cond) {
			details = append(details, cond.Error())
		}
	}
	return details
}
