package get_room_availability

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	getRoomAvailability "github.com/m04kA/hotel-booking-service/internal/usecase/get_room_availability"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID         uuid.UUID        `json:"roomId"`
	Today          types.Date       `json:"today"`
	From           types.Date       `json:"from"`
	Days           int              `json:"days"`
	CheckoutPolicy string           `json:"checkoutPolicy"`
	BookedDays     []types.Date     `json:"bookedDays"`
	Calendar       []DayState       `json:"calendar"`
	SessionID      *uuid.UUID       `json:"sessionId,omitempty"`
	Selection      domain.Selection `json:"selection"`
	State          string           `json:"state"`
}

// DayState состояние ячейки календаря
type DayState struct {
	Date       types.Date `json:"date"`
	Booked     bool       `json:"booked"`
	Past       bool       `json:"past"`
	Disabled   bool       `json:"disabled"`
	RangeStart bool       `json:"rangeStart"`
	RangeEnd   bool       `json:"rangeEnd"`
	InRange    bool       `json:"inRange"`
}

// ToUseCaseRequest собирает запрос use case из query параметров
func ToUseCaseRequest(roomID uuid.UUID, sessionIDStr, fromStr, daysStr string) (*getRoomAvailability.Request, error) {
	req := &getRoomAvailability.Request{RoomID: roomID}

	if sessionIDStr != "" {
		sessionID, err := uuid.Parse(sessionIDStr)
		if err != nil {
			return nil, err
		}
		req.SessionID = &sessionID
	}

	if fromStr != "" {
		from, err := types.ParseDate(fromStr)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	if daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return nil, err
		}
		req.Days = days
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRoomAvailability.Response) *AvailabilityResponse {
	calendar := make([]DayState, 0, len(resp.Calendar))
	for _, day := range resp.Calendar {
		calendar = append(calendar, DayState{
			Date:       day.Date,
			Booked:     day.Booked,
			Past:       day.Past,
			Disabled:   day.Disabled(),
			RangeStart: day.RangeStart,
			RangeEnd:   day.RangeEnd,
			InRange:    day.InRange,
		})
	}

	booked := resp.BookedDays
	if booked == nil {
		booked = []types.Date{}
	}

	return &AvailabilityResponse{
		RoomID:         resp.RoomID,
		Today:          resp.Today,
		From:           resp.From,
		Days:           resp.Days,
		CheckoutPolicy: string(resp.CheckoutPolicy),
		BookedDays:     booked,
		Calendar:       calendar,
		SessionID:      resp.SessionID,
		Selection:      resp.Selection,
		State:          string(resp.Selection.State()),
	}
}
