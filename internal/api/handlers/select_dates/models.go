package select_dates

import (
	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
	"github.com/m04kA/hotel-booking-service/internal/domain"
	selectDates "github.com/m04kA/hotel-booking-service/internal/usecase/select_dates"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// SelectDayRequest HTTP request model: клик по дню календаря
type SelectDayRequest struct {
	SessionID *string `json:"sessionId,omitempty" validate:"omitempty,uuid"`
	Day       string  `json:"day" validate:"required,datetime=2006-01-02"`
}

// SelectionResponse HTTP response model
type SelectionResponse struct {
	SessionID uuid.UUID        `json:"sessionId"`
	RoomID    uuid.UUID        `json:"roomId"`
	Day       types.Date       `json:"day"`
	Outcome   string           `json:"outcome"`
	State     string           `json:"state"`
	Selection domain.Selection `json:"selection"`
	Nights    int              `json:"nights"`
	CanSubmit bool             `json:"canSubmit"`
	Quote     *QuoteResponse   `json:"quote,omitempty"`
	Unmet     []string         `json:"unmet,omitempty"`
}

// QuoteResponse расчет стоимости
type QuoteResponse struct {
	CheckIn     types.Date `json:"checkIn"`
	CheckOut    types.Date `json:"checkOut"`
	Nights      int        `json:"nights"`
	NightlyRate float64    `json:"nightlyRate"`
	Total       float64    `json:"total"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectDayRequest) ToUseCaseRequest(roomID uuid.UUID) (*selectDates.Request, error) {
	day, err := types.ParseDate(r.Day)
	if err != nil {
		return nil, err
	}

	req := &selectDates.Request{RoomID: roomID, Day: day}
	if r.SessionID != nil {
		sessionID, err := uuid.Parse(*r.SessionID)
		if err != nil {
			return nil, err
		}
		req.SessionID = &sessionID
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *selectDates.Response) *SelectionResponse {
	out := &SelectionResponse{
		SessionID: resp.SessionID,
		RoomID:    resp.RoomID,
		Day:       resp.Day,
		Outcome:   string(resp.Outcome),
		State:     string(resp.State),
		Selection: resp.Selection,
		Nights:    resp.Nights,
		CanSubmit: resp.Quote != nil,
		Unmet:     handlers.ErrorMessages(resp.Unmet),
	}

	if resp.Quote != nil {
		out.Quote = &QuoteResponse{
			CheckIn:     resp.Quote.CheckIn,
			CheckOut:    resp.Quote.CheckOut,
			Nights:      resp.Quote.Nights,
			NightlyRate: resp.Quote.NightlyRate,
			Total:       resp.Quote.Total,
		}
	}

	return out
}
