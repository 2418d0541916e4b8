package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == uuid.Nil {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.RoomID == uuid.Nil {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}

	if req.SessionID == nil && (req.CheckIn == nil || req.CheckOut == nil) {
		return fmt.Errorf("%w: either sessionId or both checkIn and checkOut are required", ErrInvalidInput)
	}

	if req.SessionID != nil && *req.SessionID == uuid.Nil {
		return fmt.Errorf("%w: sessionID must not be empty", ErrInvalidInput)
	}

	if req.Guests < domain.MinGuests {
		return fmt.Errorf("%w: guests must be at least %d", ErrInvalidInput, domain.MinGuests)
	}

	if req.SpecialRequests != nil && utf8.RuneCountInString(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests must be at most %d characters", ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	return nil
}

// normalizeSpecialRequests пустые пожелания не сохраняем
func normalizeSpecialRequests(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// replaySelection прогоняет явные даты через автомат выбора так же, как два клика в календаре.
// Возвращает выбор, только если интервал принят.
func replaySelection(checkIn, checkOut types.Date, booked *domain.BookedDays, today types.Date) (domain.Selection, error) {
	if !checkIn.Before(checkOut) {
		return domain.Selection{}, fmt.Errorf("%w: check-out must be after check-in", ErrInvalidDates)
	}

	selector := domain.NewRangeSelector(booked, today)

	first := selector.Select(checkIn)
	if first.Outcome == domain.OutcomeIgnored {
		if domain.IsPast(checkIn, today) {
			return domain.Selection{}, fmt.Errorf("%w: check-in %s is in the past", ErrInvalidDates, checkIn)
		}
		return domain.Selection{}, fmt.Errorf("%w: check-in %s is booked", ErrDatesUnavailable, checkIn)
	}

	second := selector.Select(checkOut)
	switch second.Outcome {
	case domain.OutcomeCommitted:
		return second.Selection, nil
	case domain.OutcomeMoved:
		return domain.Selection{}, fmt.Errorf("%w: check-out must be after check-in", ErrInvalidDates)
	default:
		return domain.Selection{}, fmt.Errorf("%w: %s - %s overlaps booked days", ErrDatesUnavailable, checkIn, checkOut)
	}
}
