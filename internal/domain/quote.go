package domain

import (
	"errors"

	"github.com/m04kA/hotel-booking-service/pkg/types"
)

var (
	// ErrSelectionIncomplete возвращается, если не выбраны обе даты
	ErrSelectionIncomplete = errors.New("check-in and check-out dates must both be selected")

	// ErrTooFewNights возвращается, если между датами меньше одной ночи
	ErrTooFewNights = errors.New("stay must be at least one night")

	// ErrRoomUnavailable возвращается, если комната закрыта для бронирования
	ErrRoomUnavailable = errors.New("room is not available for booking")
)

// PriceQuote расчет стоимости проживания по выбранному интервалу
type PriceQuote struct {
	CheckIn     types.Date
	CheckOut    types.Date
	Nights      int
	NightlyRate float64
	Total       float64
}

// NewQuote считает стоимость и проверяет, можно ли отправлять бронирование.
// Если условий не выполнено несколько, возвращаются все сразу через errors.Join.
func NewQuote(sel Selection, room *Room) (*PriceQuote, error) {
	var errs []error

	nights := 0
	if sel.State() != SelectionComplete {
		errs = append(errs, ErrSelectionIncomplete)
	} else {
		nights = sel.CheckIn.DaysUntil(*sel.CheckOut)
		if nights < 1 {
			errs = append(errs, ErrTooFewNights)
		}
	}

	if room == nil || !room.IsAvailable {
		errs = append(errs, ErrRoomUnavailable)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &PriceQuote{
		CheckIn:     *sel.CheckIn,
		CheckOut:    *sel.CheckOut,
		Nights:      nights,
		NightlyRate: room.PricePerNight,
		Total:       float64(nights) * room.PricePerNight,
	}, nil
}

// UnmetConditions раскладывает ошибку NewQuote на отдельные невыполненные условия
func UnmetConditions(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
