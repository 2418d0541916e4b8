package domain

import (
	"errors"
	"sync"

	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// ErrInvalidSelection возвращается, если выезд задан без заезда или не позже заезда
var ErrInvalidSelection = errors.New("invalid selection: check-out requires an earlier check-in")

// SelectionState состояние автомата выбора дат
type SelectionState string

const (
	SelectionEmpty    SelectionState = "empty"
	SelectionPartial  SelectionState = "partial"
	SelectionComplete SelectionState = "complete"
)

// SelectionOutcome результат обработки одного клика
type SelectionOutcome string

const (
	// OutcomeStarted первый клик: день стал датой заезда
	OutcomeStarted SelectionOutcome = "started"
	// OutcomeRestarted клик при выбранном интервале: старый интервал сброшен
	OutcomeRestarted SelectionOutcome = "restarted"
	// OutcomeMoved клик не позже даты заезда: день стал новой датой заезда
	OutcomeMoved SelectionOutcome = "moved"
	// OutcomeRejected в интервале есть занятый день: день стал новой датой заезда
	OutcomeRejected SelectionOutcome = "rejected"
	// OutcomeCommitted интервал принят
	OutcomeCommitted SelectionOutcome = "committed"
	// OutcomeIgnored клик по недоступному дню (прошлое или занято), состояние не меняется
	OutcomeIgnored SelectionOutcome = "ignored"
)

// Selection выбранные даты заезда и выезда.
// Инвариант: если CheckOut задан, то CheckIn задан и CheckIn < CheckOut.
type Selection struct {
	CheckIn  *types.Date `json:"checkIn,omitempty"`
	CheckOut *types.Date `json:"checkOut,omitempty"`
}

// State возвращает состояние автомата для выбора
func (s Selection) State() SelectionState {
	switch {
	case s.CheckIn == nil:
		return SelectionEmpty
	case s.CheckOut == nil:
		return SelectionPartial
	default:
		return SelectionComplete
	}
}

// Validate проверяет инвариант выбора
func (s Selection) Validate() error {
	if s.CheckOut == nil {
		return nil
	}
	if s.CheckIn == nil || !s.CheckIn.Before(*s.CheckOut) {
		return ErrInvalidSelection
	}
	return nil
}

// Nights возвращает количество ночей для полного интервала, иначе 0
func (s Selection) Nights() int {
	if s.State() != SelectionComplete {
		return 0
	}
	return s.CheckIn.DaysUntil(*s.CheckOut)
}

// SelectionEvent изменение выбора, которое получают подписчики
type SelectionEvent struct {
	Day       types.Date
	Outcome   SelectionOutcome
	Selection Selection
}

// RangeSelector автомат выбора интервала дат двумя кликами.
// Владеет логикой переходов и не зависит от способа отображения календаря.
type RangeSelector struct {
	mu          sync.Mutex
	booked      *BookedDays
	today       types.Date
	selection   Selection
	subscribers map[int]chan SelectionEvent
	nextSubID   int
}

// NewRangeSelector создает автомат в состоянии Empty
func NewRangeSelector(booked *BookedDays, today types.Date) *RangeSelector {
	return &RangeSelector{
		booked:      booked,
		today:       today,
		subscribers: make(map[int]chan SelectionEvent),
	}
}

// Restore восстанавливает ранее сохраненный выбор (например, из сессии)
func (r *RangeSelector) Restore(sel Selection) error {
	if err := sel.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.selection = copySelection(sel)
	return nil
}

// SetBookedDays заменяет множество занятых дней после повторной загрузки бронирований
func (r *RangeSelector) SetBookedDays(booked *BookedDays) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.booked = booked
}

// Selection возвращает копию текущего выбора
func (r *RangeSelector) Selection() Selection {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copySelection(r.selection)
}

// Reset сбрасывает выбор в Empty (начало нового сценария бронирования)
func (r *RangeSelector) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selection = Selection{}
}

// Select обрабатывает клик по дню и возвращает событие с обновленным выбором.
// Подписчики получают событие, если состояние изменилось.
func (r *RangeSelector) Select(day types.Date) SelectionEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !IsSelectable(day, r.today, r.booked) {
		return SelectionEvent{Day: day, Outcome: OutcomeIgnored, Selection: copySelection(r.selection)}
	}

	var outcome SelectionOutcome

	switch r.selection.State() {
	case SelectionEmpty:
		r.startAt(day)
		outcome = OutcomeStarted

	case SelectionComplete:
		r.startAt(day)
		outcome = OutcomeRestarted

	case SelectionPartial:
		checkIn := *r.selection.CheckIn

		switch {
		case !day.After(checkIn):
			// Повторный клик по дате заезда сюда же: состояние фактически не меняется
			r.startAt(day)
			outcome = OutcomeMoved

		case r.booked.AnyBooked(checkIn, day):
			// Интервал пересекает занятый день: отклоняем целиком, день становится новой датой заезда
			r.startAt(day)
			outcome = OutcomeRejected

		default:
			checkOut := day
			r.selection.CheckOut = &checkOut
			outcome = OutcomeCommitted
		}
	}

	event := SelectionEvent{Day: day, Outcome: outcome, Selection: copySelection(r.selection)}
	r.publish(event)
	return event
}

// Subscribe возвращает канал событий изменения выбора и функцию отписки.
// Медленный подписчик получает последнее событие: старое непрочитанное вытесняется.
func (r *RangeSelector) Subscribe(buffer int) (<-chan SelectionEvent, func()) {
	if buffer < 1 {
		buffer = 1
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextSubID
	r.nextSubID++
	ch := make(chan SelectionEvent, buffer)
	r.subscribers[id] = ch

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			delete(r.subscribers, id)
			close(ch)
		})
	}

	return ch, unsubscribe
}

func (r *RangeSelector) startAt(day types.Date) {
	checkIn := day
	r.selection = Selection{CheckIn: &checkIn}
}

// publish вызывается под r.mu
func (r *RangeSelector) publish(event SelectionEvent) {
	for _, ch := range r.subscribers {
		select {
		case ch <- event:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- event:
			default:
			}
		}
	}
}

func copySelection(sel Selection) Selection {
	var out Selection
	if sel.CheckIn != nil {
		checkIn := *sel.CheckIn
		out.CheckIn = &checkIn
	}
	if sel.CheckOut != nil {
		checkOut := *sel.CheckOut
		out.CheckOut = &checkOut
	}
	return out
}
