package domain

import (
	"errors"
	"sort"

	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// ErrInvalidCheckoutPolicy возвращается при неизвестной политике дня выезда
var ErrInvalidCheckoutPolicy = errors.New("invalid checkout policy")

// CheckoutPolicy определяет, занят ли день выезда.
// CheckoutDayBlocked разворачивает бронирование в замкнутый интервал [check_in, check_out]:
// день выезда остаётся занятым (буфер на уборку между гостями).
// CheckoutDayFree разворачивает в полуоткрытый [check_in, check_out): следующий гость
// может заехать в день выезда предыдущего.
type CheckoutPolicy string

const (
	CheckoutDayBlocked CheckoutPolicy = "blocked"
	CheckoutDayFree    CheckoutPolicy = "free"
)

// ParseCheckoutPolicy конвертирует строку в CheckoutPolicy с валидацией
func ParseCheckoutPolicy(s string) (CheckoutPolicy, error) {
	switch CheckoutPolicy(s) {
	case CheckoutDayBlocked, CheckoutDayFree:
		return CheckoutPolicy(s), nil
	default:
		return "", ErrInvalidCheckoutPolicy
	}
}

// BookedDays множество занятых календарных дней одной комнаты.
// Строится целиком из списка бронирований при каждой загрузке, инкрементально не обновляется.
type BookedDays struct {
	days map[types.Date]struct{}
}

// NewBookedDays разворачивает блокирующие бронирования в множество занятых дней.
// Бронирования со статусами cancelled и completed пропускаются.
func NewBookedDays(intervals []ReservationInterval, policy CheckoutPolicy) *BookedDays {
	booked := &BookedDays{days: make(map[types.Date]struct{})}

	for _, interval := range intervals {
		if !interval.Status.IsBlocking() {
			continue
		}

		last := interval.CheckOut
		if policy == CheckoutDayFree {
			last = last.AddDays(-1)
		}

		// Некорректный интервал (выезд раньше заезда) EachDay превращает в пустой
		for _, day := range types.EachDay(interval.CheckIn, last) {
			booked.days[day] = struct{}{}
		}
	}

	return booked
}

// IsBooked сообщает, занят ли день. Сравнение по календарной дате, время суток не учитывается.
func (b *BookedDays) IsBooked(day types.Date) bool {
	if b == nil {
		return false
	}
	_, ok := b.days[day]
	return ok
}

// AnyBooked проверяет, есть ли занятый день в замкнутом интервале [from, to]
func (b *BookedDays) AnyBooked(from, to types.Date) bool {
	if b == nil || len(b.days) == 0 {
		return false
	}
	for _, day := range types.EachDay(from, to) {
		if b.IsBooked(day) {
			return true
		}
	}
	return false
}

// Len возвращает количество занятых дней
func (b *BookedDays) Len() int {
	if b == nil {
		return 0
	}
	return len(b.days)
}

// Days возвращает занятые дни по возрастанию
func (b *BookedDays) Days() []types.Date {
	if b == nil {
		return []types.Date{}
	}

	days := make([]types.Date, 0, len(b.days))
	for day := range b.days {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// DayState состояние одной ячейки календаря: для блокировки клика и подсветки
type DayState struct {
	Date       types.Date
	Booked     bool
	Past       bool
	RangeStart bool
	RangeEnd   bool
	InRange    bool
}

// Disabled сообщает, что день нельзя выбрать: он в прошлом или занят
func (s DayState) Disabled() bool {
	return s.Past || s.Booked
}

// IsPast проверяет, что день строго раньше сегодняшнего
func IsPast(day, today types.Date) bool {
	return day.Before(today)
}

// IsSelectable проверяет, можно ли кликнуть по дню
func IsSelectable(day, today types.Date, booked *BookedDays) bool {
	return !IsPast(day, today) && !booked.IsBooked(day)
}

// DescribeDay вычисляет состояние ячейки календаря для дня.
// Выбор, нарушающий инвариант Selection, не подсвечивается.
func DescribeDay(day, today types.Date, booked *BookedDays, sel Selection) DayState {
	state := DayState{
		Date:   day,
		Booked: booked.IsBooked(day),
		Past:   IsPast(day, today),
	}

	if sel.Validate() != nil {
		return state
	}

	if sel.CheckIn != nil {
		state.RangeStart = day.Equal(*sel.CheckIn)
	}
	if sel.CheckOut != nil {
		state.RangeEnd = day.Equal(*sel.CheckOut)
		// Подсвечиваем весь выбранный интервал включая границы
		state.InRange = !day.Before(*sel.CheckIn) && !day.After(*sel.CheckOut)
	}

	return state
}

// DescribeWindow вычисляет состояния days дней начиная с from
func DescribeWindow(from types.Date, days int, today types.Date, booked *BookedDays, sel Selection) []DayState {
	if days <= 0 {
		return []DayState{}
	}

	states := make([]DayState, 0, days)
	for i := 0; i < days; i++ {
		states = append(states, DescribeDay(from.AddDays(i), today, booked, sel))
	}
	return states
}
