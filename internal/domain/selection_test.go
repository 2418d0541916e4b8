package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newJuneSelector комната с подтвержденным бронированием 10-12 июня, сегодня 1 июня
func newJuneSelector() *RangeSelector {
	booked := NewBookedDays([]ReservationInterval{
		interval("2024-06-10", "2024-06-12", StatusConfirmed),
	}, CheckoutDayBlocked)
	return NewRangeSelector(booked, date("2024-06-01"))
}

func TestRangeSelector_RejectsRangeOverBookedDays(t *testing.T) {
	s := newJuneSelector()

	ev := s.Select(date("2024-06-09"))
	assert.Equal(t, OutcomeStarted, ev.Outcome)
	assert.Equal(t, SelectionPartial, ev.Selection.State())
	assert.Equal(t, date("2024-06-09"), *ev.Selection.CheckIn)

	ev = s.Select(date("2024-06-14"))
	assert.Equal(t, OutcomeRejected, ev.Outcome)
	assert.Equal(t, SelectionPartial, ev.Selection.State())
	assert.Equal(t, date("2024-06-14"), *ev.Selection.CheckIn)
	assert.Nil(t, ev.Selection.CheckOut)
}

func TestRangeSelector_CommitsFreeRange(t *testing.T) {
	s := newJuneSelector()

	s.Select(date("2024-06-05"))
	ev := s.Select(date("2024-06-09"))

	assert.Equal(t, OutcomeCommitted, ev.Outcome)
	require.Equal(t, SelectionComplete, ev.Selection.State())
	assert.Equal(t, date("2024-06-05"), *ev.Selection.CheckIn)
	assert.Equal(t, date("2024-06-09"), *ev.Selection.CheckOut)
	assert.Equal(t, 4, ev.Selection.Nights())
}

func TestRangeSelector_IgnoresPastDay(t *testing.T) {
	s := newJuneSelector()

	ev := s.Select(date("2024-05-31"))

	assert.Equal(t, OutcomeIgnored, ev.Outcome)
	assert.Equal(t, SelectionEmpty, s.Selection().State())

	s.Select(date("2024-06-05"))
	ev = s.Select(date("2024-05-20"))
	assert.Equal(t, OutcomeIgnored, ev.Outcome)
	assert.Equal(t, date("2024-06-05"), *s.Selection().CheckIn)
}

func TestRangeSelector_IgnoresBookedDay(t *testing.T) {
	s := newJuneSelector()

	ev := s.Select(date("2024-06-11"))

	assert.Equal(t, OutcomeIgnored, ev.Outcome)
	assert.Equal(t, SelectionEmpty, s.Selection().State())
}

func TestRangeSelector_SameDayTwiceKeepsPartial(t *testing.T) {
	s := newJuneSelector()

	s.Select(date("2024-06-05"))
	ev := s.Select(date("2024-06-05"))

	assert.Equal(t, OutcomeMoved, ev.Outcome)
	assert.Equal(t, SelectionPartial, ev.Selection.State())
	assert.Equal(t, date("2024-06-05"), *ev.Selection.CheckIn)
	assert.Nil(t, ev.Selection.CheckOut)
}

func TestRangeSelector_EarlierDayBecomesCheckIn(t *testing.T) {
	s := newJuneSelector()

	s.Select(date("2024-06-08"))
	ev := s.Select(date("2024-06-03"))

	assert.Equal(t, OutcomeMoved, ev.Outcome)
	assert.Equal(t, date("2024-06-03"), *ev.Selection.CheckIn)
	assert.Nil(t, ev.Selection.CheckOut)
}

func TestRangeSelector_ClickAfterCompleteRestarts(t *testing.T) {
	s := newJuneSelector()
	s.Select(date("2024-06-05"))
	s.Select(date("2024-06-09"))

	ev := s.Select(date("2024-06-20"))

	assert.Equal(t, OutcomeRestarted, ev.Outcome)
	assert.Equal(t, SelectionPartial, ev.Selection.State())
	assert.Equal(t, date("2024-06-20"), *ev.Selection.CheckIn)
	assert.Nil(t, ev.Selection.CheckOut)
}

func TestRangeSelector_RejectsWhenOnlyInteriorIsBooked(t *testing.T) {
	s := newJuneSelector()

	// границы свободны, но внутри 10-12 июня
	s.Select(date("2024-06-08"))
	ev := s.Select(date("2024-06-13"))

	assert.Equal(t, OutcomeRejected, ev.Outcome)
	assert.Nil(t, ev.Selection.CheckOut)
}

func TestRangeSelector_CommittedRangeIsAlwaysOrdered(t *testing.T) {
	s := newJuneSelector()
	clicks := []string{
		"2024-06-20", "2024-06-15", "2024-06-15", "2024-06-25", "2024-06-02",
		"2024-06-09", "2024-06-30", "2024-06-13", "2024-06-14", "2024-06-01",
	}

	for _, c := range clicks {
		ev := s.Select(date(c))
		require.NoError(t, ev.Selection.Validate())
		if ev.Selection.State() == SelectionComplete {
			assert.True(t, ev.Selection.CheckIn.Before(*ev.Selection.CheckOut))
			assert.GreaterOrEqual(t, ev.Selection.Nights(), 1)
			assert.False(t, s.booked.AnyBooked(*ev.Selection.CheckIn, *ev.Selection.CheckOut))
		}
	}
}

func TestRangeSelector_RestoreAndRefetch(t *testing.T) {
	s := NewRangeSelector(nil, date("2024-06-01"))
	require.NoError(t, s.Restore(Selection{CheckIn: datePtr("2024-06-09")}))

	// после повторной загрузки появилось бронирование 10-12 июня
	s.SetBookedDays(NewBookedDays([]ReservationInterval{
		interval("2024-06-10", "2024-06-12", StatusPending),
	}, CheckoutDayBlocked))

	ev := s.Select(date("2024-06-14"))
	assert.Equal(t, OutcomeRejected, ev.Outcome)

	err := s.Restore(Selection{CheckIn: datePtr("2024-06-09"), CheckOut: datePtr("2024-06-09")})
	assert.ErrorIs(t, err, ErrInvalidSelection)

	err = s.Restore(Selection{CheckOut: datePtr("2024-06-09")})
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestRangeSelector_Reset(t *testing.T) {
	s := newJuneSelector()
	s.Select(date("2024-06-05"))

	s.Reset()

	assert.Equal(t, SelectionEmpty, s.Selection().State())
}

func TestRangeSelector_Subscribe(t *testing.T) {
	s := newJuneSelector()
	events, unsubscribe := s.Subscribe(4)

	s.Select(date("2024-06-05"))
	s.Select(date("2024-05-01")) // ignored: событие не публикуется
	s.Select(date("2024-06-09"))

	first := <-events
	assert.Equal(t, OutcomeStarted, first.Outcome)
	second := <-events
	assert.Equal(t, OutcomeCommitted, second.Outcome)
	assert.Equal(t, date("2024-06-09"), *second.Selection.CheckOut)

	unsubscribe()
	unsubscribe()
	_, open := <-events
	assert.False(t, open)

	// после отписки Select не блокируется и не паникует
	s.Select(date("2024-06-20"))
}

func TestRangeSelector_SlowSubscriberGetsLatest(t *testing.T) {
	s := newJuneSelector()
	events, unsubscribe := s.Subscribe(1)
	defer unsubscribe()

	s.Select(date("2024-06-05"))
	s.Select(date("2024-06-09"))

	ev := <-events
	assert.Equal(t, OutcomeCommitted, ev.Outcome)
}

func TestRangeSelector_SelectionIsCopied(t *testing.T) {
	s := newJuneSelector()
	ev := s.Select(date("2024-06-05"))

	*ev.Selection.CheckIn = date("2024-06-25")

	assert.Equal(t, date("2024-06-05"), *s.Selection().CheckIn)
}
