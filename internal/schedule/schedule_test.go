package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	st "house-maid/internal/storagetypes"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "valid evening", input: "23:00", want: TimeOfDay{23, 0}},
		{name: "valid midnight", input: "00:00", want: TimeOfDay{0, 0}},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "single digit hour", input: "9:30", wantErr: true},
		{name: "garbage", input: "bedtime", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrBadTime)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("2026-03-01 09:30")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 3, 1, 9, 30, 0, 0, time.Local), got)

	_, err = ParseDateTime("2026-13-01 09:30")
	require.ErrorIs(t, err, ErrBadDateTime)

	_, err = ParseDateTime("2026-03-01T09:30")
	require.ErrorIs(t, err, ErrBadDateTime)
}

func TestAdvanceUsesCalendarFields(t *testing.T) {
	base := time.Date(2026, 2, 28, 20, 0, 0, 0, time.Local)

	require.Equal(t, time.Date(2026, 3, 1, 20, 0, 0, 0, time.Local), Advance(base, st.RepeatDaily))
	require.Equal(t, time.Date(2026, 3, 7, 20, 0, 0, 0, time.Local), Advance(base, st.RepeatWeekly))
	require.Equal(t, time.Date(2027, 2, 28, 20, 0, 0, 0, time.Local), Advance(base, st.RepeatYearly))
	require.Equal(t, base, Advance(base, st.RepeatNone))
}

func TestNextWeeklyOccurrence(t *testing.T) {
	// 2026-01-02 is a Friday.
	friday := time.Date(2026, 1, 2, 0, 0, 0, 0, time.Local)

	t.Run("same day before target time", func(t *testing.T) {
		now := friday.Add(19*time.Hour + 59*time.Minute)
		got, err := NextWeeklyOccurrence(now, "Fri", TimeOfDay{20, 0})
		require.NoError(t, err)
		require.Equal(t, time.Date(2026, 1, 2, 20, 0, 0, 0, time.Local), got)
	})

	t.Run("same day after target time rolls a week", func(t *testing.T) {
		now := friday.Add(20*time.Hour + 1*time.Minute)
		got, err := NextWeeklyOccurrence(now, "friday", TimeOfDay{20, 0})
		require.NoError(t, err)
		require.Equal(t, time.Date(2026, 1, 9, 20, 0, 0, 0, time.Local), got)
	})

	t.Run("different day", func(t *testing.T) {
		got, err := NextWeeklyOccurrence(friday, "Sun", TimeOfDay{21, 0})
		require.NoError(t, err)
		require.Equal(t, time.Date(2026, 1, 4, 21, 0, 0, 0, time.Local), got)
	})

	t.Run("bad day name", func(t *testing.T) {
		_, err := NextWeeklyOccurrence(friday, "someday", TimeOfDay{20, 0})
		require.ErrorIs(t, err, ErrBadWeekday)
		_, err = NextWeeklyOccurrence(friday, "fr", TimeOfDay{20, 0})
		require.ErrorIs(t, err, ErrBadWeekday)
	})
}

func TestEnsureFuture(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.Local)

	past := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
	require.Equal(t, time.Date(2027, 3, 1, 9, 0, 0, 0, time.Local), EnsureFuture(now, past))

	future := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	require.Equal(t, future, EnsureFuture(now, future))

	// Exactly now is not strictly after now.
	require.Equal(t, now.AddDate(1, 0, 0), EnsureFuture(now, now))
}

func TestDayString(t *testing.T) {
	require.Equal(t, "2026-01-02", DayString(time.Date(2026, 1, 2, 23, 59, 0, 0, time.Local)))
}
