package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, start, end time.Time) Slot {
	t.Helper()
	slot, err := NewSlot(start, end)
	require.NoError(t, err)
	return slot
}

func TestDurationOf(t *testing.T) {
	day := time.Date(2024, 7, 25, 0, 0, 0, 0, time.UTC)

	t.Run("positive duration", func(t *testing.T) {
		slot := mustSlot(t, day.Add(9*time.Hour), day.Add(10*time.Hour+30*time.Minute))
		assert.Equal(t, 90*time.Minute, DurationOf(slot))
	})

	t.Run("duration is end minus start", func(t *testing.T) {
		slot := mustSlot(t, day.Add(10*time.Hour), day.Add(12*time.Hour))
		assert.Equal(t, slot.End().Sub(slot.Start()), DurationOf(slot))
	})

	t.Run("sentinel slot has zero duration", func(t *testing.T) {
		slot := NewSentinelSlot(day)
		assert.Equal(t, time.Duration(0), DurationOf(slot))
	})
}

func TestCompare(t *testing.T) {
	day := time.Date(2024, 7, 25, 0, 0, 0, 0, time.UTC)

	t.Run("shorter slot compares less", func(t *testing.T) {
		short := mustSlot(t, day.Add(10*time.Hour), day.Add(11*time.Hour))
		long := mustSlot(t, day.Add(9*time.Hour), day.Add(12*time.Hour))
		assert.Equal(t, -1, Compare(short, long))
		assert.Equal(t, 1, Compare(long, short))
	})

	t.Run("equal durations with different starts compare equal", func(t *testing.T) {
		morning := mustSlot(t, day.Add(9*time.Hour), day.Add(10*time.Hour))
		evening := mustSlot(t, day.Add(18*time.Hour), day.Add(19*time.Hour))
		assert.Equal(t, 0, Compare(morning, evening))
	})

	t.Run("consistent with duration ordering", func(t *testing.T) {
		a := mustSlot(t, day.Add(8*time.Hour), day.Add(8*time.Hour+45*time.Minute))
		b := mustSlot(t, day.Add(14*time.Hour), day.Add(15*time.Hour))
		assert.Equal(t, DurationOf(a) < DurationOf(b), Compare(a, b) < 0)
	})
}

func TestFitsDuration(t *testing.T) {
	day := time.Date(2024, 7, 25, 0, 0, 0, 0, time.UTC)

	t.Run("90 minute slot", func(t *testing.T) {
		slot := mustSlot(t, day.Add(9*time.Hour), day.Add(10*time.Hour+30*time.Minute))
		assert.True(t, FitsDuration(slot, 60*time.Minute))
		assert.True(t, FitsDuration(slot, 90*time.Minute))
		assert.False(t, FitsDuration(slot, 120*time.Minute))
	})

	t.Run("sentinel slot fits only zero duration", func(t *testing.T) {
		slot := NewSentinelSlot(day)
		assert.True(t, FitsDuration(slot, 0))
		assert.False(t, FitsDuration(slot, time.Minute))
	})
}

func TestContains(t *testing.T) {
	day := time.Date(2024, 7, 25, 0, 0, 0, 0, time.UTC)

	outer := mustSlot(t, day.Add(10*time.Hour), day.Add(12*time.Hour))

	t.Run("fully inside", func(t *testing.T) {
		inner := mustSlot(t, day.Add(10*time.Hour+30*time.Minute), day.Add(11*time.Hour+30*time.Minute))
		assert.True(t, Contains(outer, inner))
		assert.False(t, Contains(inner, outer))
	})

	t.Run("starts before outer", func(t *testing.T) {
		overlapping := mustSlot(t, day.Add(9*time.Hour), day.Add(11*time.Hour))
		assert.False(t, Contains(outer, overlapping))
	})

	t.Run("ends after outer", func(t *testing.T) {
		overlapping := mustSlot(t, day.Add(11*time.Hour), day.Add(13*time.Hour))
		assert.False(t, Contains(outer, overlapping))
	})

	t.Run("equal bounds contain each other", func(t *testing.T) {
		same := mustSlot(t, day.Add(10*time.Hour), day.Add(12*time.Hour))
		assert.True(t, Contains(outer, same))
		assert.True(t, Contains(same, outer))
	})

	t.Run("sentinel inside the range", func(t *testing.T) {
		sentinel := NewSentinelSlot(day.Add(11 * time.Hour))
		assert.True(t, Contains(outer, sentinel))
		assert.False(t, Contains(sentinel, outer))
	})
}

func TestSlotProjections(t *testing.T) {
	zone := time.FixedZone("UTC+3", 3*60*60)
	day := NewLocalDay(zone, LocalDate{Year: 2024, Month: time.July, Day: 25})

	// 10:00-12:30 локального времени, заданные в UTC
	slot := mustSlot(t,
		time.Date(2024, 7, 25, 7, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 25, 9, 30, 0, 0, time.UTC),
	)

	t.Run("local times", func(t *testing.T) {
		assert.Equal(t, LocalTime{Hour: 10}, StartTime(slot, day))
		assert.Equal(t, LocalTime{Hour: 12, Minute: 30}, EndTime(slot, day))
	})

	t.Run("local dates", func(t *testing.T) {
		expected := LocalDate{Year: 2024, Month: time.July, Day: 25}
		assert.Equal(t, expected, StartDate(slot, day))
		assert.Equal(t, expected, EndDate(slot, day))
	})

	t.Run("round trip through the day anchor", func(t *testing.T) {
		assert.Equal(t, slot.Start(), day.At(10, 0).UTC())
		assert.Equal(t, slot.End(), day.At(12, 30).UTC())
	})

	t.Run("project slot", func(t *testing.T) {
		projection := ProjectSlot(slot, day)
		assert.Equal(t, "10:00:00", projection.StartTime.String())
		assert.Equal(t, "12:30:00", projection.EndTime.String())
		assert.Equal(t, "2024-07-25", projection.StartDate.String())
		assert.Equal(t, "2024-07-25", projection.EndDate.String())
	})
}
