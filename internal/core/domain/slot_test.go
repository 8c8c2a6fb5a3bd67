package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlot(t *testing.T) {
	start := time.Date(2024, 7, 25, 10, 0, 0, 0, time.UTC)

	t.Run("valid interval", func(t *testing.T) {
		slot, err := NewSlot(start, start.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, start, slot.Start())
		assert.Equal(t, start.Add(time.Hour), slot.End())
		assert.False(t, slot.IsSentinel())
	})

	t.Run("equal bounds give a sentinel slot", func(t *testing.T) {
		slot, err := NewSlot(start, start)
		require.NoError(t, err)
		assert.True(t, slot.IsSentinel())
		assert.Equal(t, time.Duration(0), DurationOf(slot))
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := NewSlot(start, start.Add(-time.Minute))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestNewSentinelSlot(t *testing.T) {
	at := time.Date(2024, 7, 25, 10, 0, 0, 0, time.UTC)
	slot := NewSentinelSlot(at)

	assert.Equal(t, at, slot.Start())
	assert.Equal(t, at, slot.End())
	assert.True(t, slot.IsSentinel())
}

func TestSlotString(t *testing.T) {
	slot, err := NewSlot(
		time.Date(2024, 7, 25, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 25, 11, 30, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	assert.Equal(t, "[2024-07-25T10:00:00Z, 2024-07-25T11:30:00Z) duration=1h30m0s", slot.String())
}
