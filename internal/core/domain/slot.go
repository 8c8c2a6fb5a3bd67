package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidInterval = errors.New("invalid interval: end is before start")

// Slot - неизменяемое значение интервала [start, end)
type Slot struct {
	start time.Time
	end   time.Time
}

// NewSlot валидирует интервал при создании.
// end раньше start - это ErrInvalidInterval,
// start == end допустим и дает sentinel-слот нулевой длительности.
func NewSlot(start, end time.Time) (Slot, error) {
	if end.Before(start) {
		return Slot{}, fmt.Errorf("%w: start=%s end=%s",
			ErrInvalidInterval,
			start.Format(time.RFC3339),
			end.Format(time.RFC3339),
		)
	}

	return Slot{start: start, end: end}, nil
}

// NewSentinelSlot создает слот нулевой длительности в указанный момент
func NewSentinelSlot(at time.Time) Slot {
	return Slot{start: at, end: at}
}

func (s Slot) Start() time.Time {
	return s.start
}

func (s Slot) End() time.Time {
	return s.end
}

func (s Slot) IsSentinel() bool {
	return s.start.Equal(s.end)
}

func (s Slot) String() string {
	return fmt.Sprintf("[%s, %s) duration=%s",
		s.start.Format(time.RFC3339),
		s.end.Format(time.RFC3339),
		DurationOf(s),
	)
}
