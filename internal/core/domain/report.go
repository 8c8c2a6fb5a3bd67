package domain

import (
	"github.com/suchimauz/appointment-planner-api/internal/core/json_types"
)

// SlotProjection - проекция слота в локальное время конкретного дня
type SlotProjection struct {
	StartTime LocalTime `json:"startTime"`
	EndTime   LocalTime `json:"endTime"`
	StartDate LocalDate `json:"startDate"`
	EndDate   LocalDate `json:"endDate"`
}

func ProjectSlot(ts TimeSlot, day LocalDay) SlotProjection {
	return SlotProjection{
		StartTime: StartTime(ts, day),
		EndTime:   EndTime(ts, day),
		StartDate: StartDate(ts, day),
		EndDate:   EndDate(ts, day),
	}
}

// SlotReport - полное описание слота с проекцией в запрошенную таймзону
type SlotReport struct {
	Start           json_types.Instant `json:"start"`
	End             json_types.Instant `json:"end"`
	Duration        string             `json:"duration"`
	DurationMinutes int64              `json:"durationMinutes"`
	Sentinel        bool               `json:"sentinel"`
	Timezone        string             `json:"timezone"`
	Day             LocalDate          `json:"day"`
	WithinDay       bool               `json:"withinDay"`
	Local           SlotProjection     `json:"local"`
}

// FitReport - результат проверки вместимости слота по длительности
type FitReport struct {
	SlotDuration     string `json:"slotDuration"`
	RequiredDuration string `json:"requiredDuration"`
	Fits             bool   `json:"fits"`
}

// ContainmentReport - результат проверки вложенности двух слотов.
// DurationOrder - сравнение только по длительности: -1, 0 или 1.
type ContainmentReport struct {
	OuterContainsInner bool `json:"outerContainsInner"`
	InnerContainsOuter bool `json:"innerContainsOuter"`
	DurationOrder      int  `json:"durationOrder"`
}
