package domain

import "time"

// TimeSlot - полуоткрытый интервал времени [start, end).
// start входит в интервал, end уже принадлежит следующему интервалу.
// end не должен быть раньше start, при этом start == end допустим:
// такой слот имеет нулевую длительность и используется как sentinel-значение.
type TimeSlot interface {
	// Начало интервала, включительно
	Start() time.Time
	// Конец интервала, не включительно
	End() time.Time
}

// DurationOf возвращает длительность слота, для sentinel-слота - ноль
func DurationOf(ts TimeSlot) time.Duration {
	return ts.End().Sub(ts.Start())
}

// Compare сравнивает слоты только по длительности, не по положению на оси времени.
// Слоты одинаковой длины с разным началом считаются равными:
// порядок по началу хранит внешний список, здесь сравнивается только "размер".
func Compare(a, b TimeSlot) int {
	durationA := DurationOf(a)
	durationB := DurationOf(b)

	switch {
	case durationA < durationB:
		return -1
	case durationA > durationB:
		return 1
	default:
		return 0
	}
}

// FitsDuration проверяет, достаточно ли длины слота для указанной длительности
func FitsDuration(ts TimeSlot, duration time.Duration) bool {
	return DurationOf(ts) >= duration
}

// Contains проверяет, что inner целиком лежит внутри outer:
// inner не начинается раньше и не заканчивается позже outer
func Contains(outer, inner TimeSlot) bool {
	return !outer.Start().After(inner.Start()) && !outer.End().Before(inner.End())
}

// StartTime возвращает локальное время начала слота в таймзоне дня
func StartTime(ts TimeSlot, day LocalDay) LocalTime {
	return day.TimeOfInstant(ts.Start())
}

// EndTime возвращает локальное время конца слота в таймзоне дня
func EndTime(ts TimeSlot, day LocalDay) LocalTime {
	return day.TimeOfInstant(ts.End())
}

// StartDate возвращает локальную дату начала слота в таймзоне дня
func StartDate(ts TimeSlot, day LocalDay) LocalDate {
	return day.DateOfInstant(ts.Start())
}

// EndDate возвращает локальную дату конца слота в таймзоне дня
func EndDate(ts TimeSlot, day LocalDay) LocalDate {
	return day.DateOfInstant(ts.End())
}
