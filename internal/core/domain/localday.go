package domain

import (
	"fmt"
	"time"
)

// LocalTime - локальное время суток без даты и таймзоны
type LocalTime struct {
	Hour   int
	Minute int
	Second int
}

func (t LocalTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func (t LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// LocalDate - локальная календарная дата без времени и таймзоны
type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d LocalDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// LocalDay привязывает абсолютные моменты времени к календарному дню
// в конкретной таймзоне. Сам день нужен только для запроса At,
// проекции TimeOfInstant и DateOfInstant зависят лишь от таймзоны.
type LocalDay struct {
	location *time.Location
	date     LocalDate
}

func NewLocalDay(location *time.Location, date LocalDate) LocalDay {
	if location == nil {
		location = time.UTC
	}
	return LocalDay{location: location, date: date}
}

// LocalDayOf возвращает день, на который приходится момент в указанной таймзоне
func LocalDayOf(location *time.Location, at time.Time) LocalDay {
	if location == nil {
		location = time.UTC
	}
	local := at.In(location)
	return LocalDay{
		location: location,
		date:     LocalDate{Year: local.Year(), Month: local.Month(), Day: local.Day()},
	}
}

func (d LocalDay) Location() *time.Location {
	return d.location
}

func (d LocalDay) Date() LocalDate {
	return d.date
}

// TimeOfInstant проецирует абсолютный момент в локальное время суток
func (d LocalDay) TimeOfInstant(at time.Time) LocalTime {
	local := at.In(d.location)
	return LocalTime{Hour: local.Hour(), Minute: local.Minute(), Second: local.Second()}
}

// DateOfInstant проецирует абсолютный момент в локальную дату
func (d LocalDay) DateOfInstant(at time.Time) LocalDate {
	local := at.In(d.location)
	return LocalDate{Year: local.Year(), Month: local.Month(), Day: local.Day()}
}

// At возвращает абсолютный момент, соответствующий локальному времени этого дня
func (d LocalDay) At(hour, minute int) time.Time {
	return time.Date(d.date.Year, d.date.Month, d.date.Day, hour, minute, 0, 0, d.location)
}
