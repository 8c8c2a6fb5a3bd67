package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

func parseInstant(str string) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	// Если не удалось, пробуем дату со временем, но без таймзоны
	// Для дат без таймзоны по дефолту ставим UTC
	if err != nil {
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, time.UTC)
		if err != nil {
			// Если не удалось, пробуем как дату без времени
			parsedDate, err = time.ParseInLocation("2006-01-02", str, time.UTC)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse instant: %v", err)
			}
		}
	}

	return parsedDate, nil
}

// Instant - абсолютный момент времени, в JSON сериализуется как RFC3339
type Instant struct {
	Time time.Time
}

func (t *Instant) UnmarshalJSON(data []byte) error {
	// Убираем кавычки вокруг строки, не-строки отклоняем
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("failed to parse instant: expected a string, got %s", string(data))
	}
	str := string(data[1 : len(data)-1])

	parsedDate, err := parseInstant(str)
	if err != nil {
		return err
	}

	*t = Instant{Time: parsedDate}
	return nil
}

func (t Instant) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format(time.RFC3339))
}

// CalendarDate - календарная дата без времени, в JSON сериализуется как "2006-01-02"
type CalendarDate struct {
	Date time.Time
}

func (t *CalendarDate) UnmarshalJSON(data []byte) error {
	// Убираем кавычки вокруг строки, не-строки отклоняем
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("failed to parse date: expected a string, got %s", string(data))
	}
	str := string(data[1 : len(data)-1])

	parsedDate, err := parseInstant(str)
	if err != nil {
		return err
	}

	*t = CalendarDate{Date: parsedDate}
	return nil
}

func (t CalendarDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format("2006-01-02"))
}
