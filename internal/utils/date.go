package utils

import (
	"fmt"
	"time"
)

// ParseInstant парсит момент времени из строки в формате RFC3339.
// Если не удалось, пробуем дату со временем, но без таймзоны, затем дату без времени,
// обе трактуются в переданной таймзоне
func ParseInstant(str string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}

	parsed, err := time.Parse(time.RFC3339, str)
	if err != nil {
		parsed, err = time.ParseInLocation("2006-01-02T15:04:05", str, location)
		if err != nil {
			// Если не удалось, пробуем как дату без времени
			parsed, err = time.ParseInLocation("2006-01-02", str, location)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse instant: %v", err)
			}
		}
	}

	return parsed, nil
}
