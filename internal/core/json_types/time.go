package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// ClockTime - время суток без даты, в JSON сериализуется как "15:04:05"
type ClockTime struct {
	Time time.Time
}

func (t *ClockTime) UnmarshalJSON(data []byte) error {
	// Убираем кавычки вокруг строки, не-строки отклоняем
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("failed to parse time: expected a string, got %s", string(data))
	}
	str := string(data[1 : len(data)-1])
	parsedTime, err := time.Parse("15:04:05", str)
	if err != nil {
		return fmt.Errorf("failed to parse time: %v", err)
	}
	*t = ClockTime{Time: parsedTime}
	return nil
}

func (t ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format("15:04:05"))
}
