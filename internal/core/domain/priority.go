package domain

import (
	"encoding/json"
	"fmt"
)

// Priority - приоритет записи на прием.
// Порядок объявления задает ранжирование: low < medium < high.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

var priorityNames = map[Priority]string{
	PriorityLow:    "low",
	PriorityMedium: "medium",
	PriorityHigh:   "high",
}

// Priorities возвращает все приоритеты в порядке возрастания
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

func ParsePriority(str string) (Priority, error) {
	for priority, name := range priorityNames {
		if name == str {
			return priority, nil
		}
	}
	return PriorityLow, fmt.Errorf("unknown priority: %q", str)
}

func (p Priority) String() string {
	name, ok := priorityNames[p]
	if !ok {
		return fmt.Sprintf("priority(%d)", int(p))
	}
	return name
}

func (p *Priority) UnmarshalJSON(data []byte) error {
	// Убираем кавычки вокруг строки, не-строки отклоняем
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("failed to parse priority: expected a string, got %s", string(data))
	}
	str := string(data[1 : len(data)-1])
	parsed, err := ParsePriority(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}
