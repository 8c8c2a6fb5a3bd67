package domain

import "time"

// TraceInfo - замер длительности одного шага обработки запроса
type TraceInfo struct {
	Event     string            `json:"event"`
	Timing    int64             `json:"timing"`
	StartTime time.Time         `json:"-"`
	Options   map[string]string `json:"options,omitempty"`
}

func (t *TraceInfo) Start() {
	t.StartTime = time.Now()
}

func (t *TraceInfo) Elapse() {
	t.Timing = time.Since(t.StartTime).Milliseconds()
}

func (t *TraceInfo) AddOption(key string, value string) {
	if t.Options == nil {
		t.Options = make(map[string]string)
	}
	t.Options[key] = value
}
