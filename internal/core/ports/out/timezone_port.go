package out

import (
	"context"
	"time"
)

type TimezonePort interface {
	// Резолвит имя таймзоны IANA в time.Location.
	// Пустое имя резолвится в таймзону приложения из конфига.
	LocationOf(ctx context.Context, name string) (*time.Location, error)
}
