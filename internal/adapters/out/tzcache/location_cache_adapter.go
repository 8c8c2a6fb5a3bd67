package tzcache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/suchimauz/appointment-planner-api/internal/config"
	"github.com/suchimauz/appointment-planner-api/internal/core/ports/out"
)

// LocationCacheAdapter резолвит имена таймзон IANA через time.LoadLocation
// и кэширует результат в LRU. Сам lru.Cache потокобезопасен.
// При выключенном кэше работает как passthrough.
type LocationCacheAdapter struct {
	cache           *lru.Cache[string, *time.Location]
	logger          out.LoggerPort
	defaultTimezone string
}

func NewLocationCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*LocationCacheAdapter, error) {
	adapter := &LocationCacheAdapter{
		logger:          logger.WithModule("LocationCacheAdapter"),
		defaultTimezone: cfg.App.Timezone,
	}

	if !cfg.Cache.Enabled {
		logger.Info("tzcache.disabled", out.LogFields{
			"message": "Location cache is disabled",
		})
		return adapter, nil
	}

	cache, err := lru.New[string, *time.Location](cfg.Cache.LocationsSize)
	if err != nil {
		logger.Error("tzcache.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.LocationsSize,
		})
		return nil, err
	}

	adapter.cache = cache
	return adapter, nil
}

func (a *LocationCacheAdapter) LocationOf(ctx context.Context, name string) (*time.Location, error) {
	// Пустое имя резолвится в таймзону приложения
	if name == "" {
		name = a.defaultTimezone
	}

	if a.cache != nil {
		location, exists := a.cache.Get(name)
		if exists {
			a.logger.Debug("tzcache.get.hit", out.LogFields{
				"timezone": name,
			})
			return location, nil
		}

		a.logger.Debug("tzcache.get.miss", out.LogFields{
			"timezone": name,
		})
	}

	location, err := time.LoadLocation(name)
	if err != nil {
		a.logger.Warn("tzcache.load.failed", out.LogFields{
			"timezone": name,
			"error":    err.Error(),
		})
		return nil, err
	}

	if a.cache != nil {
		a.cache.Add(name, location)
	}

	return location, nil
}
