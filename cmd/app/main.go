package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	httpin "github.com/suchimauz/appointment-planner-api/internal/adapters/in/http"
	"github.com/suchimauz/appointment-planner-api/internal/adapters/out/logger"
	"github.com/suchimauz/appointment-planner-api/internal/adapters/out/tzcache"
	"github.com/suchimauz/appointment-planner-api/internal/config"
	"github.com/suchimauz/appointment-planner-api/internal/core/ports/out"
	"github.com/suchimauz/appointment-planner-api/internal/core/services"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера с таймзоной
	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":      cfg.App.Version,
		"env":          cfg.App.Env,
		"timezone":     cfg.App.Timezone,
		"cacheEnabled": cfg.Cache.Enabled,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Инициализация адаптеров
	timezoneAdapter, err := tzcache.NewLocationCacheAdapter(cfg, log.WithModule("LocationCacheAdapter"))
	if err != nil {
		log.Error("app.tzcache.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Инициализация сервиса
	slotInspectorService := services.NewSlotInspectorService(
		timezoneAdapter,
		log.WithModule("SlotInspectorService"),
		cfg,
	)

	// Настройка HTTP сервера
	router := gin.Default()
	controller := httpin.NewSlotInspectorController(
		slotInspectorService,
		cfg,
		log.WithModule("HttpController"),
	)
	controller.RegisterRoutes(router)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})

	// Дополнительное логирование для разработки
	if cfg.IsLocal() {
		log.Debug("app.config.debug", out.LogFields{
			"config": map[string]interface{}{
				"http": map[string]string{
					"host": cfg.HTTP.Host,
					"port": cfg.HTTP.Port,
				},
				"cache": map[string]interface{}{
					"enabled":        cfg.Cache.Enabled,
					"locations_size": cfg.Cache.LocationsSize,
				},
			},
		})
	}
}
