package http

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/suchimauz/appointment-planner-api/internal/config"
	"github.com/suchimauz/appointment-planner-api/internal/core/domain"
	"github.com/suchimauz/appointment-planner-api/internal/core/json_types"
	"github.com/suchimauz/appointment-planner-api/internal/core/ports/in"
	"github.com/suchimauz/appointment-planner-api/internal/core/ports/out"
	"github.com/suchimauz/appointment-planner-api/internal/utils"
)

type SlotInspectorController struct {
	useCase in.SlotInspectorUseCase
	cfg     *config.Config
	logger  out.LoggerPort
	// Зона по умолчанию для дат без смещения, из APP_TIMEZONE
	defaultLocation *time.Location
}

func NewSlotInspectorController(useCase in.SlotInspectorUseCase, cfg *config.Config, logger out.LoggerPort) *SlotInspectorController {
	moduleLogger := logger.WithModule("SlotInspectorController")

	defaultLocation, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		moduleLogger.Warn("controller.timezone.fallback", out.LogFields{
			"timezone": cfg.App.Timezone,
			"error":    err.Error(),
		})
		defaultLocation = time.UTC
	}

	return &SlotInspectorController{
		useCase:         useCase,
		cfg:             cfg,
		logger:          moduleLogger,
		defaultLocation: defaultLocation,
	}
}

func (c *SlotInspectorController) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", c.health)

	api := router.Group("/api/v1")
	api.Use(c.requestID(), c.basicAuth())
	{
		api.GET("/priorities", c.listPriorities)
		api.POST("/slots/inspect", c.inspectSlot)
		api.POST("/slots/fit", c.fitSlot)
		api.POST("/slots/containment", c.checkContainment)
	}
}

type SlotPayload struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type InspectSlotRequest struct {
	Start    string                   `json:"start" binding:"required"`
	End      string                   `json:"end" binding:"required"`
	Timezone string                   `json:"timezone"`
	Day      *json_types.CalendarDate `json:"day"`
}

type FitSlotRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
	// Требуемая длительность: в минутах или как время "01:30:00"
	DurationMinutes *int                  `json:"durationMinutes"`
	Duration        *json_types.ClockTime `json:"duration"`
}

type ContainmentRequest struct {
	Outer SlotPayload `json:"outer" binding:"required"`
	Inner SlotPayload `json:"inner" binding:"required"`
}

func (c *SlotInspectorController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": c.cfg.App.Version,
	})
}

func (c *SlotInspectorController) listPriorities(ctx *gin.Context) {
	priorities := make([]gin.H, 0)
	for _, priority := range domain.Priorities() {
		priorities = append(priorities, gin.H{
			"name": priority.String(),
			"rank": int(priority),
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"priorities": priorities})
}

func (c *SlotInspectorController) inspectSlot(ctx *gin.Context) {
	var req InspectSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slot, ok := c.parseSlot(ctx, req.Start, req.End)
	if !ok {
		return
	}

	report, traces, err := c.useCase.InspectSlot(ctx.Request.Context(), slot, req.Timezone, req.Day)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"slot":  report,
		"trace": traces,
	})
}

func (c *SlotInspectorController) fitSlot(ctx *gin.Context) {
	var req FitSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slot, ok := c.parseSlot(ctx, req.Start, req.End)
	if !ok {
		return
	}

	var required time.Duration
	switch {
	case req.DurationMinutes != nil:
		required = time.Duration(*req.DurationMinutes) * time.Minute
	case req.Duration != nil:
		clock := req.Duration.Time
		required = time.Duration(clock.Hour())*time.Hour +
			time.Duration(clock.Minute())*time.Minute +
			time.Duration(clock.Second())*time.Second
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "durationMinutes or duration is required"})
		return
	}

	report, err := c.useCase.CheckFit(ctx.Request.Context(), slot, required)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, report)
}

func (c *SlotInspectorController) checkContainment(ctx *gin.Context) {
	var req ContainmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outer, ok := c.parseSlot(ctx, req.Outer.Start, req.Outer.End)
	if !ok {
		return
	}
	inner, ok := c.parseSlot(ctx, req.Inner.Start, req.Inner.End)
	if !ok {
		return
	}

	report, err := c.useCase.CheckContainment(ctx.Request.Context(), outer, inner)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// parseSlot парсит границы интервала и валидирует его.
// При ошибке сам пишет 400 в ответ
func (c *SlotInspectorController) parseSlot(ctx *gin.Context, start, end string) (domain.Slot, bool) {
	startTime, err := utils.ParseInstant(start, c.defaultLocation)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start format"})
		return domain.Slot{}, false
	}

	endTime, err := utils.ParseInstant(end, c.defaultLocation)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end format"})
		return domain.Slot{}, false
	}

	slot, err := domain.NewSlot(startTime, endTime)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInterval) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return domain.Slot{}, false
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return domain.Slot{}, false
	}

	return slot, true
}

func (c *SlotInspectorController) requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := uuid.New().String()
		ctx.Header("X-Request-Id", requestID)

		c.logger.Debug("http.request.started", out.LogFields{
			"requestId": requestID,
			"method":    ctx.Request.Method,
			"path":      ctx.Request.URL.Path,
		})

		ctx.Next()
	}
}

func (c *SlotInspectorController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
