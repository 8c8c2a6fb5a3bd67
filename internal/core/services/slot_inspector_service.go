package services

import (
	"context"
	"fmt"
	"time"

	"github.com/suchimauz/appointment-planner-api/internal/config"
	"github.com/suchimauz/appointment-planner-api/internal/core/domain"
	"github.com/suchimauz/appointment-planner-api/internal/core/json_types"
	"github.com/suchimauz/appointment-planner-api/internal/core/ports/out"
)

type SlotInspectorService struct {
	timezonePort out.TimezonePort
	logger       out.LoggerPort
	cfg          *config.Config
}

func NewSlotInspectorService(
	timezonePort out.TimezonePort,
	logger out.LoggerPort,
	cfg *config.Config,
) *SlotInspectorService {
	return &SlotInspectorService{
		timezonePort: timezonePort,
		logger:       logger.WithModule("SlotInspectorService"),
		cfg:          cfg,
	}
}

func (s *SlotInspectorService) InspectSlot(ctx context.Context, slot domain.Slot, timezone string, day *json_types.CalendarDate) (*domain.SlotReport, []domain.TraceInfo, error) {
	traces := make([]domain.TraceInfo, 0)

	s.logger.Info("slots.inspect.started", out.LogFields{
		"slot":     slot.String(),
		"timezone": timezone,
	})

	resolve_location_trace := domain.TraceInfo{
		Event: "slots.inspect.location.resolve",
	}
	resolve_location_trace.Start()

	location, err := s.timezonePort.LocationOf(ctx, timezone)
	if err != nil {
		s.logger.Error("slots.inspect.location.resolve_failed", out.LogFields{
			"timezone": timezone,
			"error":    err.Error(),
		})
		return nil, nil, fmt.Errorf("slots.inspect.location.resolve_failed: %w", err)
	}
	resolve_location_trace.Elapse()
	traces = append(traces, resolve_location_trace)

	// Якорь локального дня - дата начала слота, если день не задан явно
	var localDay domain.LocalDay
	if day != nil {
		localDay = domain.NewLocalDay(location, domain.LocalDate{
			Year:  day.Date.Year(),
			Month: day.Date.Month(),
			Day:   day.Date.Day(),
		})
	} else {
		localDay = domain.LocalDayOf(location, slot.Start())
	}

	build_projection_trace := domain.TraceInfo{
		Event: "slots.inspect.projection.build",
	}
	build_projection_trace.Start()

	// Границы дня-якоря как слот [00:00, 00:00 следующего дня)
	daySlot, err := domain.NewSlot(localDay.At(0, 0), localDay.At(24, 0))
	if err != nil {
		return nil, nil, err
	}

	report := &domain.SlotReport{
		Start:           json_types.Instant{Time: slot.Start()},
		End:             json_types.Instant{Time: slot.End()},
		Duration:        domain.DurationOf(slot).String(),
		DurationMinutes: int64(domain.DurationOf(slot) / time.Minute),
		Sentinel:        slot.IsSentinel(),
		Timezone:        location.String(),
		Day:             localDay.Date(),
		WithinDay:       domain.Contains(daySlot, slot),
		Local:           domain.ProjectSlot(slot, localDay),
	}

	build_projection_trace.Elapse()
	traces = append(traces, build_projection_trace)

	return report, traces, nil
}

func (s *SlotInspectorService) CheckFit(ctx context.Context, slot domain.Slot, required time.Duration) (*domain.FitReport, error) {
	fits := domain.FitsDuration(slot, required)

	s.logger.Debug("slots.fit.checked", out.LogFields{
		"slot":     slot.String(),
		"required": required.String(),
		"fits":     fits,
	})

	return &domain.FitReport{
		SlotDuration:     domain.DurationOf(slot).String(),
		RequiredDuration: required.String(),
		Fits:             fits,
	}, nil
}

func (s *SlotInspectorService) CheckContainment(ctx context.Context, outer, inner domain.Slot) (*domain.ContainmentReport, error) {
	report := &domain.ContainmentReport{
		OuterContainsInner: domain.Contains(outer, inner),
		InnerContainsOuter: domain.Contains(inner, outer),
		DurationOrder:      domain.Compare(outer, inner),
	}

	s.logger.Debug("slots.containment.checked", out.LogFields{
		"outer":              outer.String(),
		"inner":              inner.String(),
		"outerContainsInner": report.OuterContainsInner,
		"innerContainsOuter": report.InnerContainsOuter,
	})

	return report, nil
}
