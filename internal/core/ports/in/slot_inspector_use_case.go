package in

import (
	"context"
	"time"

	"github.com/suchimauz/appointment-planner-api/internal/core/domain"
	"github.com/suchimauz/appointment-planner-api/internal/core/json_types"
)

type SlotInspectorUseCase interface {
	// Описание слота с проекцией в запрошенную таймзону.
	// day - якорь локального дня, по умолчанию берется дата начала слота
	InspectSlot(ctx context.Context, slot domain.Slot, timezone string, day *json_types.CalendarDate) (*domain.SlotReport, []domain.TraceInfo, error)

	// Проверка вместимости слота по длительности
	CheckFit(ctx context.Context, slot domain.Slot, required time.Duration) (*domain.FitReport, error)

	// Проверка вложенности двух слотов
	CheckContainment(ctx context.Context, outer, inner domain.Slot) (*domain.ContainmentReport, error)
}
