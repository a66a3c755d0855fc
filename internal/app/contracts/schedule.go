package contracts

import (
	"context"

	"lavanderia-service/internal/pkg/dto/responses"
)

type ScheduleUsecase interface {
	ScheduleForDay(ctx context.Context, dateKey string) (*responses.DaySchedule, error)
}
