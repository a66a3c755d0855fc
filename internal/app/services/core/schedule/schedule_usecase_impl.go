package schedule

import (
	"context"
	"sync"

	"lavanderia-service/internal/app/contracts"
	"lavanderia-service/internal/app/services/core/availability"
	"lavanderia-service/internal/pkg/constvars"
	"lavanderia-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type scheduleUsecase struct {
	ReservationRepository contracts.ReservationRepository
	Log                   *zap.Logger
}

var (
	scheduleUsecaseInstance contracts.ScheduleUsecase
	onceScheduleUsecase     sync.Once
)

func NewScheduleUsecase(reservationRepository contracts.ReservationRepository, logger *zap.Logger) contracts.ScheduleUsecase {
	onceScheduleUsecase.Do(func() {
		scheduleUsecaseInstance = &scheduleUsecase{
			ReservationRepository: reservationRepository,
			Log:                   logger,
		}
	})
	return scheduleUsecaseInstance
}

func (uc *scheduleUsecase) ScheduleForDay(ctx context.Context, dateKey string) (*responses.DaySchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.ScheduleForDay called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKeyKey, dateKey),
	)

	reservations, err := uc.ReservationRepository.FindByDateKey(ctx, dateKey)
	if err != nil {
		uc.Log.Error("scheduleUsecase.ScheduleForDay error loading reservations",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return availability.BuildDaySchedule(dateKey, reservations), nil
}
