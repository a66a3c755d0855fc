package contracts

import (
	"context"
	"time"

	"lavanderia-service/internal/app/models"
)

type ReservationRepository interface {
	FindByDateKey(ctx context.Context, dateKey string) ([]models.Reservation, error)
	Insert(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error)
	DeleteByDateTimePhone(ctx context.Context, dateKey, timeOfDay, phone string) (int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	FindUpcomingByPhone(ctx context.Context, phone, fromDateKey string) ([]models.Reservation, error)
}
