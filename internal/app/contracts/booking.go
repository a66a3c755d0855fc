package contracts

import (
	"context"

	"lavanderia-service/internal/pkg/dto/requests"
	"lavanderia-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	ProcessMessage(ctx context.Context, message *requests.IncomingWhatsAppMessage) (*responses.WebhookOutcome, error)
	CancelReservation(ctx context.Context, request *requests.CancelReservation) error
	ListReservationsByDate(ctx context.Context, dateKey string) ([]responses.Reservation, error)
}
