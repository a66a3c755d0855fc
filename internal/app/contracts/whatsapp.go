package contracts

import (
	"context"

	"lavanderia-service/internal/pkg/dto/requests"
)

type WhatsAppService interface {
	SendMessage(ctx context.Context, message *requests.WhatsAppMessage) error
}
