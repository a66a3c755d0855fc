package whatsapp

import (
	"context"
	"lavanderia-service/internal/app/contracts"
	"lavanderia-service/internal/pkg/constvars"
	"lavanderia-service/internal/pkg/dto/requests"
	"lavanderia-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// whatsAppService publishes outbound replies onto the queue consumed by the
// WhatsApp bridge. Publishing is throttled so a burst of webhook traffic
// cannot flood the bridge and trip WhatsApp's own rate limiting.
type whatsAppService struct {
	Channel  *amqp091.Channel
	Queue    string
	Log      *zap.Logger
	throttle *rate.Limiter
}

var (
	whatsAppServiceInstance contracts.WhatsAppService
	onceWhatsAppService     sync.Once
	whatsAppServiceError    error
)

func NewWhatsAppService(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue string, ratePerSecond, burst int) (contracts.WhatsAppService, error) {
	onceWhatsAppService.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			whatsAppServiceError = err
			return
		}
		if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			whatsAppServiceError = err
			return
		}
		whatsAppServiceInstance = &whatsAppService{
			Channel:  channel,
			Queue:    queue,
			Log:      logger,
			throttle: rate.NewLimiter(rate.Limit(ratePerSecond), burst),
		}
	})
	return whatsAppServiceInstance, whatsAppServiceError
}

func (s *whatsAppService) SendMessage(ctx context.Context, request *requests.WhatsAppMessage) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := s.throttle.Wait(ctx); err != nil {
		s.Log.Error("whatsAppService.SendMessage throttle wait aborted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	body, err := json.Marshal(request)
	if err != nil {
		s.Log.Error("whatsAppService.SendMessage error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("whatsAppService.SendMessage error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("whatsAppService.SendMessage published reply",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
	)

	return nil
}
