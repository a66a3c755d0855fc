package booking

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"lavanderia-service/internal/app/config"
	"lavanderia-service/internal/app/contracts"
	"lavanderia-service/internal/app/models"
	"lavanderia-service/internal/app/services/core/availability"
	"lavanderia-service/internal/app/services/core/resolver"
	"lavanderia-service/internal/app/services/shared/ratelimiter"
	"lavanderia-service/internal/pkg/constvars"
	"lavanderia-service/internal/pkg/dto/requests"
	"lavanderia-service/internal/pkg/dto/responses"
	"lavanderia-service/internal/pkg/exceptions"
	"lavanderia-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	ReservationRepository contracts.ReservationRepository
	RedisRepository       contracts.RedisRepository
	WhatsAppService       contracts.WhatsAppService
	ResourceLimiter       *ratelimiter.ResourceLimiter
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
	// Now is the resolution clock; overridable in tests.
	Now func() time.Time
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	reservationRepository contracts.ReservationRepository,
	redisRepository contracts.RedisRepository,
	whatsAppService contracts.WhatsAppService,
	resourceLimiter *ratelimiter.ResourceLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			ReservationRepository: reservationRepository,
			RedisRepository:       redisRepository,
			WhatsAppService:       whatsAppService,
			ResourceLimiter:       resourceLimiter,
			InternalConfig:        internalConfig,
			Log:                   logger,
			Now:                   time.Now,
		}
	})
	return bookingUsecaseInstance
}

// ProcessMessage runs the whole booking flow for one inbound WhatsApp
// message: gate, dedup, resolve, validate, check availability, append,
// reply. User-facing failures become Spanish replies on the outbound queue;
// only infrastructure faults surface as errors.
func (uc *bookingUsecase) ProcessMessage(ctx context.Context, message *requests.IncomingWhatsAppMessage) (*responses.WebhookOutcome, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.ProcessMessage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageIDKey, message.MessageID),
		zap.String(constvars.LoggingGroupNameKey, message.GroupName),
	)

	if !uc.shouldProcess(message) {
		uc.Log.Debug("bookingUsecase.ProcessMessage message ignored",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMessageIDKey, message.MessageID),
		)
		return &responses.WebhookOutcome{}, nil
	}

	firstDelivery, err := uc.markProcessed(ctx, message.MessageID)
	if err != nil {
		return nil, err
	}
	if !firstDelivery {
		uc.Log.Info("bookingUsecase.ProcessMessage duplicate delivery",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMessageIDKey, message.MessageID),
		)
		return &responses.WebhookOutcome{Duplicate: true}, nil
	}

	senderPhone := utils.NormalizeLocalPhone(utils.NormalizePhoneDigits(message.From))
	if err := utils.ValidateInternationalPhoneDigits(senderPhone); err != nil {
		uc.Log.Warn("bookingUsecase.ProcessMessage sender phone rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &responses.WebhookOutcome{}, nil
	}

	allowed, err := uc.withinSenderQuota(ctx, senderPhone)
	if err != nil {
		return nil, err
	}
	if !allowed {
		uc.Log.Warn("bookingUsecase.ProcessMessage sender over quota",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSenderPhoneKey, senderPhone),
		)
		return &responses.WebhookOutcome{}, nil
	}

	mentionToken := uc.InternalConfig.App.MentionToken
	cleaned := resolver.StripMention(message.Body, mentionToken)

	if isHelpCommand(cleaned) {
		reply := fmt.Sprintf(constvars.ReplyHelpFormat, mentionToken)
		return uc.reply(ctx, senderPhone, reply, false)
	}
	if isListCommand(cleaned) {
		return uc.listUpcoming(ctx, requestID, senderPhone)
	}
	if rest, ok := cancelCommandArgs(cleaned); ok {
		return uc.cancelBySender(ctx, requestID, senderPhone, rest)
	}

	parsed, ok := resolver.Resolve(message.Body, mentionToken, uc.Now())
	if !ok {
		uc.Log.Info("bookingUsecase.ProcessMessage datetime not recognized",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return uc.reply(ctx, senderPhone, fmt.Sprintf(constvars.ReplyNotRecognizedFormat, mentionToken), false)
	}

	uc.Log.Info("bookingUsecase.ProcessMessage datetime resolved",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKeyKey, parsed.DateKey()),
		zap.String(constvars.LoggingTimeOfDayKey, parsed.TimeOfDay()),
		zap.String(constvars.LoggingSourceFormat, string(parsed.SourceFormat)),
	)

	startMinutes, err := utils.ParseClockMinutes(parsed.TimeOfDay())
	if err != nil {
		return nil, exceptions.ErrInvalidTimeOfDay(err)
	}
	if !availability.IsOperational(startMinutes) {
		return uc.reply(ctx, senderPhone, constvars.ReplyOutOfOperationalHours, false)
	}

	dayReservations, err := uc.ReservationRepository.FindByDateKey(ctx, parsed.DateKey())
	if err != nil {
		uc.Log.Error("bookingUsecase.ProcessMessage error loading reservations",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return uc.reply(ctx, senderPhone, constvars.ReplyStoreError, false)
	}

	result := availability.CheckAvailability(dayReservations, startMinutes)
	if !result.Available {
		reply := constvars.ReplySlotOccupied
		if result.NextAvailable != "" {
			reply = fmt.Sprintf(constvars.ReplySlotOccupiedNextFormat, result.NextAvailable)
		}
		return uc.reply(ctx, senderPhone, reply, false)
	}

	userName := strings.TrimSpace(message.SenderName)
	if userName == "" {
		userName = constvars.DefaultUserName
	}

	reservation := &models.Reservation{
		DateKey:   parsed.DateKey(),
		Time:      parsed.TimeOfDay(),
		UserName:  userName,
		UserPhone: senderPhone,
		CreatedAt: uc.Now(),
	}
	if _, err := uc.ReservationRepository.Insert(ctx, reservation); err != nil {
		uc.Log.Error("bookingUsecase.ProcessMessage error inserting reservation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return uc.reply(ctx, senderPhone, constvars.ReplyStoreError, false)
	}

	uc.Log.Info("bookingUsecase.ProcessMessage reservation stored",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKeyKey, reservation.DateKey),
		zap.String(constvars.LoggingTimeOfDayKey, reservation.Time),
		zap.String(constvars.LoggingSenderPhoneKey, senderPhone),
	)

	reply := fmt.Sprintf(constvars.ReplyReservationConfirmedFormat, parsed.SpanishDateTime())
	return uc.reply(ctx, senderPhone, reply, true)
}

func (uc *bookingUsecase) CancelReservation(ctx context.Context, request *requests.CancelReservation) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CancelReservation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKeyKey, request.Date),
		zap.String(constvars.LoggingTimeOfDayKey, request.Time),
	)

	phone := utils.NormalizeLocalPhone(utils.NormalizePhoneDigits(request.Phone))
	deleted, err := uc.ReservationRepository.DeleteByDateTimePhone(ctx, request.Date, request.Time, phone)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return exceptions.ErrReservationNotFound(fmt.Errorf("no reservation at %s %s", request.Date, request.Time))
	}

	uc.Log.Info("bookingUsecase.CancelReservation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDeletedCount, deleted),
	)
	return nil
}

func (uc *bookingUsecase) ListReservationsByDate(ctx context.Context, dateKey string) ([]responses.Reservation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.ListReservationsByDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKeyKey, dateKey),
	)

	reservations, err := uc.ReservationRepository.FindByDateKey(ctx, dateKey)
	if err != nil {
		return nil, err
	}

	out := make([]responses.Reservation, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, responses.Reservation{
			Date:      r.DateKey,
			Time:      r.Time,
			UserName:  r.UserName,
			UserPhone: r.UserPhone,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

// shouldProcess applies the group gate: only messages from the allowed group
// that mention the bot token are handled, everything else is dropped without
// a reply.
func (uc *bookingUsecase) shouldProcess(message *requests.IncomingWhatsAppMessage) bool {
	mentionToken := strings.ToLower(uc.InternalConfig.App.MentionToken)
	if mentionToken != "" && !strings.Contains(strings.ToLower(message.Body), mentionToken) {
		return false
	}
	allowedGroup := strings.ToLower(strings.TrimSpace(uc.InternalConfig.App.AllowedGroupName))
	if allowedGroup == "" {
		return true
	}
	return strings.Contains(strings.ToLower(message.GroupName), allowedGroup)
}

func (uc *bookingUsecase) markProcessed(ctx context.Context, messageID string) (bool, error) {
	key := fmt.Sprintf(constvars.RedisKeyProcessedMessageFormat, messageID)
	window := time.Duration(uc.InternalConfig.App.WebhookDedupWindowTimeInMinutes) * time.Minute
	return uc.RedisRepository.TrySetNX(ctx, key, 1, window)
}

func (uc *bookingUsecase) withinSenderQuota(ctx context.Context, senderPhone string) (bool, error) {
	out, err := uc.ResourceLimiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      senderPhone,
		LimiterGroupName:  constvars.LimiterGroupWebhook,
		WindowDurationSec: 60,
		MaxQuota:          uc.InternalConfig.App.MaxRequests,
	})
	if err != nil {
		return false, err
	}
	return out.Allowed, nil
}

func (uc *bookingUsecase) reply(ctx context.Context, senderPhone, text string, booked bool) (*responses.WebhookOutcome, error) {
	err := uc.WhatsAppService.SendMessage(ctx, &requests.WhatsAppMessage{
		To:      senderPhone,
		Message: text,
	})
	if err != nil {
		return nil, err
	}
	return &responses.WebhookOutcome{Processed: true, Booked: booked, Reply: text}, nil
}

// listUpcoming answers the "mis reservas" command with the sender's pending
// slots from today onward.
func (uc *bookingUsecase) listUpcoming(ctx context.Context, requestID, senderPhone string) (*responses.WebhookOutcome, error) {
	today := uc.Now().Format("2006-01-02")
	reservations, err := uc.ReservationRepository.FindUpcomingByPhone(ctx, senderPhone, today)
	if err != nil {
		uc.Log.Error("bookingUsecase.listUpcoming error loading reservations",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return uc.reply(ctx, senderPhone, constvars.ReplyStoreError, false)
	}
	if len(reservations) == 0 {
		return uc.reply(ctx, senderPhone, constvars.ReplyNoReservations, false)
	}

	lines := []string{constvars.ReplyReservationsHeader}
	for i, r := range reservations {
		lines = append(lines, fmt.Sprintf(constvars.ReplyReservationItemFormat, i+1, spanishDate(r.DateKey), r.Time))
	}
	return uc.reply(ctx, senderPhone, strings.Join(lines, "\n"), false)
}

// cancelBySender handles "cancelar <fecha> <hora>". The remainder goes through
// the same grammars as a booking so the user cancels with the exact phrase
// they booked with.
func (uc *bookingUsecase) cancelBySender(ctx context.Context, requestID, senderPhone, rest string) (*responses.WebhookOutcome, error) {
	parsed, ok := resolver.Resolve(rest, "", uc.Now())
	if !ok {
		mentionToken := uc.InternalConfig.App.MentionToken
		return uc.reply(ctx, senderPhone, fmt.Sprintf(constvars.ReplyNotRecognizedFormat, mentionToken), false)
	}

	deleted, err := uc.ReservationRepository.DeleteByDateTimePhone(ctx, parsed.DateKey(), parsed.TimeOfDay(), senderPhone)
	if err != nil {
		uc.Log.Error("bookingUsecase.cancelBySender error deleting reservation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return uc.reply(ctx, senderPhone, constvars.ReplyStoreError, false)
	}
	if deleted == 0 {
		return uc.reply(ctx, senderPhone, constvars.ReplyCancellationNotFound, false)
	}

	uc.Log.Info("bookingUsecase.cancelBySender reservation cancelled",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKeyKey, parsed.DateKey()),
		zap.String(constvars.LoggingTimeOfDayKey, parsed.TimeOfDay()),
	)
	return uc.reply(ctx, senderPhone, fmt.Sprintf(constvars.ReplyCancellationSuccessFormat, parsed.SpanishDateTime()), false)
}

func isHelpCommand(cleaned string) bool {
	c := strings.ToLower(strings.TrimSpace(cleaned))
	return c == "ayuda" || c == "help"
}

func isListCommand(cleaned string) bool {
	c := strings.ToLower(strings.TrimSpace(cleaned))
	return c == "mis reservas" || c == "reservas"
}

// cancelCommandArgs reports whether cleaned is a cancel command and returns
// the date phrase after the keyword.
func cancelCommandArgs(cleaned string) (string, bool) {
	c := strings.TrimSpace(cleaned)
	if !strings.HasPrefix(strings.ToLower(c), "cancelar") {
		return "", false
	}
	return strings.TrimSpace(c[len("cancelar"):]), true
}

// spanishDate renders a stored date key as DD/MM/YYYY; the raw key passes
// through when it does not parse.
func spanishDate(dateKey string) string {
	t, err := time.Parse("2006-01-02", dateKey)
	if err != nil {
		return dateKey
	}
	return resolver.FormatSpanishDate(t)
}
