package controllers

import (
	"context"
	"net/http"
	"time"

	"lavanderia-service/internal/app/contracts"
	"lavanderia-service/internal/pkg/constvars"
	"lavanderia-service/internal/pkg/dto/requests"
	"lavanderia-service/internal/pkg/exceptions"
	"lavanderia-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type WebhookController struct {
	BookingUsecase contracts.BookingUsecase
	Log            *zap.Logger
}

func NewWebhookController(bookingUsecase contracts.BookingUsecase, log *zap.Logger) *WebhookController {
	return &WebhookController{
		BookingUsecase: bookingUsecase,
		Log:            log,
	}
}

// HandleWhatsAppMessage receives one inbound message from the WhatsApp
// bridge. The HTTP status is always 200 once the payload is valid; what
// happened to the message is reported in the outcome body so the bridge
// never retries user-level failures.
func (c *WebhookController) HandleWhatsAppMessage(w http.ResponseWriter, r *http.Request) {
	var request requests.IncomingWhatsAppMessage
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	outcome, err := c.BookingUsecase.ProcessMessage(ctx, &request)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	message := constvars.WebhookAcknowledgedMessage
	switch {
	case outcome.Duplicate:
		message = constvars.WebhookDuplicateMessage
	case !outcome.Processed:
		message = constvars.WebhookIgnoredMessage
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, outcome)
}
