package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lavanderia-service/internal/pkg/dto/requests"
	"lavanderia-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeBookingUsecase struct {
	outcome      *responses.WebhookOutcome
	cancelErr    error
	reservations []responses.Reservation
	received     *requests.IncomingWhatsAppMessage
}

func (f *fakeBookingUsecase) ProcessMessage(ctx context.Context, message *requests.IncomingWhatsAppMessage) (*responses.WebhookOutcome, error) {
	f.received = message
	return f.outcome, nil
}

func (f *fakeBookingUsecase) CancelReservation(ctx context.Context, request *requests.CancelReservation) error {
	return f.cancelErr
}

func (f *fakeBookingUsecase) ListReservationsByDate(ctx context.Context, dateKey string) ([]responses.Reservation, error) {
	return f.reservations, nil
}

type webhookEnvelope struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message"`
	Data    responses.WebhookOutcome `json:"data"`
}

func TestHandleWhatsAppMessage(t *testing.T) {
	payload := `{
		"message_id": "msg-001",
		"from": "5215512345678@c.us",
		"sender_name": "Ana",
		"group_name": "Vecinos Edificio 4",
		"body": "@lavanderia mañana 15:00"
	}`

	t.Run("processed message is acknowledged", func(t *testing.T) {
		usecase := &fakeBookingUsecase{
			outcome: &responses.WebhookOutcome{Processed: true, Booked: true, Reply: "ok"},
		}
		controller := NewWebhookController(usecase, zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/webhook/whatsapp", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		controller.HandleWhatsAppMessage(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var envelope webhookEnvelope
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, "message processed", envelope.Message)
		assert.True(t, envelope.Data.Booked)
		assert.Equal(t, "msg-001", usecase.received.MessageID)
	})

	t.Run("ignored message still returns 200", func(t *testing.T) {
		usecase := &fakeBookingUsecase{outcome: &responses.WebhookOutcome{}}
		controller := NewWebhookController(usecase, zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/webhook/whatsapp", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		controller.HandleWhatsAppMessage(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var envelope webhookEnvelope
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
		assert.Equal(t, "message ignored", envelope.Message)
	})

	t.Run("duplicate message is reported as such", func(t *testing.T) {
		usecase := &fakeBookingUsecase{outcome: &responses.WebhookOutcome{Duplicate: true}}
		controller := NewWebhookController(usecase, zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/webhook/whatsapp", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		controller.HandleWhatsAppMessage(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var envelope webhookEnvelope
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
		assert.Equal(t, "duplicate message ignored", envelope.Message)
	})

	t.Run("malformed json is a bad request", func(t *testing.T) {
		controller := NewWebhookController(&fakeBookingUsecase{}, zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/webhook/whatsapp", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		controller.HandleWhatsAppMessage(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing required fields fail validation", func(t *testing.T) {
		controller := NewWebhookController(&fakeBookingUsecase{}, zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/webhook/whatsapp", strings.NewReader(`{"from":"x@c.us"}`))
		rec := httptest.NewRecorder()
		controller.HandleWhatsAppMessage(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
