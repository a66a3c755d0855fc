package routers

import (
	"lavanderia-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachWebhookRoutes(router chi.Router, webhookController *controllers.WebhookController) {
	router.Post("/whatsapp", webhookController.HandleWhatsAppMessage)
}
