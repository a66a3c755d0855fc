package routers

import (
	"net/http"
	"time"

	"lavanderia-service/internal/app/config"
	"lavanderia-service/internal/app/delivery/http/controllers"
	"lavanderia-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	webhookController *controllers.WebhookController,
	scheduleController *controllers.ScheduleController,
	reservationController *controllers.ReservationController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id", "X-Api-Key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging(mw.Log))
	router.Use(mw.ErrorHandler)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	adminLimiter := middlewares.NewRateLimiter(internalConfig.App.MaxRequests, time.Second, time.Minute)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/webhook", func(r chi.Router) {
			attachWebhookRoutes(r, webhookController)
		})

		r.Group(func(r chi.Router) {
			r.Use(adminLimiter.Limit)
			r.Use(mw.APIKeyAuth)

			r.Route("/schedule", func(r chi.Router) {
				attachScheduleRoutes(r, scheduleController)
			})
			r.Route("/reservations", func(r chi.Router) {
				attachReservationRoutes(r, reservationController)
			})
		})
	})
}
