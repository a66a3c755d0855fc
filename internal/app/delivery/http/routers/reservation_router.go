package routers

import (
	"lavanderia-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachReservationRoutes(router chi.Router, reservationController *controllers.ReservationController) {
	router.Get("/{date}", reservationController.FindByDate)
	router.Delete("/", reservationController.Cancel)
}
