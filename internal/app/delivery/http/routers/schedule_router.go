package routers

import (
	"lavanderia-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, scheduleController *controllers.ScheduleController) {
	router.Get("/{date}", scheduleController.GetDaySchedule)
}
