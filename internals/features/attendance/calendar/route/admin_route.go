package route

import (
	"absensiku_backend/internals/features/attendance/calendar/controller"
	stateservice "absensiku_backend/internals/features/attendance/state/service"

	"github.com/gofiber/fiber/v2"
)

// CalendarAdminRoutes: kelola override kalender bersama.
func CalendarAdminRoutes(r fiber.Router, store *stateservice.Store) {
	ctrl := controller.NewCalendarController(store)

	days := r.Group("/calendar-days")
	days.Get("/", ctrl.ListCalendarDays)
	days.Put("/", ctrl.UpsertCalendarDay)
}
