package route

import (
	"absensiku_backend/internals/features/attendance/records/controller"
	stateservice "absensiku_backend/internals/features/attendance/state/service"
	"absensiku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
)

// AttendanceAdminRoutes: tulis & baca ledger absensi.
func AttendanceAdminRoutes(r fiber.Router, store *stateservice.Store) {
	ctrl := controller.NewAttendanceController(store)

	attendance := r.Group("/attendance")
	attendance.Get("/", ctrl.ListAttendance)
	attendance.Post("/", ctrl.UpsertAttendance)
	attendance.Post("/bulk", middlewares.BulkUpsertRateLimiter(), ctrl.BulkUpsertAttendance)
}
