package details

import (
	calendarRoute "absensiku_backend/internals/features/attendance/calendar/route"
	recordsRoute "absensiku_backend/internals/features/attendance/records/route"
	reportsRoute "absensiku_backend/internals/features/attendance/reports/route"
	stateservice "absensiku_backend/internals/features/attendance/state/service"
	statsRoute "absensiku_backend/internals/features/attendance/stats/route"
	teachersRoute "absensiku_backend/internals/features/attendance/teachers/route"

	"github.com/gofiber/fiber/v2"
)

// AttendanceAdminRoutes: semua mutasi state (guru, kalender, absensi, meta).
func AttendanceAdminRoutes(r fiber.Router, store *stateservice.Store) {
	teachersRoute.TeacherAdminRoutes(r, store)
	calendarRoute.CalendarAdminRoutes(r, store)
	recordsRoute.AttendanceAdminRoutes(r, store)
	reportsRoute.ReportMetaAdminRoutes(r, store)
}

// AttendanceUserRoutes: pembacaan turunan (rekap, trend, grid).
func AttendanceUserRoutes(r fiber.Router, store *stateservice.Store) {
	statsRoute.StatsUserRoutes(r, store)
}
