package route

import (
	stateservice "absensiku_backend/internals/features/attendance/state/service"
	"absensiku_backend/internals/features/attendance/stats/controller"

	"github.com/gofiber/fiber/v2"
)

// StatsUserRoutes: endpoint baca untuk tabel rekap, chart, dan grid bulanan.
func StatsUserRoutes(r fiber.Router, store *stateservice.Store) {
	ctrl := controller.NewStatsController(store)

	stats := r.Group("/stats")
	stats.Get("/summary", ctrl.GetSummary)
	stats.Get("/trend", ctrl.GetTrend)
	stats.Get("/calendar", ctrl.GetCalendarGrid)
}
