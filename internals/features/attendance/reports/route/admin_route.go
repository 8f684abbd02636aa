package route

import (
	"absensiku_backend/internals/features/attendance/reports/controller"
	stateservice "absensiku_backend/internals/features/attendance/state/service"

	"github.com/gofiber/fiber/v2"
)

// ReportMetaAdminRoutes: metadata kop laporan cetak.
func ReportMetaAdminRoutes(r fiber.Router, store *stateservice.Store) {
	ctrl := controller.NewReportMetaController(store)

	meta := r.Group("/report-meta")
	meta.Get("/", ctrl.GetReportMeta)
	meta.Put("/", ctrl.UpdateReportMeta)
}
