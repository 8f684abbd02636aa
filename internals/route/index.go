// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	stateservice "absensiku_backend/internals/features/attendance/state/service"
	routeDetails "absensiku_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, store *stateservice.Store) {
	startTime = time.Now()

	BaseRoutes(app)

	// ===================== GROUPS =====================
	// App single-user lokal: tidak ada login, grup dibedakan hanya untuk
	// memisahkan permukaan baca (/api/u) dari mutasi (/api/a).

	log.Println("[INFO] Setting up USER (read) group...")
	user := app.Group("/api/u")

	log.Println("[INFO] Setting up ADMIN (mutation) group...")
	admin := app.Group("/api/a")

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Attendance routes...")
	routeDetails.AttendanceUserRoutes(user, store)
	routeDetails.AttendanceAdminRoutes(admin, store)
}
