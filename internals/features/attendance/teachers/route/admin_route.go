package route

import (
	"absensiku_backend/internals/features/attendance/teachers/controller"
	stateservice "absensiku_backend/internals/features/attendance/state/service"

	"github.com/gofiber/fiber/v2"
)

// TeacherAdminRoutes: CRUD guru + jadwal mingguan.
func TeacherAdminRoutes(r fiber.Router, store *stateservice.Store) {
	ctrl := controller.NewTeacherController(store)

	teachers := r.Group("/teachers")
	teachers.Get("/", ctrl.GetTeachers)
	teachers.Post("/", ctrl.CreateTeacher)
	teachers.Put("/:id", ctrl.UpdateTeacher)
	teachers.Delete("/:id", ctrl.DeleteTeacher)
	teachers.Put("/:id/work-days", ctrl.SetWorkDays)
}
