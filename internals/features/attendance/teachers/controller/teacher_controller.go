package controller

import (
	"absensiku_backend/internals/features/attendance/teachers/dto"
	stateservice "absensiku_backend/internals/features/attendance/state/service"
	helper "absensiku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type TeacherController struct {
	Store    *stateservice.Store
	validate *validator.Validate
}

func NewTeacherController(store *stateservice.Store) *TeacherController {
	return &TeacherController{Store: store, validate: validator.New()}
}

/* ===================== LIST ===================== */
// GET /teachers
func (ctrl *TeacherController) GetTeachers(c *fiber.Ctx) error {
	snap := ctrl.Store.Snapshot()
	return helper.Success(c, "Daftar guru", snap.Teachers)
}

/* ===================== CREATE ===================== */
// POST /teachers
func (ctrl *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	created := ctrl.Store.AddTeacher(req.ToModel())
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Guru berhasil ditambahkan", created)
}

/* ===================== UPDATE ===================== */
// PUT /teachers/:id
func (ctrl *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	existing, ok := ctrl.Store.Snapshot().FindTeacher(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Guru tidak ditemukan")
	}
	updated := req.ApplyTo(existing)
	if !ctrl.Store.UpdateTeacher(updated) {
		// race kecil: guru dihapus di antara dua baca — perlakukan sama
		return fiber.NewError(fiber.StatusNotFound, "Guru tidak ditemukan")
	}
	return helper.Success(c, "Guru berhasil diperbarui", updated)
}

/* ===================== DELETE ===================== */
// DELETE /teachers/:id
// Record absensi guru SENGAJA tidak ikut dihapus (jadi yatim & ditoleransi).
func (ctrl *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	id := c.Params("id")
	if !ctrl.Store.DeleteTeacher(id) {
		return fiber.NewError(fiber.StatusNotFound, "Guru tidak ditemukan")
	}
	return helper.Success(c, "Guru berhasil dihapus", fiber.Map{"id": id})
}

/* ===================== WORK DAYS ===================== */
// PUT /teachers/:id/work-days
func (ctrl *TeacherController) SetWorkDays(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.SetWorkDaysRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if !ctrl.Store.SetWorkDays(id, req.TeacherWorkDays) {
		return fiber.NewError(fiber.StatusNotFound, "Guru tidak ditemukan")
	}
	teacher, _ := ctrl.Store.Snapshot().FindTeacher(id)
	return helper.Success(c, "Jadwal kerja berhasil diperbarui", teacher)
}
