package controller

import (
	"strings"

	"absensiku_backend/internals/features/attendance/records/dto"
	ledger "absensiku_backend/internals/features/attendance/records/service"
	smodel "absensiku_backend/internals/features/attendance/state/model"
	stateservice "absensiku_backend/internals/features/attendance/state/service"
	helper "absensiku_backend/internals/helpers"
	"absensiku_backend/internals/helpers/datekey"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type AttendanceController struct {
	Store    *stateservice.Store
	validate *validator.Validate
}

func NewAttendanceController(store *stateservice.Store) *AttendanceController {
	return &AttendanceController{Store: store, validate: validator.New()}
}

/* ===================== UPSERT ===================== */
// POST /attendance
func (ctrl *AttendanceController) UpsertAttendance(c *fiber.Ctx) error {
	var req dto.UpsertAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	rec, err := req.ToModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	ctrl.Store.UpsertAttendance(rec)
	return helper.Success(c, "Absensi tersimpan", rec)
}

/* ===================== UPSERT MASSAL ===================== */
// POST /attendance/bulk
func (ctrl *AttendanceController) BulkUpsertAttendance(c *fiber.Ctx) error {
	var req dto.BulkUpsertAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	recs, err := req.ToModels()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	ctrl.Store.UpsertAttendance(recs...)
	return helper.Success(c, "Absensi massal tersimpan", fiber.Map{"count": len(recs)})
}

/* ===================== LIST ===================== */
// GET /attendance?date=YYYY-MM-DD
func (ctrl *AttendanceController) ListAttendance(c *fiber.Ctx) error {
	snap := ctrl.Store.Snapshot()

	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		return helper.Success(c, "Semua record absensi", snap.AttendanceRecords)
	}
	if !datekey.IsValid(date) {
		return fiber.NewError(fiber.StatusBadRequest, "Parameter date harus YYYY-MM-DD")
	}

	out := ledger.ForDate(snap.AttendanceRecords, date)
	if out == nil {
		out = []smodel.AttendanceRecord{}
	}
	return helper.Success(c, "Record absensi tanggal "+date, out)
}
