package controller

import (
	"strconv"
	"strings"

	"absensiku_backend/internals/features/attendance/calendar/dto"
	smodel "absensiku_backend/internals/features/attendance/state/model"
	stateservice "absensiku_backend/internals/features/attendance/state/service"
	helper "absensiku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type CalendarController struct {
	Store    *stateservice.Store
	validate *validator.Validate
}

func NewCalendarController(store *stateservice.Store) *CalendarController {
	return &CalendarController{Store: store, validate: validator.New()}
}

/* ===================== UPSERT ===================== */
// PUT /calendar-days
// Satu setting per tanggal; penulisan berikutnya menimpa (tidak ada delete
// di alur normal).
func (ctrl *CalendarController) UpsertCalendarDay(c *fiber.Ctx) error {
	var req dto.UpsertCalendarDayRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	setting, err := req.ToModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	ctrl.Store.SetCalendarDay(setting)
	return helper.Success(c, "Setting kalender tersimpan", setting)
}

/* ===================== LIST ===================== */
// GET /calendar-days?year=2024
func (ctrl *CalendarController) ListCalendarDays(c *fiber.Ctx) error {
	snap := ctrl.Store.Snapshot()

	yearStr := strings.TrimSpace(c.Query("year"))
	if yearStr == "" {
		return helper.Success(c, "Semua setting kalender", snap.CalendarSettings)
	}
	if _, err := strconv.Atoi(yearStr); err != nil || len(yearStr) != 4 {
		return fiber.NewError(fiber.StatusBadRequest, "Parameter year tidak valid")
	}

	out := make([]smodel.CalendarDaySetting, 0)
	for _, s := range snap.CalendarSettings {
		if strings.HasPrefix(s.CalendarDayDate, yearStr+"-") {
			out = append(out, s)
		}
	}
	return helper.Success(c, "Setting kalender tahun "+yearStr, out)
}
