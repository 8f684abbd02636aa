package controller

import (
	"absensiku_backend/internals/features/attendance/reports/dto"
	stateservice "absensiku_backend/internals/features/attendance/state/service"
	helper "absensiku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type ReportMetaController struct {
	Store    *stateservice.Store
	validate *validator.Validate
}

func NewReportMetaController(store *stateservice.Store) *ReportMetaController {
	return &ReportMetaController{Store: store, validate: validator.New()}
}

// GET /report-meta — default disuplai kalau belum pernah disimpan.
func (ctrl *ReportMetaController) GetReportMeta(c *fiber.Ctx) error {
	return helper.Success(c, "Metadata laporan", ctrl.Store.ReportMeta())
}

// PUT /report-meta
func (ctrl *ReportMetaController) UpdateReportMeta(c *fiber.Ctx) error {
	var req dto.UpdateReportMetaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	meta := req.ToModel()
	ctrl.Store.SetReportMeta(meta)
	return helper.Success(c, "Metadata laporan tersimpan", meta)
}
