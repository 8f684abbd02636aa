package dto

import (
	"strings"

	smodel "absensiku_backend/internals/features/attendance/state/model"
)

// Metadata kop laporan cetak; dipersist utuh di key terpisah.
type UpdateReportMetaRequest struct {
	ReportTitle      string `json:"title"         validate:"required,max=200"`
	ReportSchoolYear string `json:"schoolYear"    validate:"required,max=20"`
	ReportCity       string `json:"city"          validate:"required,max=100"`
	ReportPrincipal  string `json:"principalName" validate:"omitempty,max=120"`
}

func (r UpdateReportMetaRequest) ToModel() smodel.ReportMeta {
	return smodel.ReportMeta{
		ReportTitle:      strings.TrimSpace(r.ReportTitle),
		ReportSchoolYear: strings.TrimSpace(r.ReportSchoolYear),
		ReportCity:       strings.TrimSpace(r.ReportCity),
		ReportPrincipal:  strings.TrimSpace(r.ReportPrincipal),
	}
}
