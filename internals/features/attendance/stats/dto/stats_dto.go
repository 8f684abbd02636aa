package dto

import (
	smodel "absensiku_backend/internals/features/attendance/state/model"
	statservice "absensiku_backend/internals/features/attendance/stats/service"
)

// Rekap satu periode: keseluruhan + rincian per guru.
type SummaryResponse struct {
	Period   string                       `json:"period"`
	Start    string                       `json:"start"`
	End      string                       `json:"end"`
	Overall  statservice.OverallSummary   `json:"overall"`
	Teachers []statservice.TeacherSummary `json:"teachers"`
}

// Rekap satu guru saja.
type TeacherSummaryResponse struct {
	Period  string                     `json:"period"`
	Start   string                     `json:"start"`
	End     string                     `json:"end"`
	Summary statservice.TeacherSummary `json:"summary"`
}

// Deret trend (granularitas ditentukan panjang periode).
type TrendResponse struct {
	Period      string                   `json:"period"`
	Granularity string                   `json:"granularity"` // "daily" | "monthly"
	Points      []statservice.TrendPoint `json:"points"`
}

// Satu sel grid bulanan.
type CalendarGridDay struct {
	Date        string                  `json:"date"`
	DayType     smodel.DayType          `json:"day_type"`
	IsWorkDay   *bool                   `json:"is_work_day,omitempty"` // hanya saat teacher_id diberikan
	Status      smodel.AttendanceStatus `json:"status,omitempty"`
	CheckIn     string                  `json:"check_in,omitempty"`
	CheckOut    string                  `json:"check_out,omitempty"`
	Description string                  `json:"description,omitempty"`
}

type CalendarGridResponse struct {
	Month     string            `json:"month"`
	TeacherID string            `json:"teacher_id,omitempty"`
	Days      []CalendarGridDay `json:"days"`
}
