package dto

import (
	"errors"
	"strings"

	smodel "absensiku_backend/internals/features/attendance/state/model"
	"absensiku_backend/internals/helpers/datekey"
)

// Upsert satu setting kalender by date key.
type UpsertCalendarDayRequest struct {
	CalendarDayDate        string `json:"date"        validate:"required"`
	CalendarDayType        string `json:"type"        validate:"required,oneof=workday weekend national-holiday joint-leave"`
	CalendarDayDescription string `json:"description" validate:"omitempty,max=500"`
}

func (r UpsertCalendarDayRequest) ToModel() (smodel.CalendarDaySetting, error) {
	date := strings.TrimSpace(r.CalendarDayDate)
	if !datekey.IsValid(date) {
		return smodel.CalendarDaySetting{}, errors.New("date harus berformat YYYY-MM-DD")
	}
	return smodel.CalendarDaySetting{
		CalendarDayDate:        date,
		CalendarDayType:        smodel.DayType(r.CalendarDayType),
		CalendarDayDescription: strings.TrimSpace(r.CalendarDayDescription),
	}, nil
}
