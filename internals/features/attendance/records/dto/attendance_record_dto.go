package dto

import (
	"errors"
	"strings"

	smodel "absensiku_backend/internals/features/attendance/state/model"
	"absensiku_backend/internals/helpers/datekey"
	"absensiku_backend/internals/helpers/timeofday"
)

// Upsert satu record kehadiran. Id komposit diturunkan dari
// (teacherId, date) — klien tidak pernah mengirim id.
type UpsertAttendanceRequest struct {
	AttendanceTeacherID string `json:"teacherId" validate:"required"`
	AttendanceDate      string `json:"date"      validate:"required"`
	AttendanceStatus    string `json:"status"    validate:"required,oneof=present sick permit absent"`
	AttendanceCheckIn   string `json:"checkIn"   validate:"omitempty,max=8"`
	AttendanceCheckOut  string `json:"checkOut"  validate:"omitempty,max=8"`
}

func (r UpsertAttendanceRequest) ToModel() (smodel.AttendanceRecord, error) {
	date := strings.TrimSpace(r.AttendanceDate)
	if !datekey.IsValid(date) {
		return smodel.AttendanceRecord{}, errors.New("date harus berformat YYYY-MM-DD")
	}

	rec := smodel.AttendanceRecord{
		AttendanceTeacherID: strings.TrimSpace(r.AttendanceTeacherID),
		AttendanceDate:      date,
		AttendanceStatus:    smodel.AttendanceStatus(r.AttendanceStatus),
	}

	// jam masuk/pulang hanya bermakna saat hadir
	if rec.AttendanceStatus == smodel.StatusPresent {
		checkIn, err := timeofday.Normalize(r.AttendanceCheckIn)
		if err != nil {
			return smodel.AttendanceRecord{}, err
		}
		checkOut, err := timeofday.Normalize(r.AttendanceCheckOut)
		if err != nil {
			return smodel.AttendanceRecord{}, err
		}
		rec.AttendanceCheckIn = checkIn
		rec.AttendanceCheckOut = checkOut
	}
	return rec, nil
}

// Upsert massal (mis. isi satu hari sekaligus dari grid).
type BulkUpsertAttendanceRequest struct {
	Records []UpsertAttendanceRequest `json:"records" validate:"required,min=1,dive"`
}

func (r BulkUpsertAttendanceRequest) ToModels() ([]smodel.AttendanceRecord, error) {
	out := make([]smodel.AttendanceRecord, 0, len(r.Records))
	for _, req := range r.Records {
		rec, err := req.ToModel()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
