// Package service: resolusi tipe hari & predikat hari kerja.
// Logika murni — tidak menyentuh fiber/gorm, supaya gampang diunit-test.
package service

import (
	"time"

	smodel "absensiku_backend/internals/features/attendance/state/model"
	"absensiku_backend/internals/helpers/datekey"
)

// ResolveDayType menentukan tipe hari efektif untuk satu tanggal.
// Override eksplisit SELALU menang, walau bertentangan dengan hari aslinya
// (Selasa boleh di-mark "weekend" dan itu dihormati). Tanpa override:
// Sabtu/Minggu → weekend, selainnya → workday.
func ResolveDayType(date time.Time, settings map[string]smodel.CalendarDaySetting) smodel.DayType {
	if s, ok := settings[datekey.ToKey(date)]; ok {
		return s.CalendarDayType
	}
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return smodel.DayTypeWeekend
	default:
		return smodel.DayTypeWorkday
	}
}

// IsWorkDay: apakah tanggal ini hari kerja untuk guru tertentu.
// Libur institusional (weekend/libur nasional/cuti bersama) mengalahkan
// jadwal personal; kalau institusi buka, baru cek keanggotaan hari di
// jadwal mingguan guru.
func IsWorkDay(teacher smodel.Teacher, date time.Time, settings map[string]smodel.CalendarDaySetting) bool {
	if ResolveDayType(date, settings) != smodel.DayTypeWorkday {
		return false
	}
	wd := datekey.Weekday(date)
	for _, d := range teacher.TeacherWorkDays {
		if d == wd {
			return true
		}
	}
	return false
}
