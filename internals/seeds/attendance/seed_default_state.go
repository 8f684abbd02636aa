// Data bootstrap saat belum ada state tersimpan sama sekali.
package attendance

import (
	"time"

	smodel "absensiku_backend/internals/features/attendance/state/model"
	"absensiku_backend/internals/helpers/datekey"

	"github.com/google/uuid"
)

// DefaultTeachers: roster awal supaya aplikasi tidak kosong saat pertama
// jalan. Jadwal default Senin-Jumat.
func DefaultTeachers() []smodel.Teacher {
	weekdays := []int{1, 2, 3, 4, 5}
	names := []struct{ name, subject string }{
		{"Siti Rahayu", "Matematika"},
		{"Budi Santoso", "Bahasa Indonesia"},
		{"Dewi Lestari", "IPA"},
		{"Ahmad Fauzi", "IPS"},
		{"Rina Wulandari", "Bahasa Inggris"},
	}

	teachers := make([]smodel.Teacher, 0, len(names))
	for _, n := range names {
		teachers = append(teachers, smodel.Teacher{
			TeacherID:       uuid.NewString(),
			TeacherName:     n.name,
			TeacherSubject:  n.subject,
			TeacherWorkDays: append([]int(nil), weekdays...),
		})
	}
	return teachers
}

// WeekendSettings materializes every Saturday/Sunday of the year as an
// explicit weekend override. Redundan dengan aturan default resolver,
// tapi sengaja dieksplisitkan supaya bisa diedit per tanggal.
func WeekendSettings(year int) []smodel.CalendarDaySetting {
	var out []smodel.CalendarDaySetting
	d := time.Date(year, 1, 1, 0, 0, 0, 0, time.Local)
	for d.Year() == year {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			out = append(out, smodel.CalendarDaySetting{
				CalendarDayDate:        datekey.ToKey(d),
				CalendarDayType:        smodel.DayTypeWeekend,
				CalendarDayDescription: "Akhir pekan",
			})
		}
		d = d.AddDate(0, 0, 1)
	}
	return out
}
