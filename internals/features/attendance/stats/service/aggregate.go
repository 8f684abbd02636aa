package service

import (
	"math"
	"time"

	calservice "absensiku_backend/internals/features/attendance/calendar/service"
	smodel "absensiku_backend/internals/features/attendance/state/model"
	"absensiku_backend/internals/helpers/datekey"
)

/* =========================================================
   Ringkasan (summary)
   ========================================================= */

// TeacherSummary: rekap satu guru untuk satu rentang tanggal.
type TeacherSummary struct {
	TeacherID          string `json:"teacher_id"`
	TeacherName        string `json:"teacher_name"`
	WorkDaysInPeriod   int    `json:"work_days_in_period"`
	PresentDays        int    `json:"present_days"`
	SickDays           int    `json:"sick_days"`
	PermitDays         int    `json:"permit_days"`
	AbsentDays         int    `json:"absent_days"`
	PresencePercentage int    `json:"presence_percentage"`
}

// OverallSummary: penjumlahan lintas guru. TotalWorkDays = jumlah
// teacher-day terjadwal, bukan jumlah tanggal.
type OverallSummary struct {
	TotalWorkDays      int `json:"total_work_days"`
	PresentDays        int `json:"present_days"`
	SickDays           int `json:"sick_days"`
	PermitDays         int `json:"permit_days"`
	AbsentDays         int `json:"absent_days"`
	PresencePercentage int `json:"presence_percentage"`
}

// SummarizeTeacher walks every date in the inclusive range and produces the
// per-status recap for one teacher.
//
// Aturan inferensi: hari kerja terjadwal di masa lalu (sebelum "today",
// perbandingan per date key) tanpa record dihitung alpa — tidak ada entri
// berarti gurunya dianggap tidak hadir. Hari ini & ke depan tanpa record
// tidak dihitung apa-apa (masih terbuka).
func SummarizeTeacher(
	teacher smodel.Teacher,
	settings map[string]smodel.CalendarDaySetting,
	records map[string]smodel.AttendanceRecord,
	rng Range,
	today time.Time,
) TeacherSummary {
	sum := TeacherSummary{TeacherID: teacher.TeacherID, TeacherName: teacher.TeacherName}
	todayKey := datekey.ToKey(today)

	for d := rng.Start; !d.After(rng.End); d = d.AddDate(0, 0, 1) {
		if !calservice.IsWorkDay(teacher, d, settings) {
			continue
		}
		sum.WorkDaysInPeriod++

		key := datekey.ToKey(d)
		rec, ok := records[smodel.AttendanceRecordID(teacher.TeacherID, key)]
		if ok {
			switch rec.AttendanceStatus {
			case smodel.StatusSick:
				sum.SickDays++
			case smodel.StatusPermit:
				sum.PermitDays++
			case smodel.StatusAbsent:
				sum.AbsentDays++
			}
			// present: tidak menambah counter mana pun, tersirat di presentDays
			continue
		}
		// date key "YYYY-MM-DD" terurut leksikografis = terurut kronologis
		if key < todayKey {
			sum.AbsentDays++
		}
	}

	sum.PresentDays = sum.WorkDaysInPeriod - (sum.SickDays + sum.PermitDays + sum.AbsentDays)
	if sum.PresentDays < 0 {
		sum.PresentDays = 0
	}
	sum.PresencePercentage = percentage(sum.PresentDays, sum.WorkDaysInPeriod)
	return sum
}

// SummarizeAll: rekap per guru + total keseluruhan.
func SummarizeAll(
	teachers []smodel.Teacher,
	settings map[string]smodel.CalendarDaySetting,
	records map[string]smodel.AttendanceRecord,
	rng Range,
	today time.Time,
) (OverallSummary, []TeacherSummary) {
	perTeacher := make([]TeacherSummary, 0, len(teachers))
	var overall OverallSummary

	for _, t := range teachers {
		s := SummarizeTeacher(t, settings, records, rng, today)
		perTeacher = append(perTeacher, s)

		overall.TotalWorkDays += s.WorkDaysInPeriod
		overall.PresentDays += s.PresentDays
		overall.SickDays += s.SickDays
		overall.PermitDays += s.PermitDays
		overall.AbsentDays += s.AbsentDays
	}
	overall.PresencePercentage = percentage(overall.PresentDays, overall.TotalWorkDays)
	return overall, perTeacher
}

func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

/* =========================================================
   Trend (deret waktu untuk chart)
   ========================================================= */

// TrendPoint: satu titik deret. Value nil = gap (bukan hari kerja untuk
// guru itu, atau hasilnya belum diketahui) — chart merender putus, bukan 0.
type TrendPoint struct {
	Label string `json:"label"`
	Value *int   `json:"value"`
}

// TeacherTrend: deret presentase kehadiran satu guru.
// Rentang multi-bulan → satu titik per bulan (persentase bulan itu);
// satu bulan → satu titik per hari (100 hadir / 0 tidak hadir / nil gap).
// Di kedua granularitas, sakit/izin/alpa sama-sama kolaps jadi "tidak
// hadir" — counter terpisah hanya hidup di summary.
func TeacherTrend(
	teacher smodel.Teacher,
	settings map[string]smodel.CalendarDaySetting,
	records map[string]smodel.AttendanceRecord,
	rng Range,
	today time.Time,
) []TrendPoint {
	if rng.SpansMultipleMonths() {
		months := rng.Months()
		points := make([]TrendPoint, 0, len(months))
		for _, m := range months {
			s := SummarizeTeacher(teacher, settings, records, m, today)
			v := s.PresencePercentage
			points = append(points, TrendPoint{Label: m.Start.Format("2006-01"), Value: &v})
		}
		return points
	}
	return teacherDailyTrend(teacher, settings, records, rng, today)
}

func teacherDailyTrend(
	teacher smodel.Teacher,
	settings map[string]smodel.CalendarDaySetting,
	records map[string]smodel.AttendanceRecord,
	rng Range,
	today time.Time,
) []TrendPoint {
	var points []TrendPoint
	todayKey := datekey.ToKey(today)

	for d := rng.Start; !d.After(rng.End); d = d.AddDate(0, 0, 1) {
		key := datekey.ToKey(d)
		pt := TrendPoint{Label: key}

		if calservice.IsWorkDay(teacher, d, settings) {
			if rec, ok := records[smodel.AttendanceRecordID(teacher.TeacherID, key)]; ok {
				v := 0
				if rec.AttendanceStatus == smodel.StatusPresent {
					v = 100
				}
				pt.Value = &v
			} else if key < todayKey {
				v := 0 // alpa tersirat
				pt.Value = &v
			}
			// tanpa record & belum lewat → nil, hari masih terbuka
		}
		points = append(points, pt)
	}
	return points
}

// OverallTrend: deret gabungan semua guru.
// Titik harian = persen teacher-day terjadwal yang hadir pada tanggal itu
// (BUKAN rata-rata persentase per guru); teacher-day yang belum diketahui
// (masa depan tanpa record) tidak masuk pembilang maupun penyebut.
func OverallTrend(
	teachers []smodel.Teacher,
	settings map[string]smodel.CalendarDaySetting,
	records map[string]smodel.AttendanceRecord,
	rng Range,
	today time.Time,
) []TrendPoint {
	if rng.SpansMultipleMonths() {
		months := rng.Months()
		points := make([]TrendPoint, 0, len(months))
		for _, m := range months {
			overall, _ := SummarizeAll(teachers, settings, records, m, today)
			v := overall.PresencePercentage
			points = append(points, TrendPoint{Label: m.Start.Format("2006-01"), Value: &v})
		}
		return points
	}

	var points []TrendPoint
	todayKey := datekey.ToKey(today)

	for d := rng.Start; !d.After(rng.End); d = d.AddDate(0, 0, 1) {
		key := datekey.ToKey(d)
		pt := TrendPoint{Label: key}

		known, present := 0, 0
		for _, t := range teachers {
			if !calservice.IsWorkDay(t, d, settings) {
				continue
			}
			rec, ok := records[smodel.AttendanceRecordID(t.TeacherID, key)]
			switch {
			case ok:
				known++
				if rec.AttendanceStatus == smodel.StatusPresent {
					present++
				}
			case key < todayKey:
				known++ // alpa tersirat: masuk penyebut saja
			}
		}
		if known > 0 {
			v := percentage(present, known)
			pt.Value = &v
		}
		points = append(points, pt)
	}
	return points
}
