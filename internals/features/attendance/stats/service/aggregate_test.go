package service_test

import (
	"testing"
	"time"

	smodel "absensiku_backend/internals/features/attendance/state/model"
	"absensiku_backend/internals/features/attendance/stats/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var weekdayTeacher = smodel.Teacher{
	TeacherID:       "t1",
	TeacherName:     "Bu Sari",
	TeacherWorkDays: []int{1, 2, 3, 4, 5},
}

func noSettings() map[string]smodel.CalendarDaySetting {
	return map[string]smodel.CalendarDaySetting{}
}

func recordsOf(recs ...smodel.AttendanceRecord) map[string]smodel.AttendanceRecord {
	idx := make(map[string]smodel.AttendanceRecord)
	for _, r := range recs {
		idx[smodel.AttendanceRecordID(r.AttendanceTeacherID, r.AttendanceDate)] = r
	}
	return idx
}

func mustPeriod(t *testing.T, token string) service.Range {
	r, err := service.ResolvePeriod(token)
	require.NoError(t, err)
	return r
}

// Februari 2024 (29 hari, 21 hari kerja), today = awal periode:
// belum ada hari lewat → tidak ada alpa tersirat, 100%.
func TestSummarizeFutureMonthFullyPresent(t *testing.T) {
	today := time.Date(2024, 2, 1, 8, 0, 0, 0, time.Local)

	s := service.SummarizeTeacher(weekdayTeacher, noSettings(), recordsOf(), mustPeriod(t, "2024-02"), today)

	assert.Equal(t, 21, s.WorkDaysInPeriod)
	assert.Equal(t, 0, s.AbsentDays)
	assert.Equal(t, 0, s.SickDays)
	assert.Equal(t, 0, s.PermitDays)
	assert.Equal(t, 21, s.PresentDays)
	assert.Equal(t, 100, s.PresencePercentage)
}

// Januari 2024 dengan today yang sama: semua 23 hari kerja sudah lewat
// tanpa record → alpa tersirat semuanya.
func TestSummarizePastMonthInferredAbsent(t *testing.T) {
	today := time.Date(2024, 2, 1, 8, 0, 0, 0, time.Local)

	s := service.SummarizeTeacher(weekdayTeacher, noSettings(), recordsOf(), mustPeriod(t, "2024-01"), today)

	assert.Equal(t, 23, s.WorkDaysInPeriod)
	assert.Equal(t, 23, s.AbsentDays)
	assert.Equal(t, 0, s.PresentDays)
	assert.Equal(t, 0, s.PresencePercentage)
}

// Record present eksplisit: tidak menambah counter mana pun dan harinya
// tidak kena alpa tersirat meski sudah lewat.
func TestSummarizeExplicitPresentRecord(t *testing.T) {
	today := time.Date(2024, 1, 10, 8, 0, 0, 0, time.Local)
	records := recordsOf(smodel.AttendanceRecord{
		AttendanceTeacherID: "t1",
		AttendanceDate:      "2024-01-08",
		AttendanceStatus:    smodel.StatusPresent,
	})

	s := service.SummarizeTeacher(weekdayTeacher, noSettings(), records, mustPeriod(t, "2024-01"), today)

	// Hari kerja sebelum 10 Jan: 1-5, 8, 9 Jan (7 hari); satu ada record
	// present → 6 alpa tersirat.
	assert.Equal(t, 6, s.AbsentDays)
	assert.Equal(t, 0, s.SickDays)
	assert.Equal(t, 0, s.PermitDays)
	assert.Equal(t, 23, s.WorkDaysInPeriod)
	assert.Equal(t, 17, s.PresentDays)
}

func TestSummarizeStatusCounters(t *testing.T) {
	today := time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local)
	records := recordsOf(
		smodel.AttendanceRecord{AttendanceTeacherID: "t1", AttendanceDate: "2024-02-05", AttendanceStatus: smodel.StatusSick},
		smodel.AttendanceRecord{AttendanceTeacherID: "t1", AttendanceDate: "2024-02-06", AttendanceStatus: smodel.StatusPermit},
		smodel.AttendanceRecord{AttendanceTeacherID: "t1", AttendanceDate: "2024-02-07", AttendanceStatus: smodel.StatusAbsent},
	)

	// Sisa 18 hari kerja Februari tanpa record, semuanya lewat → alpa.
	s := service.SummarizeTeacher(weekdayTeacher, noSettings(), records, mustPeriod(t, "2024-02"), today)

	assert.Equal(t, 21, s.WorkDaysInPeriod)
	assert.Equal(t, 1, s.SickDays)
	assert.Equal(t, 1, s.PermitDays)
	assert.Equal(t, 19, s.AbsentDays) // 1 eksplisit + 18 tersirat
	assert.Equal(t, 0, s.PresentDays)
	assert.Equal(t, 0, s.PresencePercentage)
}

func TestSummarizeNoWorkDaysNoDivisionByZero(t *testing.T) {
	neverScheduled := smodel.Teacher{TeacherID: "t2", TeacherWorkDays: []int{}}
	today := time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local)

	s := service.SummarizeTeacher(neverScheduled, noSettings(), recordsOf(), mustPeriod(t, "2024-02"), today)

	assert.Equal(t, 0, s.WorkDaysInPeriod)
	assert.Equal(t, 0, s.PresencePercentage)
}

// Override kalender memangkas hari kerja dari penyebut.
func TestSummarizeHolidayOverrideShrinksDenominator(t *testing.T) {
	today := time.Date(2024, 2, 1, 8, 0, 0, 0, time.Local)
	settings := map[string]smodel.CalendarDaySetting{
		"2024-02-14": {CalendarDayDate: "2024-02-14", CalendarDayType: smodel.DayTypeNationalHoliday},
		"2024-02-15": {CalendarDayDate: "2024-02-15", CalendarDayType: smodel.DayTypeJointLeave},
	}

	s := service.SummarizeTeacher(weekdayTeacher, settings, recordsOf(), mustPeriod(t, "2024-02"), today)

	assert.Equal(t, 19, s.WorkDaysInPeriod)
}

func TestSummarizeIsIdempotent(t *testing.T) {
	today := time.Date(2024, 2, 10, 8, 0, 0, 0, time.Local)
	records := recordsOf(
		smodel.AttendanceRecord{AttendanceTeacherID: "t1", AttendanceDate: "2024-02-05", AttendanceStatus: smodel.StatusPresent},
		smodel.AttendanceRecord{AttendanceTeacherID: "t1", AttendanceDate: "2024-02-06", AttendanceStatus: smodel.StatusSick},
	)
	rng := mustPeriod(t, "2024-02")

	first := service.SummarizeTeacher(weekdayTeacher, noSettings(), records, rng, today)
	second := service.SummarizeTeacher(weekdayTeacher, noSettings(), records, rng, today)

	assert.Equal(t, first, second)
}

func TestSummarizeAllSumsTeacherDays(t *testing.T) {
	other := smodel.Teacher{TeacherID: "t2", TeacherName: "Pak Budi", TeacherWorkDays: []int{1, 3}}
	today := time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local)
	records := recordsOf(
		smodel.AttendanceRecord{AttendanceTeacherID: "t1", AttendanceDate: "2024-02-05", AttendanceStatus: smodel.StatusPresent},
	)

	overall, per := service.SummarizeAll(
		[]smodel.Teacher{weekdayTeacher, other}, noSettings(), records, mustPeriod(t, "2024-02"), today)

	require.Len(t, per, 2)
	// Senin+Rabu di Feb 2024: 4 Senin + 4 Rabu = 8 hari kerja.
	assert.Equal(t, 8, per[1].WorkDaysInPeriod)
	assert.Equal(t, 21+8, overall.TotalWorkDays)
	assert.Equal(t, per[0].PresentDays+per[1].PresentDays, overall.PresentDays)
	assert.Equal(t, per[0].AbsentDays+per[1].AbsentDays, overall.AbsentDays)
}

/* ===================== TREND ===================== */

func TestTeacherTrendMonthlyPoints(t *testing.T) {
	today := time.Date(2024, 4, 1, 8, 0, 0, 0, time.Local)

	points := service.TeacherTrend(weekdayTeacher, noSettings(), recordsOf(), mustPeriod(t, "2024-q1"), today)

	require.Len(t, points, 3)
	assert.Equal(t, "2024-01", points[0].Label)
	assert.Equal(t, "2024-03", points[2].Label)
	for _, p := range points {
		// seluruh kuartal sudah lewat tanpa record → 0% tiap bulan
		require.NotNil(t, p.Value)
		assert.Equal(t, 0, *p.Value)
	}
}

func TestTeacherTrendDailyPoints(t *testing.T) {
	today := time.Date(2024, 2, 15, 8, 0, 0, 0, time.Local)
	records := recordsOf(
		smodel.AttendanceRecord{AttendanceTeacherID: "t1", AttendanceDate: "2024-02-05", AttendanceStatus: smodel.StatusPresent},
		smodel.AttendanceRecord{AttendanceTeacherID: "t1", AttendanceDate: "2024-02-06", AttendanceStatus: smodel.StatusSick},
	)

	points := service.TeacherTrend(weekdayTeacher, noSettings(), records, mustPeriod(t, "2024-02"), today)
	require.Len(t, points, 29)

	byLabel := map[string]service.TrendPoint{}
	for _, p := range points {
		byLabel[p.Label] = p
	}

	assert.Nil(t, byLabel["2024-02-03"].Value) // Sabtu → gap
	require.NotNil(t, byLabel["2024-02-05"].Value)
	assert.Equal(t, 100, *byLabel["2024-02-05"].Value) // hadir
	require.NotNil(t, byLabel["2024-02-06"].Value)
	assert.Equal(t, 0, *byLabel["2024-02-06"].Value) // sakit → kolaps ke 0
	require.NotNil(t, byLabel["2024-02-14"].Value)
	assert.Equal(t, 0, *byLabel["2024-02-14"].Value) // lewat tanpa record
	assert.Nil(t, byLabel["2024-02-15"].Value)       // hari ini, masih terbuka
	assert.Nil(t, byLabel["2024-02-16"].Value)       // masa depan
}

// Titik harian gabungan = hadir / teacher-day terjadwal yang diketahui,
// bukan rata-rata persentase per guru.
func TestOverallTrendDailyWeighting(t *testing.T) {
	other := smodel.Teacher{TeacherID: "t2", TeacherName: "Pak Budi", TeacherWorkDays: []int{1, 2, 3, 4, 5}}
	today := time.Date(2024, 2, 15, 8, 0, 0, 0, time.Local)
	records := recordsOf(
		smodel.AttendanceRecord{AttendanceTeacherID: "t1", AttendanceDate: "2024-02-05", AttendanceStatus: smodel.StatusPresent},
		smodel.AttendanceRecord{AttendanceTeacherID: "t2", AttendanceDate: "2024-02-05", AttendanceStatus: smodel.StatusAbsent},
	)

	points := service.OverallTrend(
		[]smodel.Teacher{weekdayTeacher, other}, noSettings(), records, mustPeriod(t, "2024-02"), today)

	byLabel := map[string]service.TrendPoint{}
	for _, p := range points {
		byLabel[p.Label] = p
	}

	require.NotNil(t, byLabel["2024-02-05"].Value)
	assert.Equal(t, 50, *byLabel["2024-02-05"].Value)
	assert.Nil(t, byLabel["2024-02-04"].Value) // Minggu: tidak ada yang terjadwal
	assert.Nil(t, byLabel["2024-02-16"].Value) // masa depan: belum diketahui
}

func TestOverallTrendMonthlyPoints(t *testing.T) {
	today := time.Date(2025, 1, 1, 8, 0, 0, 0, time.Local)

	points := service.OverallTrend(
		[]smodel.Teacher{weekdayTeacher}, noSettings(), recordsOf(), mustPeriod(t, "2024-s2"), today)

	require.Len(t, points, 6)
	assert.Equal(t, "2024-07", points[0].Label)
	assert.Equal(t, "2024-12", points[5].Label)
}
