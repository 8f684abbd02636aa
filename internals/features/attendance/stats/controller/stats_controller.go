package controller

import (
	"strings"
	"time"

	calservice "absensiku_backend/internals/features/attendance/calendar/service"
	smodel "absensiku_backend/internals/features/attendance/state/model"
	stateservice "absensiku_backend/internals/features/attendance/state/service"
	"absensiku_backend/internals/features/attendance/stats/dto"
	statservice "absensiku_backend/internals/features/attendance/stats/service"
	helper "absensiku_backend/internals/helpers"
	"absensiku_backend/internals/helpers/datekey"

	"github.com/gofiber/fiber/v2"
)

type StatsController struct {
	Store *stateservice.Store
	// Now di-inject supaya "today" bisa di-mock di test; agregasi sendiri
	// menerima today sebagai parameter eksplisit.
	Now func() time.Time
}

func NewStatsController(store *stateservice.Store) *StatsController {
	return &StatsController{Store: store, Now: time.Now}
}

/* ===================== SUMMARY ===================== */
// GET /stats/summary?period=2024-02[&teacher_id=...]
func (ctrl *StatsController) GetSummary(c *fiber.Ctx) error {
	rng, err := statservice.ResolvePeriod(c.Query("period"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	snap := ctrl.Store.Snapshot()
	settings := snap.CalendarIndex()
	records := snap.AttendanceIndex()
	today := ctrl.Now()
	token := strings.TrimSpace(c.Query("period"))

	if teacherID := strings.TrimSpace(c.Query("teacher_id")); teacherID != "" {
		teacher, ok := snap.FindTeacher(teacherID)
		if !ok {
			// referensi dangling → "tidak ada data", bukan error
			teacher = smodel.Teacher{TeacherID: teacherID}
		}
		return helper.Success(c, "Rekap kehadiran guru", dto.TeacherSummaryResponse{
			Period:  token,
			Start:   datekey.ToKey(rng.Start),
			End:     datekey.ToKey(rng.End),
			Summary: statservice.SummarizeTeacher(teacher, settings, records, rng, today),
		})
	}

	overall, perTeacher := statservice.SummarizeAll(snap.Teachers, settings, records, rng, today)
	return helper.Success(c, "Rekap kehadiran", dto.SummaryResponse{
		Period:   token,
		Start:    datekey.ToKey(rng.Start),
		End:      datekey.ToKey(rng.End),
		Overall:  overall,
		Teachers: perTeacher,
	})
}

/* ===================== TREND ===================== */
// GET /stats/trend?period=2024-s1[&teacher_id=...]
func (ctrl *StatsController) GetTrend(c *fiber.Ctx) error {
	rng, err := statservice.ResolvePeriod(c.Query("period"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	snap := ctrl.Store.Snapshot()
	settings := snap.CalendarIndex()
	records := snap.AttendanceIndex()
	today := ctrl.Now()

	granularity := "daily"
	if rng.SpansMultipleMonths() {
		granularity = "monthly"
	}

	var points []statservice.TrendPoint
	if teacherID := strings.TrimSpace(c.Query("teacher_id")); teacherID != "" {
		teacher, ok := snap.FindTeacher(teacherID)
		if !ok {
			teacher = smodel.Teacher{TeacherID: teacherID}
		}
		points = statservice.TeacherTrend(teacher, settings, records, rng, today)
	} else {
		points = statservice.OverallTrend(snap.Teachers, settings, records, rng, today)
	}

	return helper.Success(c, "Trend kehadiran", dto.TrendResponse{
		Period:      strings.TrimSpace(c.Query("period")),
		Granularity: granularity,
		Points:      points,
	})
}

/* ===================== GRID BULANAN ===================== */
// GET /stats/calendar?month=2024-02[&teacher_id=...]
// Data read-only untuk tampilan grid bulanan: tipe hari tiap tanggal,
// plus status kehadiran bila teacher_id diberikan.
func (ctrl *StatsController) GetCalendarGrid(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Query("month"))
	rng, err := statservice.ResolvePeriod(token)
	if err != nil || rng.SpansMultipleMonths() {
		return fiber.NewError(fiber.StatusBadRequest, "Parameter month harus berformat YYYY-MM")
	}

	snap := ctrl.Store.Snapshot()
	settings := snap.CalendarIndex()
	records := snap.AttendanceIndex()
	todayKey := datekey.ToKey(ctrl.Now())

	teacherID := strings.TrimSpace(c.Query("teacher_id"))
	var teacher smodel.Teacher
	hasTeacher := teacherID != ""
	if hasTeacher {
		teacher, _ = snap.FindTeacher(teacherID) // dangling → jadwal kosong
		teacher.TeacherID = teacherID
	}

	var days []dto.CalendarGridDay
	for d := rng.Start; !d.After(rng.End); d = d.AddDate(0, 0, 1) {
		key := datekey.ToKey(d)
		day := dto.CalendarGridDay{
			Date:    key,
			DayType: calservice.ResolveDayType(d, settings),
		}
		if s, ok := settings[key]; ok {
			day.Description = s.CalendarDayDescription
		}

		if hasTeacher {
			isWork := calservice.IsWorkDay(teacher, d, settings)
			day.IsWorkDay = &isWork
			if isWork {
				if rec, ok := records[smodel.AttendanceRecordID(teacherID, key)]; ok {
					day.Status = rec.AttendanceStatus
					day.CheckIn = rec.AttendanceCheckIn
					day.CheckOut = rec.AttendanceCheckOut
				} else if key < todayKey {
					day.Status = smodel.StatusAbsent // alpa tersirat
				}
			}
		}
		days = append(days, day)
	}

	return helper.Success(c, "Grid kalender bulanan", dto.CalendarGridResponse{
		Month:     token,
		TeacherID: teacherID,
		Days:      days,
	})
}
