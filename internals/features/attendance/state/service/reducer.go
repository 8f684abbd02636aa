package service

import (
	"sort"

	ledger "absensiku_backend/internals/features/attendance/records/service"
	smodel "absensiku_backend/internals/features/attendance/state/model"
)

/* =========================================================
   Transisi state murni
   Semua fungsi di file ini copy-on-write: snapshot lama tidak pernah
   dimutasi, jadi pembaca yang masih pegang snapshot lama tetap aman.
   Tidak ada I/O di sini — persist dilakukan Store sesudahnya.
   ========================================================= */

func addTeacher(b smodel.StateBlob, t smodel.Teacher) smodel.StateBlob {
	t.TeacherWorkDays = normalizeWorkDays(t.TeacherWorkDays)
	next := b
	next.Teachers = append(copyTeachers(b.Teachers), t)
	return next
}

// updateTeacher mengganti profil guru by id. ok=false kalau id tidak ada.
func updateTeacher(b smodel.StateBlob, t smodel.Teacher) (smodel.StateBlob, bool) {
	idx := -1
	for i, cur := range b.Teachers {
		if cur.TeacherID == t.TeacherID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return b, false
	}
	t.TeacherWorkDays = normalizeWorkDays(t.TeacherWorkDays)
	next := b
	next.Teachers = copyTeachers(b.Teachers)
	next.Teachers[idx] = t
	return next, true
}

// deleteTeacher menghapus guru. Record absensinya sengaja TIDAK ikut
// dihapus — jadi yatim, dan pembacaan mentolerirnya sebagai "tidak ada data".
func deleteTeacher(b smodel.StateBlob, id string) (smodel.StateBlob, bool) {
	next := b
	out := make([]smodel.Teacher, 0, len(b.Teachers))
	found := false
	for _, t := range b.Teachers {
		if t.TeacherID == id {
			found = true
			continue
		}
		out = append(out, t)
	}
	if !found {
		return b, false
	}
	next.Teachers = out
	return next, true
}

// setWorkDays mengganti jadwal mingguan satu guru.
func setWorkDays(b smodel.StateBlob, id string, days []int) (smodel.StateBlob, bool) {
	idx := -1
	for i, cur := range b.Teachers {
		if cur.TeacherID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return b, false
	}
	next := b
	next.Teachers = copyTeachers(b.Teachers)
	next.Teachers[idx].TeacherWorkDays = normalizeWorkDays(days)
	return next, true
}

// setCalendarDay: upsert setting by date key — satu setting per tanggal,
// penulisan berikutnya menimpa (tidak pernah dihapus di alur normal).
func setCalendarDay(b smodel.StateBlob, s smodel.CalendarDaySetting) smodel.StateBlob {
	next := b
	out := make([]smodel.CalendarDaySetting, len(b.CalendarSettings))
	copy(out, b.CalendarSettings)

	for i, cur := range out {
		if cur.CalendarDayDate == s.CalendarDayDate {
			out[i] = s
			next.CalendarSettings = out
			return next
		}
	}
	next.CalendarSettings = append(out, s)
	return next
}

// upsertAttendance mendelegasikan ke ledger (invariant anti-duplikat ada
// di sana).
func upsertAttendance(b smodel.StateBlob, recs ...smodel.AttendanceRecord) smodel.StateBlob {
	next := b
	next.AttendanceRecords = ledger.Upsert(b.AttendanceRecords, recs...)
	return next
}

/* ===================== util ===================== */

func copyTeachers(in []smodel.Teacher) []smodel.Teacher {
	out := make([]smodel.Teacher, len(in))
	copy(out, in)
	return out
}

// normalizeWorkDays: buang duplikat & nilai di luar 0..6, urutkan.
// nil tetap nil (dipakai deteksi data legacy saat migrasi load).
func normalizeWorkDays(days []int) []int {
	if days == nil {
		return nil
	}
	seen := map[int]bool{}
	out := make([]int, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}
