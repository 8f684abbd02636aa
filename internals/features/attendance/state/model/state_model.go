package model

/* =========================================================
   Enums
   ========================================================= */

// AttendanceStatus: status kehadiran harian guru.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present" // hadir
	StatusSick    AttendanceStatus = "sick"    // sakit
	StatusPermit  AttendanceStatus = "permit"  // izin
	StatusAbsent  AttendanceStatus = "absent"  // alpa
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusSick, StatusPermit, StatusAbsent:
		return true
	default:
		return false
	}
}

// DayType: klasifikasi institusional sebuah tanggal.
type DayType string

const (
	DayTypeWorkday         DayType = "workday"
	DayTypeWeekend         DayType = "weekend"
	DayTypeNationalHoliday DayType = "national-holiday"
	DayTypeJointLeave      DayType = "joint-leave" // cuti bersama
)

func (d DayType) Valid() bool {
	switch d {
	case DayTypeWorkday, DayTypeWeekend, DayTypeNationalHoliday, DayTypeJointLeave:
		return true
	default:
		return false
	}
}

/* =========================================================
   Entities (isi StateBlob, serialisasi JSON apa adanya)
   ========================================================= */

// Teacher: profil guru + jadwal kerja mingguan personal.
// WorkDays berisi nomor hari (0=Minggu .. 6=Sabtu), tanpa duplikat,
// boleh kosong (guru tidak pernah terjadwal).
type Teacher struct {
	TeacherID       string `json:"id"`
	TeacherName     string `json:"name"`
	TeacherSubject  string `json:"subject"`
	TeacherPhotoURL string `json:"photoUrl,omitempty"`
	// nil (field hilang di data lama) berbeda dengan slice kosong;
	// migrasi di load akan mengisi default Senin-Jumat.
	TeacherWorkDays []int `json:"workDays"`
}

// CalendarDaySetting: override kalender bersama, satu per date key.
type CalendarDaySetting struct {
	CalendarDayDate        string  `json:"date"` // "YYYY-MM-DD"
	CalendarDayType        DayType `json:"type"`
	CalendarDayDescription string  `json:"description,omitempty"`
}

// AttendanceRecord: satu catatan kehadiran per (guru, tanggal).
// ID komposit = teacherId + date, jadi unik secara natural.
type AttendanceRecord struct {
	AttendanceID        string           `json:"id"`
	AttendanceTeacherID string           `json:"teacherId"`
	AttendanceDate      string           `json:"date"` // "YYYY-MM-DD"
	AttendanceStatus    AttendanceStatus `json:"status"`
	AttendanceCheckIn   string           `json:"checkIn,omitempty"`  // hanya saat present
	AttendanceCheckOut  string           `json:"checkOut,omitempty"` // hanya saat present
}

// AttendanceRecordID derives the composite ledger id for a (teacher, date)
// pair. Every lookup and upsert must go through this.
func AttendanceRecordID(teacherID, dateKey string) string {
	return teacherID + dateKey
}

/* =========================================================
   StateBlob — seluruh state aplikasi, dipersist utuh
   ========================================================= */

// StateBlob adalah satu-satunya bentuk state yang dipersist: tiga koleksi,
// diserialisasi JSON utuh di bawah satu key.
type StateBlob struct {
	Teachers          []Teacher            `json:"teachers"`
	AttendanceRecords []AttendanceRecord   `json:"attendanceRecords"`
	CalendarSettings  []CalendarDaySetting `json:"calendarSettings"`
}

// CalendarIndex: lookup setting per date key. Kalau ada duplikat di data
// (seharusnya tidak), entri terakhir menang.
func (b StateBlob) CalendarIndex() map[string]CalendarDaySetting {
	idx := make(map[string]CalendarDaySetting, len(b.CalendarSettings))
	for _, s := range b.CalendarSettings {
		idx[s.CalendarDayDate] = s
	}
	return idx
}

// AttendanceIndex: lookup record per id komposit.
func (b StateBlob) AttendanceIndex() map[string]AttendanceRecord {
	idx := make(map[string]AttendanceRecord, len(b.AttendanceRecords))
	for _, r := range b.AttendanceRecords {
		idx[AttendanceRecordID(r.AttendanceTeacherID, r.AttendanceDate)] = r
	}
	return idx
}

// FindTeacher: cari guru by id; referensi dangling dibiarkan (ok=false).
func (b StateBlob) FindTeacher(id string) (Teacher, bool) {
	for _, t := range b.Teachers {
		if t.TeacherID == id {
			return t, true
		}
	}
	return Teacher{}, false
}

/* =========================================================
   ReportMeta — record durable kedua, terpisah dari StateBlob
   ========================================================= */

// ReportMeta: metadata cetak/laporan, dipersist di key sendiri.
type ReportMeta struct {
	ReportTitle      string `json:"title"`
	ReportSchoolYear string `json:"schoolYear"`
	ReportCity       string `json:"city"`
	ReportPrincipal  string `json:"principalName"`
}

// DefaultReportMeta dipakai saat record-nya belum pernah disimpan.
func DefaultReportMeta() ReportMeta {
	return ReportMeta{
		ReportTitle:      "Rekapitulasi Kehadiran Guru",
		ReportSchoolYear: "2025/2026",
		ReportCity:       "Jakarta",
		ReportPrincipal:  "",
	}
}
