// Package service: Application State Store.
//
// Store memegang tiga koleksi (guru, kalender, absensi) sebagai satu
// snapshot immutable. Mutasi = transisi murni (reducer.go) + persist
// best-effort: gagal tulis storage cuma di-log, state in-memory tetap
// jadi source of truth untuk sesi berjalan.
package service

import (
	"log"
	"sync"
	"time"

	smodel "absensiku_backend/internals/features/attendance/state/model"
	seeds "absensiku_backend/internals/seeds/attendance"

	"github.com/google/uuid"
)

// DefaultLegacyWorkDays: jadwal yang dipakai untuk data lama yang belum
// punya field workDays (Senin-Jumat).
var DefaultLegacyWorkDays = []int{1, 2, 3, 4, 5}

type Store struct {
	mu      sync.RWMutex
	blob    smodel.StateBlob
	meta    smodel.ReportMeta
	storage Storage
}

// NewStore loads persisted state (or bootstraps defaults) and publishes the
// first snapshot. State korup / hilang tidak pernah menggagalkan startup.
func NewStore(storage Storage, now time.Time) *Store {
	s := &Store{storage: storage}

	blob, err := storage.LoadState()
	switch {
	case err != nil:
		log.Printf("⚠️ State tersimpan tidak terbaca, pakai default bootstrap: %v", err)
		s.blob = bootstrapState(now)
	case blob == nil:
		log.Println("ℹ️ Belum ada state tersimpan, seeding default roster + kalender.")
		s.blob = bootstrapState(now)
		s.persistState()
	default:
		s.blob = migrateState(*blob)
	}

	meta, err := storage.LoadReportMeta()
	if err != nil {
		log.Printf("⚠️ Report meta tidak terbaca, pakai default: %v", err)
	}
	if meta != nil {
		s.meta = *meta
	} else {
		s.meta = smodel.DefaultReportMeta()
	}

	return s
}

// bootstrapState: roster default + akhir pekan setahun berjalan
// dimaterialisasi sebagai override eksplisit.
func bootstrapState(now time.Time) smodel.StateBlob {
	return smodel.StateBlob{
		Teachers:          seeds.DefaultTeachers(),
		AttendanceRecords: []smodel.AttendanceRecord{},
		CalendarSettings:  seeds.WeekendSettings(now.Year()),
	}
}

// migrateState: upgrade skema sekali di load — data lama tanpa workDays
// diberi default Senin-Jumat sebelum snapshot dipublikasikan.
func migrateState(b smodel.StateBlob) smodel.StateBlob {
	for i := range b.Teachers {
		if b.Teachers[i].TeacherWorkDays == nil {
			b.Teachers[i].TeacherWorkDays = append([]int(nil), DefaultLegacyWorkDays...)
		}
	}
	return b
}

/* ===================== READ ===================== */

// Snapshot: state saat ini. Transisi selalu copy-on-write, jadi snapshot
// yang sudah dipegang pembaca tidak akan berubah di bawah kakinya.
func (s *Store) Snapshot() smodel.StateBlob {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.blob
}

func (s *Store) ReportMeta() smodel.ReportMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meta
}

/* ===================== MUTASI ===================== */

// AddTeacher mints the id and appends the teacher.
func (s *Store) AddTeacher(t smodel.Teacher) smodel.Teacher {
	t.TeacherID = uuid.NewString()
	s.mu.Lock()
	s.blob = addTeacher(s.blob, t)
	s.persistState()
	s.mu.Unlock()
	return t
}

func (s *Store) UpdateTeacher(t smodel.Teacher) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := updateTeacher(s.blob, t)
	if !ok {
		return false
	}
	s.blob = next
	s.persistState()
	return true
}

func (s *Store) DeleteTeacher(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := deleteTeacher(s.blob, id)
	if !ok {
		return false
	}
	s.blob = next
	s.persistState()
	return true
}

func (s *Store) SetWorkDays(id string, days []int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := setWorkDays(s.blob, id, days)
	if !ok {
		return false
	}
	s.blob = next
	s.persistState()
	return true
}

func (s *Store) SetCalendarDay(setting smodel.CalendarDaySetting) {
	s.mu.Lock()
	s.blob = setCalendarDay(s.blob, setting)
	s.persistState()
	s.mu.Unlock()
}

func (s *Store) UpsertAttendance(recs ...smodel.AttendanceRecord) {
	s.mu.Lock()
	s.blob = upsertAttendance(s.blob, recs...)
	s.persistState()
	s.mu.Unlock()
}

func (s *Store) SetReportMeta(meta smodel.ReportMeta) {
	s.mu.Lock()
	s.meta = meta
	if err := s.storage.SaveReportMeta(meta); err != nil {
		log.Printf("⚠️ Gagal persist report meta (state in-memory tetap dipakai): %v", err)
	}
	s.mu.Unlock()
}

// persistState: side effect sesudah tiap transisi; kegagalan ditelan.
// Dipanggil dengan lock sudah dipegang.
func (s *Store) persistState() {
	if err := s.storage.SaveState(s.blob); err != nil {
		log.Printf("⚠️ Gagal persist state (state in-memory tetap dipakai): %v", err)
	}
}
