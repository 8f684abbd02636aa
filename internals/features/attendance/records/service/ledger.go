// Package service: ledger kehadiran — upsert tanpa duplikasi.
package service

import (
	smodel "absensiku_backend/internals/features/attendance/state/model"
)

// Upsert menulis incoming ke ledger secara copy-on-write.
//
// Invariant inti: maksimal satu record per (guru, tanggal). Record dengan id
// komposit yang sama di-replace di tempat (last-write-wins, tanpa merge
// field); yang baru di-append. Slice asal tidak pernah dimutasi.
func Upsert(ledger []smodel.AttendanceRecord, incoming ...smodel.AttendanceRecord) []smodel.AttendanceRecord {
	out := make([]smodel.AttendanceRecord, len(ledger))
	copy(out, ledger)

	pos := make(map[string]int, len(out))
	for i, r := range out {
		pos[smodel.AttendanceRecordID(r.AttendanceTeacherID, r.AttendanceDate)] = i
	}

	for _, rec := range incoming {
		rec.AttendanceID = smodel.AttendanceRecordID(rec.AttendanceTeacherID, rec.AttendanceDate)
		if i, ok := pos[rec.AttendanceID]; ok {
			out[i] = rec
			continue
		}
		pos[rec.AttendanceID] = len(out)
		out = append(out, rec)
	}
	return out
}

// ForDate: semua record pada satu date key (untuk grid harian).
func ForDate(ledger []smodel.AttendanceRecord, dateKey string) []smodel.AttendanceRecord {
	var out []smodel.AttendanceRecord
	for _, r := range ledger {
		if r.AttendanceDate == dateKey {
			out = append(out, r)
		}
	}
	return out
}
