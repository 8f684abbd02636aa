// Package datekey: konversi tanggal <-> key kanonik "YYYY-MM-DD".
// Semua lookup kalender & absensi bergantung ke format ini, jadi harus
// konsisten: selalu pakai field tanggal lokal, JANGAN konversi ke UTC
// (dekat tengah malam, konversi UTC bisa geser satu hari kalender).
package datekey

import (
	"fmt"
	"time"
)

const layout = "2006-01-02"

// ToKey formats the calendar day of t (in t's own location) as "YYYY-MM-DD".
func ToKey(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// FromKey parses "YYYY-MM-DD" into a local date at midnight.
func FromKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("datekey: invalid date key %q (expected YYYY-MM-DD)", key)
	}
	return t, nil
}

// IsValid: cek cepat untuk validasi DTO.
func IsValid(key string) bool {
	_, err := FromKey(key)
	return err == nil
}

// Weekday returns the weekday number of the key's date (0=Minggu .. 6=Sabtu).
func Weekday(t time.Time) int {
	return int(t.Weekday())
}
