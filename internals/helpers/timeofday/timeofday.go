// Package timeofday: normalisasi jam masuk/pulang "HH:mm[:ss]".
package timeofday

import (
	"fmt"
	"strings"
	"time"
)

// Normalize menerima "HH:mm" atau "HH:mm:ss" dan mengembalikan bentuk
// kanonik "HH:mm". String kosong dibiarkan kosong (jam tidak dicatat).
func Normalize(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if len(s) == 5 { // "HH:mm"
		s += ":00"
	}
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return "", fmt.Errorf("timeofday: jam tidak valid %q (harus HH:mm)", s)
	}
	return t.Format("15:04"), nil
}
