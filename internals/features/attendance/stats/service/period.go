// Package service: resolusi periode & mesin agregasi kehadiran.
// Semuanya fungsi murni atas snapshot state + "today" eksplisit.
package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Range: rentang tanggal inklusif [Start, End].
type Range struct {
	Start time.Time
	End   time.Time
}

// SpansMultipleMonths: true kalau rentang melewati batas bulan.
func (r Range) SpansMultipleMonths() bool {
	return r.Start.Year() != r.End.Year() || r.Start.Month() != r.End.Month()
}

// Months memecah rentang jadi sub-rentang per bulan kalender.
// Token periode selalu align ke batas bulan, jadi tiap potongan utuh.
func (r Range) Months() []Range {
	var months []Range
	cur := time.Date(r.Start.Year(), r.Start.Month(), 1, 0, 0, 0, 0, r.Start.Location())
	for !cur.After(r.End) {
		end := cur.AddDate(0, 1, -1) // "hari 0 bulan depan"
		months = append(months, Range{Start: cur, End: end})
		cur = cur.AddDate(0, 1, 0)
	}
	return months
}

// ResolvePeriod parses a period token into an inclusive date range.
//
// Token yang didukung:
//
//	"YYYY-MM" → satu bulan penuh
//	"YYYY"    → 1 Jan s/d 31 Des
//	"YYYY-qN" → kuartal N (1..4)
//	"YYYY-sN" → semester N (1..2)
//
// Token lain ditolak keras (boundary contract, bukan kondisi recoverable).
func ResolvePeriod(token string) (Range, error) {
	token = strings.TrimSpace(token)

	bad := func() (Range, error) {
		return Range{}, fmt.Errorf("invalid period token %q", token)
	}

	// "YYYY"
	if len(token) == 4 {
		year, err := strconv.Atoi(token)
		if err != nil || year <= 0 {
			return bad()
		}
		return monthSpan(year, 1, 12), nil
	}

	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 || len(parts[0]) != 4 {
		return bad()
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year <= 0 {
		return bad()
	}

	sel := parts[1]
	switch {
	case strings.HasPrefix(sel, "q"):
		q, err := strconv.Atoi(sel[1:])
		if err != nil || q < 1 || q > 4 {
			return bad()
		}
		return monthSpan(year, (q-1)*3+1, q*3), nil

	case strings.HasPrefix(sel, "s"):
		s, err := strconv.Atoi(sel[1:])
		if err != nil || s < 1 || s > 2 {
			return bad()
		}
		return monthSpan(year, (s-1)*6+1, s*6), nil

	default:
		if len(sel) != 2 {
			return bad()
		}
		m, err := strconv.Atoi(sel)
		if err != nil || m < 1 || m > 12 {
			return bad()
		}
		return monthSpan(year, m, m), nil
	}
}

// monthSpan: hari pertama bulan from s/d hari terakhir bulan to.
func monthSpan(year, from, to int) Range {
	start := time.Date(year, time.Month(from), 1, 0, 0, 0, 0, time.Local)
	end := time.Date(year, time.Month(to), 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, -1)
	return Range{Start: start, End: end}
}
