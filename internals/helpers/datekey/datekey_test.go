package datekey_test

import (
	"testing"
	"time"

	"absensiku_backend/internals/helpers/datekey"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToKeyUsesLocalCalendarFields(t *testing.T) {
	// 23:30 WIB; konversi UTC akan jatuh ke hari sebelumnya.
	wib := time.FixedZone("WIB", 7*3600)
	d := time.Date(2024, 3, 1, 23, 30, 0, 0, wib)

	assert.Equal(t, "2024-03-01", datekey.ToKey(d))
}

func TestToKeyZeroPads(t *testing.T) {
	d := time.Date(2024, 1, 5, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-01-05", datekey.ToKey(d))
}

func TestRoundTrip(t *testing.T) {
	for _, key := range []string{"2024-02-29", "2023-12-31", "2024-01-01", "1999-07-17"} {
		d, err := datekey.FromKey(key)
		require.NoError(t, err)
		assert.Equal(t, key, datekey.ToKey(d))
	}
}

func TestRoundTripFromTime(t *testing.T) {
	d := time.Date(2024, 6, 15, 13, 45, 12, 0, time.Local)
	back, err := datekey.FromKey(datekey.ToKey(d))
	require.NoError(t, err)

	y1, m1, d1 := d.Date()
	y2, m2, d2 := back.Date()
	assert.Equal(t, y1, y2)
	assert.Equal(t, m1, m2)
	assert.Equal(t, d1, d2)
}

func TestFromKeyRejectsGarbage(t *testing.T) {
	for _, key := range []string{"", "2024", "2024-13-01", "2024-02-30", "01-02-2024", "2024/02/01"} {
		_, err := datekey.FromKey(key)
		assert.Error(t, err, key)
	}
	assert.False(t, datekey.IsValid("bukan-tanggal"))
	assert.True(t, datekey.IsValid("2024-02-29"))
}
