package timeofday_test

import (
	"testing"

	"absensiku_backend/internals/helpers/timeofday"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	for in, want := range map[string]string{
		"":         "",
		"07:00":    "07:00",
		"07:00:30": "07:00",
		" 13:45 ":  "13:45",
	} {
		got, err := timeofday.Normalize(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
}

func TestNormalizeRejectsInvalid(t *testing.T) {
	for _, in := range []string{"25:00", "7 pagi", "07:60", "0700"} {
		_, err := timeofday.Normalize(in)
		assert.Error(t, err, in)
	}
}
