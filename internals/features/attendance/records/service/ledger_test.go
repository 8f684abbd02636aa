package service_test

import (
	"testing"

	"absensiku_backend/internals/features/attendance/records/service"
	smodel "absensiku_backend/internals/features/attendance/state/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(teacherID, date string, status smodel.AttendanceStatus) smodel.AttendanceRecord {
	return smodel.AttendanceRecord{
		AttendanceTeacherID: teacherID,
		AttendanceDate:      date,
		AttendanceStatus:    status,
	}
}

func TestUpsertAppendsNewRecords(t *testing.T) {
	ledger := service.Upsert(nil,
		rec("t1", "2024-02-05", smodel.StatusPresent),
		rec("t2", "2024-02-05", smodel.StatusSick),
	)

	require.Len(t, ledger, 2)
	assert.Equal(t, "t12024-02-05", ledger[0].AttendanceID)
}

func TestUpsertSamePairReplacesInPlace(t *testing.T) {
	ledger := service.Upsert(nil, smodel.AttendanceRecord{
		AttendanceTeacherID: "t1",
		AttendanceDate:      "2024-02-05",
		AttendanceStatus:    smodel.StatusPresent,
		AttendanceCheckIn:   "07:00",
		AttendanceCheckOut:  "15:00",
	})
	// tulisan kedua menang utuh, field lama tidak di-merge
	ledger = service.Upsert(ledger, rec("t1", "2024-02-05", smodel.StatusSick))

	require.Len(t, ledger, 1)
	assert.Equal(t, smodel.StatusSick, ledger[0].AttendanceStatus)
	assert.Empty(t, ledger[0].AttendanceCheckIn)
	assert.Empty(t, ledger[0].AttendanceCheckOut)
}

func TestUpsertBulkWithInternalDuplicates(t *testing.T) {
	// batch massal yang mengandung pasangan duplikat tetap menghasilkan satu entri
	ledger := service.Upsert(nil,
		rec("t1", "2024-02-05", smodel.StatusPresent),
		rec("t1", "2024-02-05", smodel.StatusAbsent),
		rec("t1", "2024-02-06", smodel.StatusPresent),
	)

	require.Len(t, ledger, 2)
	assert.Equal(t, smodel.StatusAbsent, ledger[0].AttendanceStatus)
}

func TestUpsertDoesNotMutateInput(t *testing.T) {
	orig := []smodel.AttendanceRecord{rec("t1", "2024-02-05", smodel.StatusPresent)}
	orig[0].AttendanceID = "t12024-02-05"

	_ = service.Upsert(orig, rec("t1", "2024-02-05", smodel.StatusSick))

	assert.Equal(t, smodel.StatusPresent, orig[0].AttendanceStatus)
}

func TestForDate(t *testing.T) {
	ledger := service.Upsert(nil,
		rec("t1", "2024-02-05", smodel.StatusPresent),
		rec("t2", "2024-02-05", smodel.StatusPermit),
		rec("t1", "2024-02-06", smodel.StatusPresent),
	)

	assert.Len(t, service.ForDate(ledger, "2024-02-05"), 2)
	assert.Len(t, service.ForDate(ledger, "2024-02-07"), 0)
}
