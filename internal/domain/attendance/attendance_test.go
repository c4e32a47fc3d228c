package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordNormalizesDate(t *testing.T) {
	marked := time.Date(2026, 3, 9, 14, 35, 12, 0, time.Local)
	rec, err := NewRecord(4, "10", "A", marked, StatusPresent, "", 2)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), rec.Date)
}

func TestNewRecordValidation(t *testing.T) {
	date := time.Now()

	_, err := NewRecord(0, "10", "A", date, StatusPresent, "", 2)
	assert.Error(t, err)

	_, err = NewRecord(4, "10", "A", date, Status("sleeping"), "", 2)
	assert.Error(t, err)

	_, err = NewRecord(4, "10", "A", date, StatusPresent, "", 0)
	assert.Error(t, err)

	_, err = NewRecord(4, "10", "A", time.Time{}, StatusPresent, "", 2)
	assert.Error(t, err)
}

func TestSummaryAttendedPercent(t *testing.T) {
	s := Summary{Present: 16, Absent: 3, Late: 1, Excused: 2}

	assert.Equal(t, 22, s.Total())
	assert.InDelta(t, 85.0, s.AttendedPercent(), 0.001)
}

func TestSummaryAttendedPercentEmpty(t *testing.T) {
	assert.Zero(t, Summary{}.AttendedPercent())
	assert.Zero(t, Summary{Excused: 5}.AttendedPercent())
}
