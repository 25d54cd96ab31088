package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
)

func TestDayRange(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	// 2026-03-29 - переход на летнее время, в сутках 23 часа
	start, end := DayRange(time.Date(2026, 3, 29, 15, 0, 0, 0, time.UTC), london)

	assert.Equal(t, time.Date(2026, 3, 29, 0, 0, 0, 0, london), start)
	assert.Equal(t, 23*time.Hour, end.Sub(start))
}

func TestDayRange_NilLocation(t *testing.T) {
	start, end := DayRange(testDay.Add(13*time.Hour), nil)

	assert.Equal(t, testDay, start)
	assert.Equal(t, testDay.Add(24*time.Hour), end)
}

func TestIsDateInPast(t *testing.T) {
	now := testDay.Add(15 * time.Hour)

	assert.False(t, IsDateInPast(testDay, now, time.UTC))
	assert.False(t, IsDateInPast(testDay.AddDate(0, 0, 1), now, time.UTC))
	assert.True(t, IsDateInPast(testDay.AddDate(0, 0, -1), now, time.UTC))
}

func TestStartingAfter(t *testing.T) {
	slots := []domain.AtomicSlot{slotAt(1, 1, 9), slotAt(2, 1, 10), slotAt(3, 1, 11)}

	result := StartingAfter(slots, testDay.Add(10*time.Hour))

	require.Len(t, result, 1)
	assert.Equal(t, int64(3), result[0].ID)
}
