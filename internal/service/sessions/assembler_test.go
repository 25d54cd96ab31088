package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
)

var testDay = time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

// slotAt создаёт свободный слот hour:00 - hour:55
func slotAt(id, bayID int64, hour int) domain.AtomicSlot {
	start := testDay.Add(time.Duration(hour) * time.Hour)
	return domain.AtomicSlot{
		ID:        id,
		BayID:     bayID,
		StartTime: start,
		EndTime:   start.Add(55 * time.Minute),
		Status:    domain.SlotStatusAvailable,
	}
}

func rangeOpts(length int) Options {
	return Options{SessionLength: length, Bay: domain.AnyBay, Location: time.UTC}
}

func TestAssemble_TwoHourWindowsOverlap(t *testing.T) {
	slots := []domain.AtomicSlot{
		slotAt(3, 1, 12),
		slotAt(1, 1, 10),
		slotAt(2, 1, 11),
	}

	result := Assemble(slots, rangeOpts(2))

	require.Equal(t, []string{"10:00-12:00", "11:00-13:00"}, result.Keys)

	first := result.ByKey["10:00-12:00"]
	require.Len(t, first, 1)
	assert.Equal(t, int64(1), first[0].ID)
	assert.Equal(t, int64(1), first[0].BayID)
	assert.Equal(t, []int64{1, 2}, first[0].SlotIDs)
	assert.True(t, first[0].StartTime.Equal(slots[1].StartTime))
	assert.True(t, first[0].EndTime.Equal(slots[2].EndTime))

	second := result.ByKey["11:00-13:00"]
	require.Len(t, second, 1)
	assert.Equal(t, int64(2), second[0].ID)
	assert.Equal(t, []int64{2, 3}, second[0].SlotIDs)
}

func TestAssemble_GapBreaksWindow(t *testing.T) {
	slots := []domain.AtomicSlot{
		slotAt(1, 1, 10),
		slotAt(2, 1, 11),
		slotAt(3, 1, 13), // 12:00 занят
		slotAt(4, 1, 14),
	}

	result := Assemble(slots, rangeOpts(2))

	assert.Equal(t, []string{"10:00-12:00", "13:00-15:00"}, result.Keys)
	assert.Equal(t, 2, result.Len())
}

func TestAssemble_NoChangeoverIsNotContinuous(t *testing.T) {
	start := testDay.Add(10 * time.Hour)
	slots := []domain.AtomicSlot{
		{ID: 1, BayID: 1, StartTime: start, EndTime: start.Add(time.Hour), Status: domain.SlotStatusAvailable},
		{ID: 2, BayID: 1, StartTime: start.Add(time.Hour), EndTime: start.Add(2 * time.Hour), Status: domain.SlotStatusAvailable},
	}

	result := Assemble(slots, rangeOpts(2))

	assert.Empty(t, result.Keys)
}

func TestAssemble_ShortBayYieldsNothing(t *testing.T) {
	slots := []domain.AtomicSlot{
		slotAt(1, 1, 10),
		slotAt(2, 1, 11),
		slotAt(5, 2, 10),
	}

	result := Assemble(slots, rangeOpts(2))

	require.Equal(t, []string{"10:00-12:00"}, result.Keys)
	require.Len(t, result.ByKey["10:00-12:00"], 1)
	assert.Equal(t, int64(1), result.ByKey["10:00-12:00"][0].BayID)
}

func TestAssemble_SessionsInBayOrderWithinKey(t *testing.T) {
	slots := []domain.AtomicSlot{
		slotAt(20, 3, 10),
		slotAt(10, 1, 10),
		slotAt(15, 2, 10),
	}

	result := Assemble(slots, rangeOpts(1))

	sessions := result.ByKey["10:00-11:00"]
	require.Len(t, sessions, 3)
	assert.Equal(t, int64(1), sessions[0].BayID)
	assert.Equal(t, int64(2), sessions[1].BayID)
	assert.Equal(t, int64(3), sessions[2].BayID)
}

func TestAssemble_BayFilter(t *testing.T) {
	slots := []domain.AtomicSlot{
		slotAt(1, 1, 10),
		slotAt(2, 2, 10),
	}

	opts := rangeOpts(1)
	opts.Bay = domain.OnlyBay(2)
	result := Assemble(slots, opts)

	require.Len(t, result.ByKey["10:00-11:00"], 1)
	assert.Equal(t, int64(2), result.ByKey["10:00-11:00"][0].BayID)
}

func TestAssemble_SkipsUnavailableSlots(t *testing.T) {
	booked := slotAt(2, 1, 11)
	booked.Status = domain.SlotStatusBooked
	slots := []domain.AtomicSlot{slotAt(1, 1, 10), booked, slotAt(3, 1, 12)}

	result := Assemble(slots, rangeOpts(2))

	assert.Empty(t, result.Keys)
}

func TestAssemble_KeyByStart(t *testing.T) {
	opts := rangeOpts(1)
	opts.Mode = KeyByStart

	result := Assemble([]domain.AtomicSlot{slotAt(1, 1, 9)}, opts)

	assert.Equal(t, []string{"09:00"}, result.Keys)
}

func TestAssemble_KeysUseLocation(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	// В июле Лондон живёт по UTC+1
	start := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	slot := domain.AtomicSlot{ID: 1, BayID: 1, StartTime: start, EndTime: start.Add(55 * time.Minute), Status: domain.SlotStatusAvailable}

	opts := rangeOpts(1)
	opts.Location = london
	result := Assemble([]domain.AtomicSlot{slot}, opts)

	assert.Equal(t, []string{"10:00-11:00"}, result.Keys)
}

func TestAssemble_WindowCountAndContinuity(t *testing.T) {
	slots := make([]domain.AtomicSlot, 0)
	for i, hour := range []int{8, 9, 10, 12, 13, 14, 15, 18} {
		slots = append(slots, slotAt(int64(i+1), 1, hour))
	}

	for k := 1; k <= 4; k++ {
		result := Assemble(slots, rangeOpts(k))
		assert.LessOrEqual(t, result.Len(), len(slots)-k+1, "k=%d", k)

		for _, key := range result.Keys {
			for _, session := range result.ByKey[key] {
				require.Len(t, session.SlotIDs, k)
				byID := make(map[int64]domain.AtomicSlot)
				for _, s := range slots {
					byID[s.ID] = s
				}
				for i := 1; i < len(session.SlotIDs); i++ {
					assert.True(t, IsContinuous(byID[session.SlotIDs[i-1]], byID[session.SlotIDs[i]], domain.DefaultChangeover))
				}
			}
		}
	}

	// 8-9-10 (3 слота), 12-13-14-15 (4 слота), 18 (1 слот)
	assert.Equal(t, 8, Assemble(slots, rangeOpts(1)).Len())
	assert.Equal(t, 5, Assemble(slots, rangeOpts(2)).Len())
	assert.Equal(t, 3, Assemble(slots, rangeOpts(3)).Len())
	assert.Equal(t, 1, Assemble(slots, rangeOpts(4)).Len())
}

func TestAssemble_InvalidLengthPanics(t *testing.T) {
	assert.Panics(t, func() {
		Assemble(nil, rangeOpts(0))
	})
}

func TestGroupByBay_SortedAndIdempotent(t *testing.T) {
	slots := []domain.AtomicSlot{
		slotAt(3, 2, 12),
		slotAt(1, 1, 11),
		slotAt(2, 2, 10),
		slotAt(4, 1, 9),
	}
	original := make([]domain.AtomicSlot, len(slots))
	copy(original, slots)

	first := GroupByBay(slots)
	second := GroupByBay(slots)

	assert.Equal(t, first, second)
	assert.Equal(t, original, slots, "input must not be mutated")
	assert.Equal(t, []int64{1, 2}, first.Order)
	assert.Equal(t, int64(4), first.ByBay[1][0].ID)
	assert.Equal(t, int64(1), first.ByBay[1][1].ID)
	assert.Equal(t, int64(2), first.ByBay[2][0].ID)
	assert.Equal(t, int64(3), first.ByBay[2][1].ID)
}

func TestMarkBasket(t *testing.T) {
	slots := []domain.AtomicSlot{
		slotAt(1, 1, 10),
		slotAt(2, 1, 11),
		slotAt(3, 1, 12),
		slotAt(4, 2, 10),
		slotAt(5, 2, 11),
	}
	assembly := Assemble(slots, rangeOpts(2))

	basket := domain.Basket{assembly.ByKey["10:00-12:00"][0]}

	marked := MarkBasket(assembly, basket)
	require.Len(t, marked, 2)

	first := marked[0]
	assert.Equal(t, "10:00-12:00", first.Key)
	assert.Equal(t, 2, first.TotalBays)
	assert.Equal(t, 1, first.AvailableBays)
	assert.True(t, first.Sessions[0].Session.InBasket)
	assert.False(t, first.Sessions[0].Available)
	assert.True(t, first.Sessions[1].Available)

	// 11:00-13:00 на боксе 1 пересекается со слотом 2 из корзины
	second := marked[1]
	assert.Equal(t, "11:00-13:00", second.Key)
	assert.False(t, second.Sessions[0].Session.InBasket)
	assert.False(t, second.Sessions[0].Available)
	assert.True(t, second.IsFull())
}
