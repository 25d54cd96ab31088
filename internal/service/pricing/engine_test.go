package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
)

// 2026-03-04 - среда, 2026-03-07 - суббота
var (
	wednesday = time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	saturday  = time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
)

func sessionAt(id int64, day time.Time, hour, hours int) domain.Session {
	start := day.Add(time.Duration(hour) * time.Hour)
	slotIDs := make([]int64, hours)
	for i := range slotIDs {
		slotIDs[i] = id + int64(i)
	}
	return domain.Session{
		ID:        id,
		BayID:     1,
		StartTime: start,
		EndTime:   start.Add(time.Duration(hours)*time.Hour - 5*time.Minute),
		SlotIDs:   slotIDs,
	}
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func assertMoney(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(t, expected).Equal(actual), "expected %s, got %s", expected, actual.StringFixed(2))
}

func newTestEngine() *Engine {
	return NewEngine(DefaultRates(), time.UTC)
}

func TestIsPeak(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name  string
		start time.Time
		peak  bool
	}{
		{name: "weekday morning", start: wednesday.Add(10 * time.Hour), peak: false},
		{name: "weekday 16:00", start: wednesday.Add(16 * time.Hour), peak: false},
		{name: "weekday 17:00", start: wednesday.Add(17 * time.Hour), peak: true},
		{name: "saturday morning", start: saturday.Add(9 * time.Hour), peak: true},
		{name: "sunday morning", start: saturday.Add(24*time.Hour + 9*time.Hour), peak: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.peak, engine.IsPeak(tt.start))
		})
	}
}

func TestIsPeak_UsesLocation(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)
	engine := NewEngine(DefaultRates(), london)

	// 16:30 UTC в июле - это 17:30 в Лондоне
	start := time.Date(2026, 7, 1, 16, 30, 0, 0, time.UTC)
	assert.True(t, engine.IsPeak(start))
}

func TestDiscountPercent(t *testing.T) {
	engine := newTestEngine()

	assert.Equal(t, 0, engine.DiscountPercent(domain.TierNone))
	assert.Equal(t, 10, engine.DiscountPercent(domain.TierPar))
	assert.Equal(t, 15, engine.DiscountPercent(domain.TierBirdie))
	assert.Equal(t, 20, engine.DiscountPercent(domain.TierHoleInOne))
	assert.Equal(t, 0, engine.DiscountPercent(domain.MembershipTier("EAGLE")))
}

func TestPrice_Guest(t *testing.T) {
	engine := newTestEngine()
	basket := domain.Basket{sessionAt(1, wednesday, 10, 2)}

	quote := engine.Price(basket, nil)

	require.Len(t, quote.Lines, 1)
	assertMoney(t, "70.00", quote.Subtotal)
	assertMoney(t, "14.00", quote.VAT)
	assertMoney(t, "70.00", quote.Total)
	assert.Equal(t, 0, quote.Lines[0].FreeHours)
	assert.Equal(t, 2, quote.Lines[0].PaidHours)
	assert.False(t, quote.Lines[0].Peak)
}

func TestPrice_GuestPeak(t *testing.T) {
	engine := newTestEngine()
	basket := domain.Basket{sessionAt(1, wednesday, 18, 1)}

	quote := engine.Price(basket, nil)

	assertMoney(t, "45.00", quote.Total)
	assert.True(t, quote.Lines[0].Peak)
}

func TestPrice_InactiveMembershipIsGuest(t *testing.T) {
	engine := newTestEngine()
	basket := domain.Basket{sessionAt(1, wednesday, 10, 2)}
	membership := &domain.MembershipContext{
		Tier:           domain.TierHoleInOne,
		Status:         domain.MembershipCancelled,
		RemainingHours: 10,
	}

	quote := engine.Price(basket, membership)

	assertMoney(t, "70.00", quote.Total)
	assert.Equal(t, 0, quote.Lines[0].DiscountPercent)
	assert.Equal(t, 0, quote.IncludedHoursUsed)
}

func TestPrice_ParWeekendNotDeducted(t *testing.T) {
	engine := newTestEngine()
	basket := domain.Basket{
		sessionAt(1, wednesday, 10, 2),
		sessionAt(10, saturday, 10, 1),
	}
	membership := &domain.MembershipContext{
		Tier:           domain.TierPar,
		Status:         domain.MembershipActive,
		RemainingHours: 1,
	}

	quote := engine.Price(basket, membership)

	require.Len(t, quote.Lines, 2)

	weekday := quote.Lines[0]
	assert.Equal(t, 1, weekday.FreeHours)
	assert.Equal(t, 1, weekday.PaidHours)
	assertMoney(t, "31.50", weekday.DiscountedRate)
	assertMoney(t, "31.50", weekday.LineTotal)

	weekend := quote.Lines[1]
	assert.Equal(t, 0, weekend.FreeHours)
	assert.Equal(t, 1, weekend.PaidHours)
	assert.True(t, weekend.Peak)
	assertMoney(t, "40.50", weekend.LineTotal)

	assert.Equal(t, 1, quote.IncludedHoursUsed)
	assert.Equal(t, 0, quote.IncludedHoursRemaining)
	assertMoney(t, "72.00", quote.Subtotal)
	assertMoney(t, "14.40", quote.VAT)
	assertMoney(t, "72.00", quote.Total)
}

func TestPrice_ParWeekendStillDiscountedWithSpareHours(t *testing.T) {
	engine := newTestEngine()
	basket := domain.Basket{sessionAt(1, saturday, 10, 2)}
	membership := &domain.MembershipContext{
		Tier:           domain.TierPar,
		Status:         domain.MembershipActive,
		RemainingHours: 5,
	}

	quote := engine.Price(basket, membership)

	assert.Equal(t, 0, quote.Lines[0].FreeHours)
	assertMoney(t, "81.00", quote.Total)
	assert.Equal(t, 5, quote.IncludedHoursRemaining)
}

func TestPrice_BirdieWeekendDeducted(t *testing.T) {
	engine := newTestEngine()
	basket := domain.Basket{sessionAt(1, saturday, 10, 2)}
	membership := &domain.MembershipContext{
		Tier:           domain.TierBirdie,
		Status:         domain.MembershipActive,
		RemainingHours: 5,
	}

	quote := engine.Price(basket, membership)

	assert.Equal(t, 2, quote.Lines[0].FreeHours)
	assert.True(t, quote.IsFree())
	assert.Equal(t, 3, quote.IncludedHoursRemaining)
}

func TestPrice_BasketOrderAllocation(t *testing.T) {
	engine := newTestEngine()
	membership := &domain.MembershipContext{
		Tier:           domain.TierHoleInOne,
		Status:         domain.MembershipActive,
		RemainingHours: 1,
	}
	offPeak := sessionAt(1, wednesday, 10, 1)
	peak := sessionAt(2, wednesday, 18, 1)

	peakFirst := engine.Price(domain.Basket{peak, offPeak}, membership)
	offPeakFirst := engine.Price(domain.Basket{offPeak, peak}, membership)

	// Бесплатный час достаётся первой сессии корзины
	assertMoney(t, "28.00", peakFirst.Total)
	assertMoney(t, "36.00", offPeakFirst.Total)
}

func TestPrice_ChronologicalAllocation(t *testing.T) {
	rates := DefaultRates()
	rates.ChronologicalAllocation = true
	engine := NewEngine(rates, time.UTC)
	membership := &domain.MembershipContext{
		Tier:           domain.TierHoleInOne,
		Status:         domain.MembershipActive,
		RemainingHours: 1,
	}
	basket := domain.Basket{sessionAt(2, wednesday, 18, 1), sessionAt(1, wednesday, 10, 1)}

	quote := engine.Price(basket, membership)

	assertMoney(t, "36.00", quote.Total)
	assert.Equal(t, int64(2), basket[0].ID, "basket must not be reordered")
}

func TestPrice_AllowanceFloor(t *testing.T) {
	engine := newTestEngine()
	basket := domain.Basket{
		sessionAt(1, wednesday, 9, 3),
		sessionAt(10, wednesday, 13, 3),
		sessionAt(20, wednesday, 18, 2),
	}

	for _, remaining := range []int{-3, 0, 1, 4, 100} {
		membership := &domain.MembershipContext{
			Tier:           domain.TierBirdie,
			Status:         domain.MembershipActive,
			RemainingHours: remaining,
		}

		quote := engine.Price(basket, membership)

		assert.GreaterOrEqual(t, quote.IncludedHoursRemaining, 0, "remaining=%d", remaining)
		assert.LessOrEqual(t, quote.IncludedHoursUsed, basket.TotalHours())
		for _, line := range quote.Lines {
			assert.GreaterOrEqual(t, line.PaidHours, 0)
			assert.Equal(t, line.Hours, line.FreeHours+line.PaidHours)
		}
	}
}

func TestPrice_Idempotent(t *testing.T) {
	engine := newTestEngine()
	basket := domain.Basket{sessionAt(1, wednesday, 10, 2), sessionAt(10, saturday, 12, 1)}
	membership := &domain.MembershipContext{
		Tier:           domain.TierPar,
		Status:         domain.MembershipActive,
		RemainingHours: 2,
	}

	first := engine.Price(basket, membership)
	second := engine.Price(basket, membership)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, membership.RemainingHours)
}

func TestPrice_VATIdentity(t *testing.T) {
	engine := newTestEngine()
	basket := domain.Basket{sessionAt(1, wednesday, 10, 3), sessionAt(10, wednesday, 19, 1)}
	membership := &domain.MembershipContext{Tier: domain.TierBirdie, Status: domain.MembershipActive}

	quote := engine.Price(basket, membership)

	assert.True(t, quote.Total.Equal(quote.Subtotal))
	assert.True(t, quote.Subtotal.Mul(dec(t, "0.20")).Round(2).Equal(quote.VAT))
}

func TestPrice_EmptyBasket(t *testing.T) {
	quote := newTestEngine().Price(nil, nil)

	assert.Empty(t, quote.Lines)
	assert.True(t, quote.IsFree())
	assert.True(t, quote.VAT.IsZero())
}
