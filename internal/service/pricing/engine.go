package pricing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Rates тарифы и правила скидок
type Rates struct {
	PeakRate      decimal.Decimal // За час в пиковое время
	OffPeakRate   decimal.Decimal // За час вне пика
	PeakStartHour int             // С этого часа (локального) время считается пиковым
	VATRate       decimal.Decimal // Доля НДС внутри итоговой суммы
	Discounts     map[domain.MembershipTier]int

	// ChronologicalAllocation распределяет включённые часы по времени начала сессий,
	// а не в порядке добавления в корзину
	ChronologicalAllocation bool
}

// DefaultRates возвращает тарифы по умолчанию
func DefaultRates() Rates {
	discounts := make(map[domain.MembershipTier]int, len(domain.DefaultDiscounts))
	for tier, percent := range domain.DefaultDiscounts {
		discounts[tier] = percent
	}

	return Rates{
		PeakRate:      decimal.RequireFromString(domain.DefaultPeakRate),
		OffPeakRate:   decimal.RequireFromString(domain.DefaultOffPeakRate),
		PeakStartHour: domain.DefaultPeakStartHour,
		VATRate:       decimal.RequireFromString(domain.DefaultVATRate),
		Discounts:     discounts,
	}
}

// Engine считает стоимость корзины
// Не хранит состояния между вызовами: повторный вызов на тех же данных даёт тот же результат
type Engine struct {
	rates    Rates
	location *time.Location
}

// NewEngine создает новый экземпляр движка расчёта цен
func NewEngine(rates Rates, location *time.Location) *Engine {
	if location == nil {
		location = time.UTC
	}
	return &Engine{
		rates:    rates,
		location: location,
	}
}

// IsPeak returns true if the session start falls on a weekend or at or after the peak start hour
func (e *Engine) IsPeak(start time.Time) bool {
	local := start.In(e.location)
	return isWeekend(local) || local.Hour() >= e.rates.PeakStartHour
}

// BaseRate returns the hourly rate before any discount
func (e *Engine) BaseRate(start time.Time) decimal.Decimal {
	if e.IsPeak(start) {
		return e.rates.PeakRate
	}
	return e.rates.OffPeakRate
}

// DiscountPercent returns the percentage discount for the tier, 0 for NONE and unknown tiers
func (e *Engine) DiscountPercent(tier domain.MembershipTier) int {
	if tier == domain.TierNone {
		return 0
	}
	return e.rates.Discounts[tier]
}

// Price считает стоимость корзины с учётом членства
//
// Для гостя (membership == nil) и неактивного членства - базовый тариф × количество часов.
// Для активного членства:
//  1. к базовому тарифу применяется процентная скидка уровня;
//  2. включённые часы списываются по сессиям в порядке корзины (кто первый добавлен - тот первый
//     получает бесплатные часы), остаток не уходит в минус;
//  3. уровень PAR не списывает включённые часы на сессии в субботу и воскресенье,
//     но скидка на них действует.
//
// Итог включает НДС: VAT = Subtotal × VATRate показывается справочно, Total = Subtotal.
func (e *Engine) Price(basket domain.Basket, membership *domain.MembershipContext) domain.Quote {
	tier := membership.EffectiveTier()
	discount := e.DiscountPercent(tier)
	remaining := membership.IncludedHours()

	sessions := e.allocationOrder(basket)

	quote := domain.Quote{
		Lines:    make([]domain.PriceLine, 0, len(sessions)),
		Subtotal: decimal.Zero,
	}

	for _, session := range sessions {
		hours := session.Hours()
		baseRate := e.BaseRate(session.StartTime)
		discountedRate := applyDiscount(baseRate, discount)

		freeHours := 0
		if membership.IsActive() {
			freeHours = min(remaining, e.eligibleHours(tier, session))
			remaining -= freeHours
		}
		paidHours := hours - freeHours

		line := domain.PriceLine{
			SessionID:       session.ID,
			BayID:           session.BayID,
			StartTime:       session.StartTime,
			Hours:           hours,
			Peak:            e.IsPeak(session.StartTime),
			BaseRate:        baseRate,
			DiscountPercent: discount,
			DiscountedRate:  discountedRate,
			FreeHours:       freeHours,
			PaidHours:       paidHours,
			LineTotal:       discountedRate.Mul(decimal.NewFromInt(int64(paidHours))).Round(2),
		}

		quote.Lines = append(quote.Lines, line)
		quote.Subtotal = quote.Subtotal.Add(line.LineTotal)
		quote.IncludedHoursUsed += freeHours
	}

	quote.VAT = quote.Subtotal.Mul(e.rates.VATRate).Round(2)
	quote.Total = quote.Subtotal
	quote.IncludedHoursRemaining = remaining

	return quote
}

// eligibleHours количество часов сессии, на которые можно списать включённые часы
func (e *Engine) eligibleHours(tier domain.MembershipTier, session domain.Session) int {
	if tier == domain.TierPar && isWeekend(session.StartTime.In(e.location)) {
		return 0
	}
	return session.Hours()
}

// allocationOrder возвращает порядок обхода корзины
// Исходная корзина не изменяется
func (e *Engine) allocationOrder(basket domain.Basket) []domain.Session {
	sessions := make([]domain.Session, len(basket))
	copy(sessions, basket)

	if e.rates.ChronologicalAllocation {
		sort.SliceStable(sessions, func(i, j int) bool {
			return sessions[i].StartTime.Before(sessions[j].StartTime)
		})
	}

	return sessions
}

// applyDiscount применяет процентную скидку к тарифу
func applyDiscount(rate decimal.Decimal, percent int) decimal.Decimal {
	if percent <= 0 {
		return rate
	}
	factor := hundred.Sub(decimal.NewFromInt(int64(percent))).Div(hundred)
	return rate.Mul(factor).Round(2)
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}
