package sessions

import (
	"time"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
)

// DayRange возвращает границы календарного дня [00:00, 24:00) в часовом поясе площадки
// Учитывает переход на летнее время: длина дня может быть 23 или 25 часов
func DayRange(date time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := date.In(loc).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// IsDateInPast проверяет, что день date в часовом поясе loc раньше сегодняшнего
func IsDateInPast(date, now time.Time, loc *time.Location) bool {
	day, _ := DayRange(date, loc)
	today, _ := DayRange(now, loc)
	return day.Before(today)
}

// StartingAfter оставляет только слоты, начинающиеся строго после now
// Уже начавшиеся слоты нельзя положить в корзину, поэтому они не собираются в сессии
func StartingAfter(slots []domain.AtomicSlot, now time.Time) []domain.AtomicSlot {
	result := make([]domain.AtomicSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.StartTime.After(now) {
			result = append(result, slot)
		}
	}
	return result
}
