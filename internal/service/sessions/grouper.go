package sessions

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
)

// BayGroups слоты, разбитые по боксам
// Order хранит порядок боксов по первому появлению в отсортированном списке слотов
type BayGroups struct {
	Order []int64
	ByBay map[int64][]domain.AtomicSlot
}

// GroupByBay разбивает слоты по боксам, внутри каждого бокса слоты отсортированы по времени начала
// Разрывы между слотами здесь не ищутся - непрерывность проверяется на каждом окне при сборке сессий
// Входной срез не изменяется
func GroupByBay(slots []domain.AtomicSlot) BayGroups {
	sorted := sortByStart(slots)

	groups := BayGroups{
		Order: make([]int64, 0),
		ByBay: make(map[int64][]domain.AtomicSlot),
	}

	for _, slot := range sorted {
		if _, ok := groups.ByBay[slot.BayID]; !ok {
			groups.Order = append(groups.Order, slot.BayID)
		}
		groups.ByBay[slot.BayID] = append(groups.ByBay[slot.BayID], slot)
	}

	return groups
}

// IsContinuous проверяет, что next идёт сразу за prev с учётом перерыва на смену игроков
//
// Примеры (changeover = 5 минут):
// - prev 10:00-10:55, next 11:00-11:55 → непрерывны
// - prev 10:00-10:55, next 12:00-12:55 → разрыв
// - prev 10:00-10:55, next 10:55-11:50 → не непрерывны (нет перерыва)
func IsContinuous(prev, next domain.AtomicSlot, changeover time.Duration) bool {
	return next.StartTime.Equal(prev.EndTime.Add(changeover))
}

// isContinuousRun проверяет все соседние пары в окне
func isContinuousRun(window []domain.AtomicSlot, changeover time.Duration) bool {
	for i := 1; i < len(window); i++ {
		if !IsContinuous(window[i-1], window[i], changeover) {
			return false
		}
	}
	return true
}

// sortByStart возвращает копию слотов, отсортированную по времени начала
// При равном времени порядок определяется ID бокса, затем ID слота
func sortByStart(slots []domain.AtomicSlot) []domain.AtomicSlot {
	sorted := make([]domain.AtomicSlot, len(slots))
	copy(sorted, slots)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.StartTime.Equal(b.StartTime) {
			return a.StartTime.Before(b.StartTime)
		}
		if a.BayID != b.BayID {
			return a.BayID < b.BayID
		}
		return a.ID < b.ID
	})

	return sorted
}
