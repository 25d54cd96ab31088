package sessions

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
)

// KeyMode определяет, как сессии группируются для отображения
type KeyMode int

const (
	// KeyByRange группирует по диапазону "HH:mm-HH:mm"
	KeyByRange KeyMode = iota
	// KeyByStart группирует только по времени начала "HH:mm" (режим одиночных слотов)
	KeyByStart
)

// Options параметры сборки сессий
type Options struct {
	SessionLength int              // Количество атомарных слотов в сессии, >= 1
	Bay           domain.BayFilter // domain.AnyBay - все боксы
	Mode          KeyMode
	Changeover    time.Duration  // Перерыв между слотами, 0 - domain.DefaultChangeover
	Location      *time.Location // Часовой пояс для ключей отображения, nil - UTC
}

// Assembly результат сборки: сессии, сгруппированные по отображаемому временному диапазону
type Assembly struct {
	Keys  []string // Ключи в хронологическом порядке
	ByKey map[string][]domain.Session
}

// Len возвращает общее количество собранных сессий
func (a *Assembly) Len() int {
	total := 0
	for _, sessions := range a.ByKey {
		total += len(sessions)
	}
	return total
}

// Assemble собирает из атомарных слотов все допустимые сессии заданной длины
//
// Окно длиной SessionLength скользит по отсортированным слотам каждого бокса с шагом 1,
// поэтому окна могут перекрываться: из трёх подряд идущих слотов при длине 2
// получится две сессии (10:00-12:00 и 11:00-13:00).
//
// Корзина здесь не учитывается - исключение уже выбранных слотов делает вызывающий код (см. MarkBasket).
// SessionLength < 1 - ошибка программиста, функция паникует.
func Assemble(slots []domain.AtomicSlot, opts Options) *Assembly {
	if opts.SessionLength < 1 {
		panic(fmt.Sprintf("sessions: session length must be positive, got %d", opts.SessionLength))
	}

	changeover := opts.Changeover
	if changeover == 0 {
		changeover = domain.DefaultChangeover
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	// Шаг 1: оставляем только свободные слоты подходящих боксов
	filtered := make([]domain.AtomicSlot, 0, len(slots))
	for _, slot := range slots {
		if !slot.IsAvailable() || !opts.Bay.Matches(slot.BayID) {
			continue
		}
		filtered = append(filtered, slot)
	}

	// Шаги 2-3: сортировка и разбиение по боксам
	groups := GroupByBay(filtered)

	result := &Assembly{
		Keys:  make([]string, 0),
		ByKey: make(map[string][]domain.Session),
	}

	keyStarts := make(map[string]time.Time)

	// Шаг 4: скользящее окно по каждому боксу
	for _, bayID := range groups.Order {
		bay := groups.ByBay[bayID]
		for i := 0; i+opts.SessionLength <= len(bay); i++ {
			window := bay[i : i+opts.SessionLength]
			if !isContinuousRun(window, changeover) {
				continue
			}

			session := newSession(window)
			key := displayKey(session, opts.Mode, changeover, loc)

			if _, ok := result.ByKey[key]; !ok {
				result.Keys = append(result.Keys, key)
				keyStarts[key] = session.StartTime
			}
			result.ByKey[key] = append(result.ByKey[key], session)
		}
	}

	// Шаг 5: ключи в порядке времени начала, внутри ключа сессии остаются в порядке боксов
	sort.SliceStable(result.Keys, func(i, j int) bool {
		return keyStarts[result.Keys[i]].Before(keyStarts[result.Keys[j]])
	})

	return result
}

// newSession создаёт сессию из непрерывного окна слотов
func newSession(window []domain.AtomicSlot) domain.Session {
	slotIDs := make([]int64, len(window))
	for i, slot := range window {
		slotIDs[i] = slot.ID
	}

	first := window[0]
	last := window[len(window)-1]

	return domain.Session{
		ID:        first.ID,
		BayID:     first.BayID,
		StartTime: first.StartTime,
		EndTime:   last.EndTime,
		SlotIDs:   slotIDs,
	}
}

// displayKey формирует ключ группы для отображения
// Конец диапазона показывается с учётом перерыва: 10:00-11:55 отображается как 10:00-12:00
func displayKey(session domain.Session, mode KeyMode, changeover time.Duration, loc *time.Location) string {
	start := session.StartTime.In(loc).Format(domain.TimeFormat)
	if mode == KeyByStart {
		return start
	}
	end := session.EndTime.Add(changeover).In(loc).Format(domain.TimeFormat)
	return start + "-" + end
}
