package basket

import (
	"time"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
)

// storedSession формат сессии в хранилище (JSON массив под ключом корзины)
// InBasket не сохраняется - он вычисляется при отображении
type storedSession struct {
	ID        int64     `json:"id"`
	BayID     int64     `json:"bayId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	SlotIDs   []int64   `json:"slotIds"`
}

// Reconciliation результат удаления истёкших сессий
type Reconciliation struct {
	Basket       domain.Basket
	RemovedCount int // Сколько сессий удалено, чтобы показать пользователю уведомление
}

func toStored(basket domain.Basket) []storedSession {
	stored := make([]storedSession, len(basket))
	for i, s := range basket {
		stored[i] = storedSession{
			ID:        s.ID,
			BayID:     s.BayID,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			SlotIDs:   s.SlotIDs,
		}
	}
	return stored
}

func fromStored(stored []storedSession) domain.Basket {
	basket := make(domain.Basket, len(stored))
	for i, s := range stored {
		basket[i] = domain.Session{
			ID:        s.ID,
			BayID:     s.BayID,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			SlotIDs:   s.SlotIDs,
		}
	}
	return basket
}
