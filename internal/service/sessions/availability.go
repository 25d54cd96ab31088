package sessions

import "github.com/m04kA/SMC-BayBooking/internal/domain"

// SessionView сессия с признаками для отображения
type SessionView struct {
	Session   domain.Session
	Available bool // Не пересекается по слотам ни с одной сессией корзины
}

// KeyAvailability доступность одного временного диапазона
type KeyAvailability struct {
	Key           string
	Sessions      []SessionView
	AvailableBays int // Количество боксов, которые ещё можно выбрать
	TotalBays     int // Общее количество боксов с сессией в этом диапазоне
}

// IsFull возвращает true, если в диапазоне не осталось доступных боксов
func (k *KeyAvailability) IsFull() bool {
	return k.AvailableBays <= 0
}

// MarkBasket сопоставляет собранные сессии с корзиной пользователя
// InBasket выставляется, если в корзине есть сессия с тем же ID
// Сессия считается доступной, только если ни один её слот не выбран в корзине
func MarkBasket(assembly *Assembly, basket domain.Basket) []KeyAvailability {
	result := make([]KeyAvailability, 0, len(assembly.Keys))

	for _, key := range assembly.Keys {
		sessions := assembly.ByKey[key]
		item := KeyAvailability{
			Key:       key,
			Sessions:  make([]SessionView, len(sessions)),
			TotalBays: len(sessions),
		}

		for i, session := range sessions {
			session.InBasket = basket.FindByID(session.ID) >= 0
			_, overlaps := basket.Overlapping(&session)

			item.Sessions[i] = SessionView{
				Session:   session,
				Available: !overlaps,
			}
			if !overlaps {
				item.AvailableBays++
			}
		}

		result = append(result, item)
	}

	return result
}
