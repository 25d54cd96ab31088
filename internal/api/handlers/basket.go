package handlers

import (
	"time"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
)

// SessionResponse модель сессии корзины
type SessionResponse struct {
	ID        int64     `json:"id"`
	BayID     int64     `json:"bayId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	SlotIDs   []int64   `json:"slotIds"`
	Hours     int       `json:"hours"`
}

// BasketResponse модель корзины
type BasketResponse struct {
	Sessions     []SessionResponse `json:"sessions"`
	TotalHours   int               `json:"totalHours"`
	RemovedCount int               `json:"removedCount"` // Сколько истёкших сессий удалено при чтении
}

// FromBasket конвертирует корзину в HTTP модель
func FromBasket(basket domain.Basket, removedCount int) *BasketResponse {
	sessions := make([]SessionResponse, len(basket))
	for i, s := range basket {
		sessions[i] = SessionResponse{
			ID:        s.ID,
			BayID:     s.BayID,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			SlotIDs:   s.SlotIDs,
			Hours:     s.Hours(),
		}
	}
	return &BasketResponse{
		Sessions:     sessions,
		TotalHours:   basket.TotalHours(),
		RemovedCount: removedCount,
	}
}
