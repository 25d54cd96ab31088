package slotservice

import (
	"time"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
)

// Slot модель слота из SlotService
type Slot struct {
	ID        int64     `json:"id"`
	BayID     int64     `json:"bayId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
}

// ToDomain преобразует слот в доменную модель
func (s Slot) ToDomain() domain.AtomicSlot {
	return domain.AtomicSlot{
		ID:        s.ID,
		BayID:     s.BayID,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Status:    domain.SlotStatus(s.Status),
	}
}
