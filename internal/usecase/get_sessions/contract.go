package get_sessions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
	"github.com/m04kA/SMC-BayBooking/internal/service/basket"
)

// SlotSource интерфейс источника атомарных слотов
type SlotSource interface {
	FetchSlots(ctx context.Context, from, to time.Time) ([]domain.AtomicSlot, error)
}

// BasketService интерфейс сервиса корзин
type BasketService interface {
	Current(ctx context.Context, userID int64) (*basket.Reconciliation, error)
}

// MetricsRecorder интерфейс для учёта собранных сессий
type MetricsRecorder interface {
	RecordSessionsAssembled(length string, count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
