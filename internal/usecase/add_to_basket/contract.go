package add_to_basket

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
)

// SlotSource интерфейс источника атомарных слотов
type SlotSource interface {
	FetchSlots(ctx context.Context, from, to time.Time) ([]domain.AtomicSlot, error)
}

// BasketService интерфейс сервиса корзин
type BasketService interface {
	Add(ctx context.Context, userID int64, session domain.Session) (domain.Basket, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
