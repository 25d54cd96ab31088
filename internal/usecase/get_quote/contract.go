package get_quote

import (
	"context"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
	"github.com/m04kA/SMC-BayBooking/internal/service/basket"
)

// BasketService интерфейс сервиса корзин
type BasketService interface {
	Current(ctx context.Context, userID int64) (*basket.Reconciliation, error)
}

// ProfileServiceClient интерфейс клиента для ProfileService
type ProfileServiceClient interface {
	GetMembershipWithGracefulDegradation(ctx context.Context, userID int64) (*domain.MembershipContext, error)
}

// Pricer интерфейс движка расчёта цен
type Pricer interface {
	Price(basket domain.Basket, membership *domain.MembershipContext) domain.Quote
}

// MetricsRecorder интерфейс для учёта сумм расчётов
type MetricsRecorder interface {
	RecordQuoteTotal(total float64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
