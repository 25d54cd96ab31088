package remove_from_basket

import (
	"context"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
)

type BasketService interface {
	Remove(ctx context.Context, userID int64, sessionID int64) (domain.Basket, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
