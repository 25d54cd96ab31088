package get_basket

import (
	"context"

	"github.com/m04kA/SMC-BayBooking/internal/service/basket"
)

type BasketService interface {
	Current(ctx context.Context, userID int64) (*basket.Reconciliation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
