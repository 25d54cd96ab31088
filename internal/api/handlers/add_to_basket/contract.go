package add_to_basket

import (
	"context"

	addToBasket "github.com/m04kA/SMC-BayBooking/internal/usecase/add_to_basket"
)

type AddToBasketUseCase interface {
	Execute(ctx context.Context, req *addToBasket.Request) (*addToBasket.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
