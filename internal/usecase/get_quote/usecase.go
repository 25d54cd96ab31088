package get_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BayBooking/internal/integrations/profileservice"
	"github.com/m04kA/SMC-BayBooking/internal/service/basket"
)

// UseCase use case для расчёта стоимости корзины
type UseCase struct {
	basketService BasketService
	profileClient ProfileServiceClient
	pricer        Pricer
	metrics       MetricsRecorder
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	basketService BasketService,
	profileClient ProfileServiceClient,
	pricer Pricer,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		basketService: basketService,
		profileClient: profileClient,
		pricer:        pricer,
		metrics:       metrics,
		logger:        logger,
	}
}

// Execute выполняет use case расчёта стоимости корзины
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetQuote: user=%d", req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Актуальная корзина без истёкших сессий
	current, err := uc.basketService.Current(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, basket.ErrCorruptBasketData) {
			uc.logger.Warn("GetQuote: basket of user=%d is corrupt: %v", req.UserID, err)
			return nil, fmt.Errorf("%w: %v", ErrCorruptBasket, err)
		}
		uc.logger.Error("GetQuote: failed to load basket of user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to load basket: %v", ErrInternal, err)
	}

	// 3. Членство пользователя (graceful degradation: при недоступности сервиса - цена гостя)
	degraded := false
	membership, err := uc.profileClient.GetMembershipWithGracefulDegradation(ctx, req.UserID)
	if err != nil {
		if !errors.Is(err, profileservice.ErrServiceDegraded) {
			uc.logger.Error("GetQuote: failed to get membership of user=%d: %v", req.UserID, err)
			return nil, fmt.Errorf("%w: failed to get membership: %v", ErrInternal, err)
		}
		uc.logger.Warn("GetQuote: pricing user=%d as guest: %v", req.UserID, err)
		membership = nil
		degraded = true
	}

	// 4. Расчёт
	quote := uc.pricer.Price(current.Basket, membership)
	if uc.metrics != nil {
		uc.metrics.RecordQuoteTotal(quote.Total.InexactFloat64())
	}

	uc.logger.Info("GetQuote: user=%d, sessions=%d, total=%s, vat=%s, included_hours_used=%d",
		req.UserID, len(current.Basket), quote.Total.StringFixed(2), quote.VAT.StringFixed(2), quote.IncludedHoursUsed)

	return &Response{
		Basket:       current.Basket,
		Quote:        quote,
		Membership:   membership,
		RemovedCount: current.RemovedCount,
		Guest:        !membership.IsActive(),
		Degraded:     degraded,
	}, nil
}
