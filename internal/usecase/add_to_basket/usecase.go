package add_to_basket

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
	"github.com/m04kA/SMC-BayBooking/internal/service/sessions"
)

// UseCase use case для добавления сессии в корзину
//
// Клиент присылает только ID и длину сессии, сама сессия собирается заново из актуальных слотов.
type UseCase struct {
	slotSource    SlotSource
	basketService BasketService
	settings      Settings
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotSource SlotSource, basketService BasketService, settings Settings, logger Logger) *UseCase {
	if settings.MaxSessionLength < 1 {
		settings.MaxSessionLength = domain.MaxSessionLength
	}
	return &UseCase{
		slotSource:    slotSource,
		basketService: basketService,
		settings:      settings,
		logger:        logger,
	}
}

// Execute выполняет use case добавления сессии в корзину
// Ошибки правил корзины (basket.ErrDuplicateSelection, basket.ErrPastSlot и т.д.) возвращаются как есть
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddToBasket: user=%d, session=%d, date=%s, length=%d",
		req.UserID, req.SessionID, req.Date.Format(domain.DateFormat), req.SessionLength)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.settings.MaxSessionLength); err != nil {
		uc.logger.Warn("AddToBasket: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем слоты на день сессии
	from, to := sessions.DayRange(req.Date, uc.settings.Location)
	slots, err := uc.slotSource.FetchSlots(ctx, from, to)
	if err != nil {
		uc.logger.Error("AddToBasket: failed to fetch slots: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch slots: %v", ErrInternal, err)
	}

	// 3. Собираем сессию заново из свободных слотов
	session, ok := findSession(slots, req.SessionID, req.SessionLength, uc.settings)
	if !ok {
		uc.logger.Warn("AddToBasket: session=%d of length %d cannot be assembled on %s",
			req.SessionID, req.SessionLength, req.Date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: session %d", ErrSessionNotAvailable, req.SessionID)
	}

	// 4. Добавляем в корзину
	basket, err := uc.basketService.Add(ctx, req.UserID, session)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("AddToBasket: user=%d, session=%d added, basket size=%d", req.UserID, session.ID, len(basket))

	return &Response{
		Added:  session,
		Basket: basket,
	}, nil
}

// findSession ищет среди собранных сессий сессию, начинающуюся со слота sessionID
func findSession(slots []domain.AtomicSlot, sessionID int64, length int, settings Settings) (domain.Session, bool) {
	var bay domain.BayFilter
	found := false
	for _, slot := range slots {
		if slot.ID == sessionID {
			bay = domain.OnlyBay(slot.BayID)
			found = true
			break
		}
	}
	if !found {
		return domain.Session{}, false
	}

	assembly := sessions.Assemble(slots, sessions.Options{
		SessionLength: length,
		Bay:           bay,
		Changeover:    settings.Changeover,
		Location:      settings.Location,
	})

	for _, key := range assembly.Keys {
		for _, session := range assembly.ByKey[key] {
			if session.ID == sessionID {
				return session, true
			}
		}
	}
	return domain.Session{}, false
}
