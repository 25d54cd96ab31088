package get_sessions

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
	"github.com/m04kA/SMC-BayBooking/internal/service/basket"
	"github.com/m04kA/SMC-BayBooking/internal/service/sessions"
)

// UseCase use case для получения сессий, доступных для выбора
type UseCase struct {
	slotSource    SlotSource
	basketService BasketService
	metrics       MetricsRecorder
	settings      Settings
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	slotSource SlotSource,
	basketService BasketService,
	metrics MetricsRecorder,
	settings Settings,
	logger Logger,
) *UseCase {
	if settings.MaxSessionLength < 1 {
		settings.MaxSessionLength = domain.MaxSessionLength
	}
	return &UseCase{
		slotSource:    slotSource,
		basketService: basketService,
		metrics:       metrics,
		settings:      settings,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения сессий
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSessions: user=%d, date=%s, length=%d, bay=%s",
		req.UserID, req.Date.Format(domain.DateFormat), req.SessionLength, bayString(req.Bay))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.settings.MaxSessionLength); err != nil {
		uc.logger.Warn("GetSessions: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if sessions.IsDateInPast(req.Date, now, uc.settings.Location) {
		uc.logger.Warn("GetSessions: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: %s is in the past", ErrInvalidDate, req.Date.Format(domain.DateFormat))
	}

	// 3. Получаем слоты всех боксов на день
	from, to := sessions.DayRange(req.Date, uc.settings.Location)
	slots, err := uc.slotSource.FetchSlots(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetSessions: failed to fetch slots: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch slots: %v", ErrInternal, err)
	}

	// 4. Собираем сессии из слотов, которые ещё не начались
	mode := sessions.KeyByRange
	if req.StartOnlyKeys {
		mode = sessions.KeyByStart
	}
	assembly := sessions.Assemble(sessions.StartingAfter(slots, now), sessions.Options{
		SessionLength: req.SessionLength,
		Bay:           req.Bay,
		Mode:          mode,
		Changeover:    uc.settings.Changeover,
		Location:      uc.settings.Location,
	})
	if uc.metrics != nil {
		uc.metrics.RecordSessionsAssembled(strconv.Itoa(req.SessionLength), assembly.Len())
	}

	// 5. Отмечаем сессии из корзины пользователя
	current := &basket.Reconciliation{Basket: domain.Basket{}}
	if req.UserID > 0 {
		current, err = uc.basketService.Current(ctx, req.UserID)
		if err != nil {
			if errors.Is(err, basket.ErrCorruptBasketData) {
				uc.logger.Warn("GetSessions: basket of user=%d is corrupt: %v", req.UserID, err)
				return nil, fmt.Errorf("%w: %v", ErrCorruptBasket, err)
			}
			uc.logger.Error("GetSessions: failed to load basket of user=%d: %v", req.UserID, err)
			return nil, fmt.Errorf("%w: failed to load basket: %v", ErrInternal, err)
		}
	}

	marked := sessions.MarkBasket(assembly, current.Basket)

	uc.logger.Info("GetSessions: assembled %d sessions in %d groups from %d slots, date=%s",
		assembly.Len(), len(marked), len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:          from,
		SessionLength: req.SessionLength,
		Groups:        toGroups(marked),
		RemovedCount:  current.RemovedCount,
	}, nil
}

func toGroups(marked []sessions.KeyAvailability) []Group {
	groups := make([]Group, 0, len(marked))
	for _, item := range marked {
		group := Group{
			Key:           item.Key,
			Sessions:      make([]Session, 0, len(item.Sessions)),
			AvailableBays: item.AvailableBays,
			TotalBays:     item.TotalBays,
			Full:          item.IsFull(),
		}
		for _, view := range item.Sessions {
			group.Sessions = append(group.Sessions, Session{
				ID:        view.Session.ID,
				BayID:     view.Session.BayID,
				StartTime: view.Session.StartTime,
				EndTime:   view.Session.EndTime,
				SlotIDs:   view.Session.SlotIDs,
				InBasket:  view.Session.InBasket,
				Available: view.Available,
			})
		}
		groups = append(groups, group)
	}
	return groups
}

func bayString(bay domain.BayFilter) string {
	if bay.Any {
		return "any"
	}
	return strconv.FormatInt(bay.BayID, 10)
}
