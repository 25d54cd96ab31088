package basket

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
)

const (
	opLoad      = "load"
	opAdd       = "add"
	opRemove    = "remove"
	opClear     = "clear"
	opReconcile = "reconcile"

	resultOK       = "ok"
	resultRejected = "rejected"
	resultError    = "error"
)

// Ledger корзина одного пользователя, сохраняемая в хранилище ключ-значение под одним ключом
//
// Каждая мутация - это чтение, изменение и запись под мьютексом ключа; возвращается ровно то,
// что было записано. Мьютекс действует только внутри процесса: между процессами,
// пишущими в одно хранилище, действует last-write-wins.
type Ledger struct {
	store        KeyValueStore
	key          string
	mu           sync.Locker
	timeProvider TimeProvider
	recorder     OperationRecorder
	logger       Logger
}

// NewLedger создает корзину, привязанную к ключу хранилища
// recorder может быть nil
func NewLedger(store KeyValueStore, key string, timeProvider TimeProvider, recorder OperationRecorder, logger Logger) *Ledger {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &Ledger{
		store:        store,
		key:          key,
		mu:           &sync.Mutex{},
		timeProvider: timeProvider,
		recorder:     recorder,
		logger:       logger,
	}
}

// Load читает корзину из хранилища
// Отсутствие ключа - пустая корзина. Некорректный JSON - ErrCorruptBasketData:
// испорченная корзина не сбрасывается молча, решение принимает вызывающий код.
func (l *Ledger) Load(ctx context.Context) (domain.Basket, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	basket, err := l.load(ctx)
	if err != nil {
		l.record(opLoad, err)
		return nil, err
	}
	l.record(opLoad, nil)
	return basket, nil
}

// Add добавляет сессию в конец корзины
func (l *Ledger) Add(ctx context.Context, session domain.Session) (domain.Basket, error) {
	l.logger.Info("Basket.Add: key=%s, session=%d, bay=%d, start=%s",
		l.key, session.ID, session.BayID, session.StartTime.Format(time.RFC3339))

	if err := validateSession(session); err != nil {
		l.logger.Warn("Basket.Add: key=%s, session=%d rejected: %v", l.key, session.ID, err)
		l.record(opAdd, err)
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	basket, err := l.load(ctx)
	if err != nil {
		l.record(opAdd, err)
		return nil, err
	}

	if basket.FindByID(session.ID) >= 0 {
		l.logger.Warn("Basket.Add: key=%s, session=%d already selected", l.key, session.ID)
		l.record(opAdd, ErrDuplicateSelection)
		return nil, ErrDuplicateSelection
	}

	now := l.timeProvider.Now()
	if !session.StartsAfter(now) {
		l.logger.Warn("Basket.Add: key=%s, session=%d starts at %s, now=%s",
			l.key, session.ID, session.StartTime.Format(time.RFC3339), now.Format(time.RFC3339))
		l.record(opAdd, ErrPastSlot)
		return nil, ErrPastSlot
	}

	if existing, overlaps := basket.Overlapping(&session); overlaps {
		l.logger.Warn("Basket.Add: key=%s, session=%d overlaps selected session=%d", l.key, session.ID, existing.ID)
		l.record(opAdd, ErrOverlappingSelection)
		return nil, fmt.Errorf("%w: shares a slot with session %d", ErrOverlappingSelection, existing.ID)
	}

	session.InBasket = false
	basket = append(basket, session)

	if err := l.save(ctx, basket); err != nil {
		l.record(opAdd, err)
		return nil, err
	}

	l.logger.Info("Basket.Add: key=%s, session=%d added, basket size=%d", l.key, session.ID, len(basket))
	l.record(opAdd, nil)
	return basket, nil
}

// Remove удаляет сессию по ID, отсутствие сессии ошибкой не считается
func (l *Ledger) Remove(ctx context.Context, sessionID int64) (domain.Basket, error) {
	l.logger.Info("Basket.Remove: key=%s, session=%d", l.key, sessionID)

	l.mu.Lock()
	defer l.mu.Unlock()

	basket, err := l.load(ctx)
	if err != nil {
		l.record(opRemove, err)
		return nil, err
	}

	filtered := make(domain.Basket, 0, len(basket))
	for _, s := range basket {
		if s.ID != sessionID {
			filtered = append(filtered, s)
		}
	}

	if err := l.save(ctx, filtered); err != nil {
		l.record(opRemove, err)
		return nil, err
	}

	l.record(opRemove, nil)
	return filtered, nil
}

// Clear очищает корзину
func (l *Ledger) Clear(ctx context.Context) (domain.Basket, error) {
	l.logger.Info("Basket.Clear: key=%s", l.key)

	l.mu.Lock()
	defer l.mu.Unlock()

	empty := domain.Basket{}
	if err := l.save(ctx, empty); err != nil {
		l.record(opClear, err)
		return nil, err
	}

	l.record(opClear, nil)
	return empty, nil
}

// ReconcileExpired удаляет сессии, время начала которых уже не в будущем относительно now
// Корзина перезаписывается только если что-то было удалено
func (l *Ledger) ReconcileExpired(ctx context.Context, now time.Time) (*Reconciliation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	basket, err := l.load(ctx)
	if err != nil {
		l.record(opReconcile, err)
		return nil, err
	}

	fresh := make(domain.Basket, 0, len(basket))
	for _, s := range basket {
		if s.StartsAfter(now) {
			fresh = append(fresh, s)
		}
	}

	removed := len(basket) - len(fresh)
	if removed > 0 {
		if err := l.save(ctx, fresh); err != nil {
			l.record(opReconcile, err)
			return nil, err
		}
		l.logger.Info("Basket.ReconcileExpired: key=%s, removed %d expired sessions", l.key, removed)
	}

	l.record(opReconcile, nil)
	return &Reconciliation{
		Basket:       fresh,
		RemovedCount: removed,
	}, nil
}

// Current возвращает актуальную корзину без истёкших сессий
// Должен использоваться при каждом чтении корзины в живой сессии пользователя
func (l *Ledger) Current(ctx context.Context) (*Reconciliation, error) {
	return l.ReconcileExpired(ctx, l.timeProvider.Now())
}

func (l *Ledger) load(ctx context.Context) (domain.Basket, error) {
	raw, ok, err := l.store.Get(ctx, l.key)
	if err != nil {
		l.logger.Error("Basket: failed to read key=%s: %v", l.key, err)
		return nil, fmt.Errorf("%w: load - get %s: %v", ErrStorage, l.key, err)
	}
	if !ok {
		return domain.Basket{}, nil
	}

	var stored []storedSession
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		l.logger.Error("Basket: corrupt data under key=%s: %v", l.key, err)
		return nil, fmt.Errorf("%w: key=%s: %v", ErrCorruptBasketData, l.key, err)
	}

	return fromStored(stored), nil
}

func (l *Ledger) save(ctx context.Context, basket domain.Basket) error {
	payload, err := json.Marshal(toStored(basket))
	if err != nil {
		return fmt.Errorf("%w: save - marshal: %v", ErrStorage, err)
	}

	if err := l.store.Set(ctx, l.key, string(payload)); err != nil {
		l.logger.Error("Basket: failed to write key=%s: %v", l.key, err)
		return fmt.Errorf("%w: save - set %s: %v", ErrStorage, l.key, err)
	}
	return nil
}

func (l *Ledger) record(operation string, err error) {
	if l.recorder == nil {
		return
	}
	l.recorder.RecordBasketOperation(operation, resultOf(err))
}

// validateSession проверяет структуру сессии
func validateSession(session domain.Session) error {
	if len(session.SlotIDs) == 0 {
		return fmt.Errorf("%w: no slots", ErrInvalidSession)
	}
	if session.ID != session.SlotIDs[0] {
		return fmt.Errorf("%w: session id must be the id of its first slot", ErrInvalidSession)
	}
	if session.StartTime.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrInvalidSession)
	}
	if !session.EndTime.After(session.StartTime) {
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidSession)
	}

	seen := make(map[int64]struct{}, len(session.SlotIDs))
	for _, id := range session.SlotIDs {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate slot id %d", ErrInvalidSession, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return resultOK
	case isRejection(err):
		return resultRejected
	default:
		return resultError
	}
}
