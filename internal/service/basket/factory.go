package basket

import (
	"fmt"
	"sync"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
)

// Factory создаёт корзины пользователей поверх общего хранилища
type Factory struct {
	store        KeyValueStore
	timeProvider TimeProvider
	recorder     OperationRecorder
	logger       Logger

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex // мьютекс на ключ хранилища
}

// NewFactory создает новый экземпляр фабрики корзин
// recorder может быть nil
func NewFactory(store KeyValueStore, recorder OperationRecorder, logger Logger) *Factory {
	return &Factory{
		store:        store,
		timeProvider: &RealTimeProvider{},
		recorder:     recorder,
		logger:       logger,
		locks:        make(map[string]*sync.Mutex),
	}
}

// ForUser возвращает корзину пользователя
// Все корзины одного пользователя, созданные фабрикой, делят один мьютекс
func (f *Factory) ForUser(userID int64) *Ledger {
	key := StorageKey(userID)
	ledger := NewLedger(f.store, key, f.timeProvider, f.recorder, f.logger)
	ledger.mu = f.lockFor(key)
	return ledger
}

func (f *Factory) lockFor(key string) *sync.Mutex {
	f.locksMu.Lock()
	defer f.locksMu.Unlock()

	lock, ok := f.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		f.locks[key] = lock
	}
	return lock
}

// StorageKey возвращает ключ хранилища корзины пользователя
func StorageKey(userID int64) string {
	return fmt.Sprintf("%s:%d", domain.BasketKeyPrefix, userID)
}
