package basket

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
	"github.com/m04kA/SMC-BayBooking/internal/infra/storage/kv"
)

// slowStore хранилище с задержкой чтения, как у сетевого бэкенда
type slowStore struct {
	*kv.MemoryStore
	delay time.Duration
}

func (s *slowStore) Get(ctx context.Context, key string) (string, bool, error) {
	time.Sleep(s.delay)
	return s.MemoryStore.Get(ctx, key)
}

func TestService_UsersAreIsolated(t *testing.T) {
	factory := NewFactory(kv.NewMemoryStore(), nil, nopLogger{})
	factory.timeProvider = &fixedClock{now: now}
	svc := NewService(factory)
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, session(10, 1, now.Add(time.Hour), 1))
	require.NoError(t, err)

	// Та же сессия в корзине другого пользователя - не дубликат
	_, err = svc.Add(ctx, 2, session(10, 1, now.Add(time.Hour), 1))
	require.NoError(t, err)

	_, err = svc.Clear(ctx, 1)
	require.NoError(t, err)

	first, err := svc.Current(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, first.Basket)

	second, err := svc.Current(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, second.Basket, 1)

	basket, err := svc.Remove(ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, basket)
}

func TestService_ConcurrentAddsAreNotLost(t *testing.T) {
	store := &slowStore{MemoryStore: kv.NewMemoryStore(), delay: 2 * time.Millisecond}
	factory := NewFactory(store, nil, nopLogger{})
	factory.timeProvider = &fixedClock{now: now}
	svc := NewService(factory)
	ctx := context.Background()

	const adds = 8
	results := make([]domain.Basket, adds)
	errs := make([]error, adds)

	var wg sync.WaitGroup
	for i := 0; i < adds; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Сессии на разных боксах, слоты не пересекаются
			s := session(int64(100+10*i), int64(i+1), now.Add(time.Hour), 1)
			results[i], errs[i] = svc.Add(ctx, 7, s)
		}(i)
	}
	wg.Wait()

	lengths := make(map[int]bool, adds)
	for i := 0; i < adds; i++ {
		require.NoError(t, errs[i])
		lengths[len(results[i])] = true
	}
	// Каждое добавление видит результат предыдущих: длины 1..adds без повторов
	assert.Len(t, lengths, adds)

	current, err := svc.Current(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, current.Basket, adds)
}

func TestFactory_SharesLockPerUser(t *testing.T) {
	factory := NewFactory(kv.NewMemoryStore(), nil, nopLogger{})

	assert.Same(t, factory.ForUser(7).mu, factory.ForUser(7).mu)
	assert.NotSame(t, factory.ForUser(7).mu, factory.ForUser(8).mu)
}
