package kv

import (
	"context"
	"sync"
)

// MemoryStore хранилище ключ-значение в памяти процесса
// Используется для локального запуска и в тестах
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore создает пустое хранилище в памяти
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Get возвращает значение по ключу, ok = false если ключа нет
func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrInvalidKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	return value, ok, nil
}

// Set сохраняет значение по ключу
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

// Remove удаляет ключ, отсутствие ключа ошибкой не считается
func (s *MemoryStore) Remove(_ context.Context, key string) error {
	if key == "" {
		return ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
