package kv

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// FileStore хранит каждое значение в отдельном файле каталога dir
type FileStore struct {
	dir string
}

// NewFileStore создает файловое хранилище, каталог создаётся при необходимости
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: NewFileStore - empty directory", ErrIO)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: NewFileStore - create dir %s: %v", ErrIO, dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Get возвращает значение по ключу, ok = false если файла нет
func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: Get - read %s: %v", ErrIO, path, err)
	}

	return string(data), true, nil
}

// Set сохраняет значение: пишет во временный файл и переименовывает,
// чтобы читатель никогда не увидел частично записанное значение
func (s *FileStore) Set(_ context.Context, key, value string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: Set - create temp file: %v", ErrIO, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: Set - write temp file: %v", ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: Set - close temp file: %v", ErrIO, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: Set - rename to %s: %v", ErrIO, path, err)
	}

	return nil
}

// Remove удаляет файл ключа, отсутствие файла ошибкой не считается
func (s *FileStore) Remove(_ context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: Remove - delete %s: %v", ErrIO, path, err)
	}
	return nil
}

// path строит имя файла из ключа, ключ экранируется, чтобы не выйти за пределы каталога
func (s *FileStore) path(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}
	return filepath.Join(s.dir, url.QueryEscape(key)+".json"), nil
}
