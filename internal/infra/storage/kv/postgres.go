package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BayBooking/pkg/psqlbuilder"
)

const kvTable = "kv_store"

// PostgresStore хранилище ключ-значение в таблице PostgreSQL
//
//	CREATE TABLE kv_store (
//	    key        TEXT PRIMARY KEY,
//	    value      TEXT NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type PostgresStore struct {
	db DBExecutor
}

// NewPostgresStore создает новый экземпляр хранилища
func NewPostgresStore(db DBExecutor) *PostgresStore {
	return &PostgresStore{db: db}
}

// Get возвращает значение по ключу, ok = false если строки нет
func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrInvalidKey
	}

	query, args, err := psqlbuilder.Select("value").
		From(kvTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: Get - scan value: %v", ErrExecQuery, err)
	}

	return value, true, nil
}

// Set сохраняет значение по ключу (upsert)
func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrInvalidKey
	}

	query, args, err := psqlbuilder.Insert(kvTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// Remove удаляет строку ключа, отсутствие строки ошибкой не считается
func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrInvalidKey
	}

	query, args, err := psqlbuilder.Delete(kvTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Remove - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Remove - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}
