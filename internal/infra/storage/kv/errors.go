package kv

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("kv.storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса к хранилищу
	ErrExecQuery = errors.New("kv.storage: failed to execute query")

	// ErrInvalidKey возвращается при пустом или недопустимом ключе
	ErrInvalidKey = errors.New("kv.storage: invalid key")

	// ErrIO возвращается при ошибках чтения/записи файлов
	ErrIO = errors.New("kv.storage: io error")
)
