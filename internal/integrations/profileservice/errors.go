package profileservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("profileservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("profileservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что ProfileService недоступен и следует считать цену как для гостя
	ErrServiceDegraded = errors.New("profileservice unavailable: graceful degradation applied")
)
