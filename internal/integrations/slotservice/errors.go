package slotservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("slotservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("slotservice client: invalid response")

	// ErrInvalidRange возвращается, когда конец интервала не позже начала
	ErrInvalidRange = errors.New("slotservice client: invalid time range")
)
