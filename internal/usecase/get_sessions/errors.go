package get_sessions

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("invalid date")

	// ErrCorruptBasket возвращается, когда корзину пользователя не удалось прочитать
	ErrCorruptBasket = errors.New("stored basket is corrupt")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
