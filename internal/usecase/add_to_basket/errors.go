package add_to_basket

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSessionNotAvailable возвращается, когда сессия больше не может быть собрана из свободных слотов
	ErrSessionNotAvailable = errors.New("session is no longer available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
