package basket

import "errors"

var (
	// ErrDuplicateSelection возвращается, когда сессия с таким ID уже есть в корзине
	ErrDuplicateSelection = errors.New("basket: session already selected")

	// ErrOverlappingSelection возвращается, когда сессия пересекается по слотам с сессией из корзины
	ErrOverlappingSelection = errors.New("basket: session overlaps a selected session")

	// ErrPastSlot возвращается, когда сессия начинается не строго в будущем
	ErrPastSlot = errors.New("basket: session start is not in the future")

	// ErrInvalidSession возвращается при некорректной сессии (нет слотов, нет времени начала)
	ErrInvalidSession = errors.New("basket: invalid session")

	// ErrCorruptBasketData возвращается, когда сохранённую корзину не удалось декодировать
	ErrCorruptBasketData = errors.New("basket: stored basket data is corrupt")

	// ErrStorage возвращается при ошибках хранилища
	ErrStorage = errors.New("basket: storage error")
)

// isRejection ошибки бизнес-правил корзины, которые показываются пользователю
func isRejection(err error) bool {
	return errors.Is(err, ErrDuplicateSelection) ||
		errors.Is(err, ErrOverlappingSelection) ||
		errors.Is(err, ErrPastSlot) ||
		errors.Is(err, ErrInvalidSession)
}
