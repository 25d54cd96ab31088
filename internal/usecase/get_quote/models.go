package get_quote

import "github.com/m04kA/SMC-BayBooking/internal/domain"

// Request модель запроса на расчёт стоимости корзины
type Request struct {
	UserID int64
}

// Response модель ответа с расчётом
type Response struct {
	Basket       domain.Basket
	Quote        domain.Quote
	Membership   *domain.MembershipContext // nil для гостя
	RemovedCount int                       // Сколько истёкших сессий было удалено из корзины
	Guest        bool                      // Цена посчитана без членства
	Degraded     bool                      // ProfileService недоступен, цена посчитана как для гостя
}
