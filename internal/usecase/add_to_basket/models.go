package add_to_basket

import (
	"time"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
)

// Settings параметры площадки
type Settings struct {
	Location         *time.Location
	Changeover       time.Duration
	MaxSessionLength int
}

// Request модель запроса на добавление сессии в корзину
type Request struct {
	UserID        int64
	SessionID     int64     // ID первого слота сессии
	Date          time.Time // День сессии
	SessionLength int       // Количество часов в сессии
}

// Response модель ответа с корзиной после добавления
type Response struct {
	Added  domain.Session
	Basket domain.Basket
}
