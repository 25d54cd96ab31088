package get_sessions

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

// Request модель запроса на получение сессий
type Request struct {
	UserID        int64            // 0 - анонимный пользователь, корзина не учитывается
	Date          time.Time        // День, на который запрашиваются сессии
	SessionLength int              // Количество часов (атомарных слотов) в сессии
	Bay           domain.BayFilter // domain.AnyBay - все боксы
	StartOnlyKeys bool             // Группировать только по времени начала
}

// Response модель ответа со списком сессий
type Response struct {
	Date          time.Time
	SessionLength int
	Groups        []Group // В хронологическом порядке
	RemovedCount  int     // Сколько истёкших сессий было удалено из корзины
}

// Group сессии одного временного диапазона
type Group struct {
	Key           string // "HH:mm-HH:mm" или "HH:mm"
	Sessions      []Session
	AvailableBays int
	TotalBays     int
	Full          bool // Все сессии диапазона заняты корзиной
}

// Session модель сессии для отображения
type Session struct {
	ID        int64
	BayID     int64
	StartTime time.Time
	EndTime   time.Time
	SlotIDs   []int64
	InBasket  bool
	Available bool // false, если хотя бы один слот уже выбран в корзине
}
