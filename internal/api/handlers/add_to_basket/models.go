package add_to_basket

import (
	"time"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
	addToBasket "github.com/m04kA/SMC-BayBooking/internal/usecase/add_to_basket"
)

// AddToBasketRequest HTTP request model
type AddToBasketRequest struct {
	SessionID int64  `json:"sessionId"`
	Date      string `json:"date"`   // YYYY-MM-DD
	Length    int    `json:"length"` // Количество часов в сессии
}

// ToUseCaseRequest создает запрос use case из тела запроса
func (r *AddToBasketRequest) ToUseCaseRequest(userID int64, loc *time.Location) (*addToBasket.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, loc)
	if err != nil {
		return nil, err
	}

	return &addToBasket.Request{
		UserID:        userID,
		SessionID:     r.SessionID,
		Date:          date,
		SessionLength: r.Length,
	}, nil
}
