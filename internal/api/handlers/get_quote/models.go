package get_quote

import (
	"time"

	"github.com/m04kA/SMC-BayBooking/internal/api/handlers"
	getQuote "github.com/m04kA/SMC-BayBooking/internal/usecase/get_quote"
)

// QuoteResponse HTTP response model
// Денежные суммы передаются строками с двумя знаками после запятой
type QuoteResponse struct {
	Basket                 *handlers.BasketResponse `json:"basket"`
	Lines                  []Line                   `json:"lines"`
	Subtotal               string                   `json:"subtotal"`
	VAT                    string                   `json:"vat"`
	Total                  string                   `json:"total"`
	IncludedHoursUsed      int                      `json:"includedHoursUsed"`
	IncludedHoursRemaining int                      `json:"includedHoursRemaining"`
	IsFree                 bool                     `json:"isFree"`
	Membership             *Membership              `json:"membership,omitempty"`
	Guest                  bool                     `json:"guest"`
	Degraded               bool                     `json:"degraded"`
}

// Line строка расчёта по одной сессии
type Line struct {
	SessionID       int64     `json:"sessionId"`
	BayID           int64     `json:"bayId"`
	StartTime       time.Time `json:"startTime"`
	Hours           int       `json:"hours"`
	Peak            bool      `json:"peak"`
	BaseRate        string    `json:"baseRate"`
	DiscountPercent int       `json:"discountPercent"`
	DiscountedRate  string    `json:"discountedRate"`
	FreeHours       int       `json:"freeHours"`
	PaidHours       int       `json:"paidHours"`
	LineTotal       string    `json:"lineTotal"`
}

// Membership членство, с которым посчитана цена
type Membership struct {
	Tier           string `json:"tier"`
	Status         string `json:"status"`
	RemainingHours int    `json:"remainingHours"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getQuote.Response) *QuoteResponse {
	lines := make([]Line, len(resp.Quote.Lines))
	for i, l := range resp.Quote.Lines {
		lines[i] = Line{
			SessionID:       l.SessionID,
			BayID:           l.BayID,
			StartTime:       l.StartTime,
			Hours:           l.Hours,
			Peak:            l.Peak,
			BaseRate:        l.BaseRate.StringFixed(2),
			DiscountPercent: l.DiscountPercent,
			DiscountedRate:  l.DiscountedRate.StringFixed(2),
			FreeHours:       l.FreeHours,
			PaidHours:       l.PaidHours,
			LineTotal:       l.LineTotal.StringFixed(2),
		}
	}

	result := &QuoteResponse{
		Basket:                 handlers.FromBasket(resp.Basket, resp.RemovedCount),
		Lines:                  lines,
		Subtotal:               resp.Quote.Subtotal.StringFixed(2),
		VAT:                    resp.Quote.VAT.StringFixed(2),
		Total:                  resp.Quote.Total.StringFixed(2),
		IncludedHoursUsed:      resp.Quote.IncludedHoursUsed,
		IncludedHoursRemaining: resp.Quote.IncludedHoursRemaining,
		IsFree:                 resp.Quote.IsFree(),
		Guest:                  resp.Guest,
		Degraded:               resp.Degraded,
	}

	if resp.Membership != nil {
		result.Membership = &Membership{
			Tier:           string(resp.Membership.Tier),
			Status:         string(resp.Membership.Status),
			RemainingHours: resp.Membership.RemainingHours,
		}
	}

	return result
}
