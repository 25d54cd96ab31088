package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceLine represents the price of one basket session
type PriceLine struct {
	SessionID       int64
	BayID           int64
	StartTime       time.Time
	Hours           int
	Peak            bool
	BaseRate        decimal.Decimal // Per hour, before discount
	DiscountPercent int
	DiscountedRate  decimal.Decimal // Per hour, after discount
	FreeHours       int             // Covered by included membership hours
	PaidHours       int
	LineTotal       decimal.Decimal
}

// Quote represents the priced basket. Total is VAT-inclusive and equals Subtotal;
// VAT is reported as a breakdown only.
type Quote struct {
	Lines                  []PriceLine
	Subtotal               decimal.Decimal
	VAT                    decimal.Decimal
	Total                  decimal.Decimal
	IncludedHoursUsed      int
	IncludedHoursRemaining int
}

// IsFree returns true if nothing has to be paid for the basket
func (q *Quote) IsFree() bool {
	return q.Total.IsZero()
}
