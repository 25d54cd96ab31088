package domain

import "time"

// Slot cadence
const (
	// DefaultChangeover is the gap between the end of one atomic slot and the start of the next
	DefaultChangeover = 5 * time.Minute

	DefaultSessionLength = 1
	MaxSessionLength     = 4
)

// Default pricing values (GBP)
const (
	DefaultPeakRate      = "45.00"
	DefaultOffPeakRate   = "35.00"
	DefaultPeakStartHour = 17
	DefaultVATRate       = "0.20"
)

// DefaultDiscounts percentage discount on the base rate per tier
var DefaultDiscounts = map[MembershipTier]int{
	TierNone:      0,
	TierPar:       10,
	TierBirdie:    15,
	TierHoleInOne: 20,
}

// Storage keys
const (
	BasketKeyPrefix = "basket"
)

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	DefaultZone = "Europe/London"
)
