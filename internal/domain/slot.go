package domain

import "time"

// SlotStatus represents the status of an atomic slot as reported by the slot backend
type SlotStatus string

const (
	SlotStatusAvailable   SlotStatus = "available"
	SlotStatusBooked      SlotStatus = "booked"
	SlotStatusUnavailable SlotStatus = "unavailable"
	SlotStatusBlocked     SlotStatus = "blocked"
)

// AtomicSlot represents the smallest reservable unit of one bay
type AtomicSlot struct {
	ID        int64
	BayID     int64
	StartTime time.Time
	EndTime   time.Time
	Status    SlotStatus
}

// IsAvailable returns true if the slot can be part of a new session
func (s *AtomicSlot) IsAvailable() bool {
	return s.Status == SlotStatusAvailable
}

// BayFilter restricts session assembly to a single bay or lets every bay through
type BayFilter struct {
	BayID int64
	Any   bool
}

// AnyBay is the sentinel filter that matches every bay
var AnyBay = BayFilter{Any: true}

// OnlyBay returns a filter matching a single bay
func OnlyBay(bayID int64) BayFilter {
	return BayFilter{BayID: bayID}
}

// Matches returns true if the bay passes the filter
func (f BayFilter) Matches(bayID int64) bool {
	return f.Any || f.BayID == bayID
}
