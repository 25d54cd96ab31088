package domain

import "time"

// Session represents a bookable run of one or more contiguous atomic slots of one bay.
// ID is the id of the first underlying slot and is stable for the group.
type Session struct {
	ID        int64
	BayID     int64
	StartTime time.Time
	EndTime   time.Time
	SlotIDs   []int64

	// InBasket is derived for display and is never persisted
	InBasket bool
}

// Hours returns the number of atomic slots (hours) in the session
func (s *Session) Hours() int {
	return len(s.SlotIDs)
}

// ContainsSlot returns true if the session covers the given atomic slot
func (s *Session) ContainsSlot(slotID int64) bool {
	for _, id := range s.SlotIDs {
		if id == slotID {
			return true
		}
	}
	return false
}

// SharesSlotWith returns true if both sessions cover at least one common atomic slot
func (s *Session) SharesSlotWith(other *Session) bool {
	for _, id := range other.SlotIDs {
		if s.ContainsSlot(id) {
			return true
		}
	}
	return false
}

// StartsAfter returns true if the session starts strictly after the given instant
func (s *Session) StartsAfter(t time.Time) bool {
	return s.StartTime.After(t)
}

// Basket is the ordered list of sessions selected by a user
type Basket []Session

// FindByID returns the index of the session with the given id or -1
func (b Basket) FindByID(id int64) int {
	for i := range b {
		if b[i].ID == id {
			return i
		}
	}
	return -1
}

// Overlapping returns the first basket session sharing a slot with the candidate
func (b Basket) Overlapping(candidate *Session) (*Session, bool) {
	for i := range b {
		if b[i].SharesSlotWith(candidate) {
			return &b[i], true
		}
	}
	return nil, false
}

// TotalHours returns the sum of hours over all sessions in the basket
func (b Basket) TotalHours() int {
	total := 0
	for i := range b {
		total += b[i].Hours()
	}
	return total
}
