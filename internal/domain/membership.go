package domain

// MembershipTier represents the membership plan of a user
type MembershipTier string

const (
	TierNone      MembershipTier = "NONE"
	TierPar       MembershipTier = "PAR"
	TierBirdie    MembershipTier = "BIRDIE"
	TierHoleInOne MembershipTier = "HOLEINONE"
)

// MembershipStatus represents the billing status of a membership
type MembershipStatus string

const (
	MembershipActive     MembershipStatus = "ACTIVE"
	MembershipCancelled  MembershipStatus = "CANCELLED"
	MembershipPastDue    MembershipStatus = "PAST_DUE"
	MembershipIncomplete MembershipStatus = "INCOMPLETE"
)

// MembershipContext holds read-only membership facts of the logged-in user.
// Guests are represented by a nil *MembershipContext.
type MembershipContext struct {
	Tier           MembershipTier
	Status         MembershipStatus
	RemainingHours int // Included hours left in the current billing period
}

// IsActive returns true if the membership grants discounts and included hours
func (m *MembershipContext) IsActive() bool {
	return m != nil && m.Status == MembershipActive
}

// EffectiveTier returns the tier used for pricing: NONE unless the membership is active
func (m *MembershipContext) EffectiveTier() MembershipTier {
	if !m.IsActive() {
		return TierNone
	}
	return m.Tier
}

// IncludedHours returns the remaining allowance floored at zero; zero for inactive memberships
func (m *MembershipContext) IncludedHours() int {
	if !m.IsActive() || m.RemainingHours < 0 {
		return 0
	}
	return m.RemainingHours
}
