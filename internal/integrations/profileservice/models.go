package profileservice

import (
	"strings"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
)

// Membership модель членства из ProfileService
type Membership struct {
	UserID         int64  `json:"userId"`
	Tier           string `json:"tier"`
	Status         string `json:"status"`
	RemainingHours int    `json:"remainingHours"`
}

// ToDomain преобразует членство в доменную модель
func (m Membership) ToDomain() *domain.MembershipContext {
	tier := domain.MembershipTier(strings.ToUpper(m.Tier))
	if tier == "" {
		tier = domain.TierNone
	}
	return &domain.MembershipContext{
		Tier:           tier,
		Status:         domain.MembershipStatus(strings.ToUpper(m.Status)),
		RemainingHours: m.RemainingHours,
	}
}
