package application

import (
	"context"

	sharedDomain "github.com/felixgeelhaar/nucleus/internal/shared/domain"
	"github.com/felixgeelhaar/nucleus/internal/users/domain"
)

// UserMetrics is a frequency table over the enumerated user fields. Every
// known role has an entry, zero when unused.
type UserMetrics struct {
	Total    int
	Active   int
	Inactive int
	ByRole   map[string]int
}

// Metrics scans all users once and counts them per role and activity flag.
// An empty repository yields total zero and all-zero counts, not a failure.
func (s *UserService) Metrics(ctx context.Context) sharedDomain.Result[UserMetrics] {
	metrics := UserMetrics{
		ByRole: make(map[string]int, len(domain.AllRoles())),
	}
	for _, role := range domain.AllRoles() {
		metrics.ByRole[role.String()] = 0
	}

	for _, user := range s.repo.FindAll(ctx) {
		metrics.Total++
		if user.IsActive() {
			metrics.Active++
		} else {
			metrics.Inactive++
		}
		metrics.ByRole[user.Role().String()]++
	}

	return sharedDomain.Ok(metrics)
}
