package services

import "github.com/RuthraVed/team-project-planner/internal/models"

// Capability interfaces wired between services at construction. Each
// service depends on what it needs from a sibling, not on the sibling
// itself, so tests can substitute fakes.

// UserFinder resolves a user id to the stored user.
type UserFinder interface {
	FindUser(id uint) (*models.User, error)
}

// TeamFinder resolves a team id to the stored team.
type TeamFinder interface {
	FindTeam(id uint) (*models.Team, error)
}

// MembershipChecker reports whether a user belongs to a team.
type MembershipChecker interface {
	IsMember(teamID, userID uint) (bool, error)
}

// BulkResult aggregates a bulk membership operation. The slices hold the
// caller-supplied id tokens, in request order; Added is populated by bulk
// adds and Removed by bulk removals.
type BulkResult struct {
	Added   []string
	Removed []string
	Failed  []string
}
