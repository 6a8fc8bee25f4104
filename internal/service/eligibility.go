package service

import (
	"fmt"

	"league-portal-backend/internal/database/models"
	"league-portal-backend/internal/repository"

	"github.com/google/uuid"
)

// SubmitterRole is the role a user holds with respect to a specific match
type SubmitterRole string

const (
	RoleHomeTeamMember SubmitterRole = "home_team_member"
	RoleAwayTeamMember SubmitterRole = "away_team_member"
	RoleLeagueManager  SubmitterRole = "league_manager"
	RoleNone           SubmitterRole = "none"
)

// EligibilityResolver answers which of home-team-member, away-team-member,
// league-manager, or none applies for a (user, match) pair. It is read-only
// and re-evaluated on every call since membership can change between requests.
type EligibilityResolver struct {
	teamMemberRepo   repository.TeamMemberRepositoryInterface
	leagueMemberRepo repository.LeagueMemberRepositoryInterface
}

// NewEligibilityResolver creates a new eligibility resolver
func NewEligibilityResolver(teamMemberRepo repository.TeamMemberRepositoryInterface, leagueMemberRepo repository.LeagueMemberRepositoryInterface) *EligibilityResolver {
	return &EligibilityResolver{
		teamMemberRepo:   teamMemberRepo,
		leagueMemberRepo: leagueMemberRepo,
	}
}

// Resolve checks roles in priority order: home-team membership wins over
// away-team membership, and the league-manager path applies only to users on
// neither roster.
func (r *EligibilityResolver) Resolve(userID uuid.UUID, match *models.Match) (SubmitterRole, error) {
	isHome, err := r.teamMemberRepo.IsActiveMember(userID, match.HomeTeamID)
	if err != nil {
		return RoleNone, fmt.Errorf("failed to check home team membership: %w", err)
	}
	if isHome {
		return RoleHomeTeamMember, nil
	}

	isAway, err := r.teamMemberRepo.IsActiveMember(userID, match.AwayTeamID)
	if err != nil {
		return RoleNone, fmt.Errorf("failed to check away team membership: %w", err)
	}
	if isAway {
		return RoleAwayTeamMember, nil
	}

	isManager, err := r.leagueMemberRepo.IsManager(userID, match.LeagueID)
	if err != nil {
		return RoleNone, fmt.Errorf("failed to check league manager role: %w", err)
	}
	if isManager {
		return RoleLeagueManager, nil
	}

	return RoleNone, nil
}
