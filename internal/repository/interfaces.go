package repository

import (
	"league-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TxManagerInterface runs a function inside a single database transaction.
// The reconciliation engine uses it so the duplicate-submission insert and the
// read-back of both submissions commit or roll back as one unit.
type TxManagerInterface interface {
	Do(fn func(tx *gorm.DB) error) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// LeagueRepositoryInterface defines the interface for league repository operations
type LeagueRepositoryInterface interface {
	Create(league *models.League) error
	GetByID(id uuid.UUID) (*models.League, error)
	GetByNameAndSeason(name, season string) (*models.League, error)
	GetAll(limit, offset int) ([]models.League, int64, error)
	Update(league *models.League) error
	Delete(id uuid.UUID) error
	GetWithTeams(id uuid.UUID) (*models.League, error)
}

// LeagueMemberRepositoryInterface defines the interface for league membership operations
type LeagueMemberRepositoryInterface interface {
	Create(member *models.LeagueMember) error
	GetByLeagueAndUser(leagueID, userID uuid.UUID) (*models.LeagueMember, error)
	GetByLeagueID(leagueID uuid.UUID) ([]models.LeagueMember, error)
	GetManagers(leagueID uuid.UUID) ([]models.LeagueMember, error)
	IsManager(userID, leagueID uuid.UUID) (bool, error)
	Delete(id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(leagueID uuid.UUID, name string) (*models.Team, error)
	GetByLeagueID(leagueID uuid.UUID, limit, offset int) ([]models.Team, int64, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
	GetWithMembers(id uuid.UUID) (*models.Team, error)
}

// TeamMemberRepositoryInterface defines the interface for team roster operations
type TeamMemberRepositoryInterface interface {
	Create(member *models.TeamMember) error
	GetByTeamAndUser(teamID, userID uuid.UUID) (*models.TeamMember, error)
	GetByTeamID(teamID uuid.UUID) ([]models.TeamMember, error)
	IsActiveMember(userID, teamID uuid.UUID) (bool, error)
	Update(member *models.TeamMember) error
	Delete(id uuid.UUID) error
}

// LocationRepositoryInterface defines the interface for location repository operations
type LocationRepositoryInterface interface {
	Create(location *models.Location) error
	GetByID(id uuid.UUID) (*models.Location, error)
	GetAll(limit, offset int) ([]models.Location, int64, error)
	Update(location *models.Location) error
	Delete(id uuid.UUID) error
}

// MatchRepositoryInterface defines the interface for match repository operations
type MatchRepositoryInterface interface {
	WithTx(tx *gorm.DB) MatchRepositoryInterface
	Create(match *models.Match) error
	GetByID(id uuid.UUID) (*models.Match, error)
	GetByLeagueID(leagueID uuid.UUID, limit, offset int) ([]models.Match, int64, error)
	Update(match *models.Match) error
	Delete(id uuid.UUID) error
	FinalizeMatch(matchID uuid.UUID, homeScore, awayScore int) (bool, error)
}

// MatchResultSubmissionRepositoryInterface defines the interface for the submission ledger
type MatchResultSubmissionRepositoryInterface interface {
	WithTx(tx *gorm.DB) MatchResultSubmissionRepositoryInterface
	Create(submission *models.MatchResultSubmission) error
	GetByID(id uuid.UUID) (*models.MatchResultSubmission, error)
	GetByMatchID(matchID uuid.UUID) ([]models.MatchResultSubmission, error)
	UpdateStatus(id uuid.UUID, status models.SubmissionStatus, notes string) error
	Delete(id uuid.UUID) error
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByID(id uuid.UUID) (*models.Notification, error)
	GetByUserID(userID uuid.UUID, limit, offset int) ([]models.Notification, int64, error)
	MarkRead(id uuid.UUID) error
	Delete(id uuid.UUID) error
}
