package service

import (
	"league-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user business logic
type UserServiceInterface interface {
	Create(req *CreateUserRequest) (*UserResponse, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
	GetAll(page, pageSize int) (*UserListResponse, error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Delete(id uuid.UUID) error
}

// LeagueServiceInterface defines the interface for league business logic
type LeagueServiceInterface interface {
	Create(req *CreateLeagueRequest) (*LeagueResponse, error)
	GetByID(id uuid.UUID) (*LeagueResponse, error)
	GetAll(page, pageSize int) (*LeagueListResponse, error)
	Update(id uuid.UUID, req *UpdateLeagueRequest) (*LeagueResponse, error)
	Delete(id uuid.UUID) error
	AddMember(leagueID uuid.UUID, req *AddLeagueMemberRequest) (*LeagueMemberResponse, error)
	GetMembers(leagueID uuid.UUID) ([]LeagueMemberResponse, error)
	RemoveMember(leagueID, memberID uuid.UUID) error
}

// TeamServiceInterface defines the interface for team business logic
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(id uuid.UUID) (*TeamResponse, error)
	GetByLeague(leagueID uuid.UUID, page, pageSize int) (*TeamListResponse, error)
	Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(id uuid.UUID) error
	AddMember(teamID uuid.UUID, req *AddTeamMemberRequest) (*TeamMemberResponse, error)
	GetMembers(teamID uuid.UUID) ([]TeamMemberResponse, error)
	RemoveMember(teamID, memberID uuid.UUID) error
}

// LocationServiceInterface defines the interface for location business logic
type LocationServiceInterface interface {
	Create(req *CreateLocationRequest) (*LocationResponse, error)
	GetByID(id uuid.UUID) (*LocationResponse, error)
	GetAll(page, pageSize int) (*LocationListResponse, error)
	Update(id uuid.UUID, req *UpdateLocationRequest) (*LocationResponse, error)
	Delete(id uuid.UUID) error
}

// MatchServiceInterface defines the interface for match scheduling logic
type MatchServiceInterface interface {
	Create(req *CreateMatchRequest) (*MatchResponse, error)
	GetByID(id uuid.UUID) (*MatchResponse, error)
	GetByLeague(leagueID uuid.UUID, page, pageSize int) (*MatchListResponse, error)
	Update(id uuid.UUID, req *UpdateMatchRequest) (*MatchResponse, error)
	Delete(id uuid.UUID) error
	GetSubmissions(matchID uuid.UUID) ([]SubmissionResponse, error)
}

// NotificationServiceInterface defines the interface for notification delivery
type NotificationServiceInterface interface {
	GetByUser(userID uuid.UUID, page, pageSize int) (*NotificationListResponse, error)
	MarkRead(id uuid.UUID) error
	Delete(id uuid.UUID) error
	NotifyConflict(managerUserID, matchID uuid.UUID, payload *ConflictPayload) error
	NotifyMatchFinalized(userID, matchID uuid.UUID, homeScore, awayScore int) error
}

// ReconciliationServiceInterface defines the interface for the result reconciliation engine
type ReconciliationServiceInterface interface {
	SubmitResult(userID uuid.UUID, req *SubmitResultRequest) (*SubmitResultResponse, error)
	UpdateSubmissionStatus(callerID, submissionID uuid.UUID, req *UpdateSubmissionStatusRequest) (*SubmissionResponse, error)
	DeleteSubmission(callerID, submissionID uuid.UUID) error
}

// EligibilityResolverInterface answers which role a user holds with respect to a match
type EligibilityResolverInterface interface {
	Resolve(userID uuid.UUID, match *models.Match) (SubmitterRole, error)
}
