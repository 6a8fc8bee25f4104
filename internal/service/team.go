package service

import (
	"errors"
	"fmt"
	"time"

	"league-portal-backend/internal/database/models"
	apperrors "league-portal-backend/internal/errors"
	"league-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams and rosters
type TeamService struct {
	repo       repository.TeamRepositoryInterface
	memberRepo repository.TeamMemberRepositoryInterface
	leagueRepo repository.LeagueRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	validator  *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, leagueRepo repository.LeagueRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{repo: repo, memberRepo: memberRepo, leagueRepo: leagueRepo, userRepo: userRepo, validator: validator}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	LeagueID       uuid.UUID  `json:"league_id" validate:"required"`
	Name           string     `json:"name" validate:"required,min=1,max=100"`
	HomeLocationID *uuid.UUID `json:"home_location_id,omitempty"`
}

// UpdateTeamRequest represents the request to update a team
type UpdateTeamRequest struct {
	Name           string     `json:"name" validate:"required,min=1,max=100"`
	HomeLocationID *uuid.UUID `json:"home_location_id,omitempty"`
}

// AddTeamMemberRequest represents the request to add a user to a team roster
type AddTeamMemberRequest struct {
	UserID uuid.UUID       `json:"user_id" validate:"required"`
	Role   models.TeamRole `json:"role" validate:"required,oneof=captain player"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID             uuid.UUID  `json:"id"`
	LeagueID       uuid.UUID  `json:"league_id"`
	Name           string     `json:"name"`
	HomeLocationID *uuid.UUID `json:"home_location_id,omitempty"`
	CreatedAt      string     `json:"created_at"`
}

// TeamMemberResponse represents a roster entry in API responses
type TeamMemberResponse struct {
	ID       uuid.UUID       `json:"id"`
	TeamID   uuid.UUID       `json:"team_id"`
	UserID   uuid.UUID       `json:"user_id"`
	Role     models.TeamRole `json:"role"`
	IsActive bool            `json:"is_active"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new team
func (s *TeamService) Create(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.leagueRepo.GetByID(req.LeagueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to verify league: %w", err)
	}

	existing, err := s.repo.GetByName(req.LeagueID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing team: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTeamExists
	}

	team := &models.Team{
		LeagueID:       req.LeagueID,
		Name:           req.Name,
		HomeLocationID: req.HomeLocationID,
	}

	if err := s.repo.Create(team); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return toTeamResponse(team), nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return toTeamResponse(team), nil
}

// GetByLeague retrieves teams for a league with pagination
func (s *TeamService) GetByLeague(leagueID uuid.UUID, page, pageSize int) (*TeamListResponse, error) {
	if _, err := s.leagueRepo.GetByID(leagueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to verify league: %w", err)
	}

	page, pageSize = normalizePagination(page, pageSize)

	teams, total, err := s.repo.GetByLeagueID(leagueID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *toTeamResponse(&teams[i])
	}

	return &TeamListResponse{Teams: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates a team
func (s *TeamService) Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	team.Name = req.Name
	team.HomeLocationID = req.HomeLocationID

	if err := s.repo.Update(team); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return toTeamResponse(team), nil
}

// Delete deletes a team
func (s *TeamService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// AddMember adds a user to a team roster
func (s *TeamService) AddMember(teamID uuid.UUID, req *AddTeamMemberRequest) (*TeamMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}
	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	member := &models.TeamMember{
		TeamID:   teamID,
		UserID:   req.UserID,
		Role:     req.Role,
		IsActive: true,
	}
	if err := s.memberRepo.Create(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamMemberExists
		}
		return nil, fmt.Errorf("failed to add team member: %w", err)
	}

	return toTeamMemberResponse(member), nil
}

// GetMembers retrieves the roster of a team
func (s *TeamService) GetMembers(teamID uuid.UUID) ([]TeamMemberResponse, error) {
	if _, err := s.repo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	members, err := s.memberRepo.GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}

	responses := make([]TeamMemberResponse, len(members))
	for i := range members {
		responses[i] = *toTeamMemberResponse(&members[i])
	}
	return responses, nil
}

// RemoveMember removes a roster entry from a team
func (s *TeamService) RemoveMember(teamID, memberID uuid.UUID) error {
	if _, err := s.repo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to verify team: %w", err)
	}
	if err := s.memberRepo.Delete(memberID); err != nil {
		return fmt.Errorf("failed to remove team member: %w", err)
	}
	return nil
}

func toTeamResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:             team.ID,
		LeagueID:       team.LeagueID,
		Name:           team.Name,
		HomeLocationID: team.HomeLocationID,
		CreatedAt:      team.CreatedAt.Format(time.RFC3339),
	}
}

func toTeamMemberResponse(member *models.TeamMember) *TeamMemberResponse {
	return &TeamMemberResponse{
		ID:       member.ID,
		TeamID:   member.TeamID,
		UserID:   member.UserID,
		Role:     member.Role,
		IsActive: member.IsActive,
	}
}
