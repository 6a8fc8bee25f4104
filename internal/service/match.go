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

// MatchService handles match scheduling; finalization belongs to the
// reconciliation engine, not here.
type MatchService struct {
	repo           repository.MatchRepositoryInterface
	leagueRepo     repository.LeagueRepositoryInterface
	teamRepo       repository.TeamRepositoryInterface
	locationRepo   repository.LocationRepositoryInterface
	submissionRepo repository.MatchResultSubmissionRepositoryInterface
	validator      *validator.Validate
}

// NewMatchService creates a new match service
func NewMatchService(repo repository.MatchRepositoryInterface, leagueRepo repository.LeagueRepositoryInterface, teamRepo repository.TeamRepositoryInterface, locationRepo repository.LocationRepositoryInterface, submissionRepo repository.MatchResultSubmissionRepositoryInterface, validator *validator.Validate) *MatchService {
	return &MatchService{
		repo:           repo,
		leagueRepo:     leagueRepo,
		teamRepo:       teamRepo,
		locationRepo:   locationRepo,
		submissionRepo: submissionRepo,
		validator:      validator,
	}
}

// CreateMatchRequest represents the request to schedule a match
type CreateMatchRequest struct {
	LeagueID    uuid.UUID  `json:"league_id" validate:"required"`
	HomeTeamID  uuid.UUID  `json:"home_team_id" validate:"required"`
	AwayTeamID  uuid.UUID  `json:"away_team_id" validate:"required"`
	LocationID  *uuid.UUID `json:"location_id,omitempty"`
	ScheduledAt time.Time  `json:"scheduled_at" validate:"required"`
}

// UpdateMatchRequest represents the request to reschedule a match
type UpdateMatchRequest struct {
	LocationID  *uuid.UUID          `json:"location_id,omitempty"`
	ScheduledAt *time.Time          `json:"scheduled_at,omitempty"`
	Status      *models.MatchStatus `json:"status,omitempty" validate:"omitempty,oneof=scheduled in_progress cancelled"`
}

// MatchResponse represents the response for match operations
type MatchResponse struct {
	ID          uuid.UUID          `json:"id"`
	LeagueID    uuid.UUID          `json:"league_id"`
	HomeTeamID  uuid.UUID          `json:"home_team_id"`
	AwayTeamID  uuid.UUID          `json:"away_team_id"`
	LocationID  *uuid.UUID         `json:"location_id,omitempty"`
	ScheduledAt string             `json:"scheduled_at"`
	Status      models.MatchStatus `json:"status"`
	HomeScore   *int               `json:"home_score,omitempty"`
	AwayScore   *int               `json:"away_score,omitempty"`
}

// MatchListResponse represents a paginated list of matches
type MatchListResponse struct {
	Matches  []MatchResponse `json:"matches"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create schedules a new match between two distinct teams of the same league
func (s *MatchService) Create(req *CreateMatchRequest) (*MatchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.HomeTeamID == req.AwayTeamID {
		return nil, apperrors.ErrSameTeamMatch
	}

	if _, err := s.leagueRepo.GetByID(req.LeagueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to verify league: %w", err)
	}

	for _, teamID := range []uuid.UUID{req.HomeTeamID, req.AwayTeamID} {
		team, err := s.teamRepo.GetByID(teamID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to verify team: %w", err)
		}
		if team.LeagueID != req.LeagueID {
			return nil, apperrors.ErrTeamsNotInLeague
		}
	}

	if req.LocationID != nil {
		if _, err := s.locationRepo.GetByID(*req.LocationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrLocationNotFound
			}
			return nil, fmt.Errorf("failed to verify location: %w", err)
		}
	}

	match := &models.Match{
		LeagueID:    req.LeagueID,
		HomeTeamID:  req.HomeTeamID,
		AwayTeamID:  req.AwayTeamID,
		LocationID:  req.LocationID,
		ScheduledAt: req.ScheduledAt,
		Status:      models.MatchStatusScheduled,
	}

	if err := s.repo.Create(match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return toMatchResponse(match), nil
}

// GetByID retrieves a match by ID
func (s *MatchService) GetByID(id uuid.UUID) (*MatchResponse, error) {
	match, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return toMatchResponse(match), nil
}

// GetByLeague retrieves matches for a league with pagination
func (s *MatchService) GetByLeague(leagueID uuid.UUID, page, pageSize int) (*MatchListResponse, error) {
	if _, err := s.leagueRepo.GetByID(leagueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to verify league: %w", err)
	}

	page, pageSize = normalizePagination(page, pageSize)

	matches, total, err := s.repo.GetByLeagueID(leagueID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	responses := make([]MatchResponse, len(matches))
	for i := range matches {
		responses[i] = *toMatchResponse(&matches[i])
	}

	return &MatchListResponse{Matches: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update reschedules a match or moves it between non-final states. Completed
// matches are immutable here; scores only change through reconciliation.
func (s *MatchService) Update(id uuid.UUID, req *UpdateMatchRequest) (*MatchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	match, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	if match.Status == models.MatchStatusCompleted {
		return nil, apperrors.NewInvalidStateError("cannot modify a completed match")
	}

	if req.LocationID != nil {
		if _, err := s.locationRepo.GetByID(*req.LocationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrLocationNotFound
			}
			return nil, fmt.Errorf("failed to verify location: %w", err)
		}
		match.LocationID = req.LocationID
	}
	if req.ScheduledAt != nil {
		match.ScheduledAt = *req.ScheduledAt
	}
	if req.Status != nil {
		match.Status = *req.Status
	}

	if err := s.repo.Update(match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}
	return toMatchResponse(match), nil
}

// Delete deletes a match
func (s *MatchService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMatchNotFound
		}
		return fmt.Errorf("failed to get match: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	return nil
}

// GetSubmissions lists the ledger entries for a match, for manager adjudication
func (s *MatchService) GetSubmissions(matchID uuid.UUID) ([]SubmissionResponse, error) {
	if _, err := s.repo.GetByID(matchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to verify match: %w", err)
	}

	submissions, err := s.submissionRepo.GetByMatchID(matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get submissions: %w", err)
	}

	responses := make([]SubmissionResponse, len(submissions))
	for i := range submissions {
		responses[i] = *toSubmissionResponse(&submissions[i])
	}
	return responses, nil
}

func toMatchResponse(match *models.Match) *MatchResponse {
	return &MatchResponse{
		ID:          match.ID,
		LeagueID:    match.LeagueID,
		HomeTeamID:  match.HomeTeamID,
		AwayTeamID:  match.AwayTeamID,
		LocationID:  match.LocationID,
		ScheduledAt: match.ScheduledAt.Format(time.RFC3339),
		Status:      match.Status,
		HomeScore:   match.HomeScore,
		AwayScore:   match.AwayScore,
	}
}
