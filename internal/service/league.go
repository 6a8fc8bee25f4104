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

// LeagueService handles business logic for leagues and league memberships
type LeagueService struct {
	repo       repository.LeagueRepositoryInterface
	memberRepo repository.LeagueMemberRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	validator  *validator.Validate
}

// NewLeagueService creates a new league service
func NewLeagueService(repo repository.LeagueRepositoryInterface, memberRepo repository.LeagueMemberRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *LeagueService {
	return &LeagueService{repo: repo, memberRepo: memberRepo, userRepo: userRepo, validator: validator}
}

// CreateLeagueRequest represents the request to create a league
type CreateLeagueRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Season      string `json:"season" validate:"required,max=50"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateLeagueRequest represents the request to update a league
type UpdateLeagueRequest struct {
	Description string               `json:"description" validate:"max=500"`
	Status      *models.LeagueStatus `json:"status,omitempty" validate:"omitempty,oneof=pending active completed cancelled"`
}

// AddLeagueMemberRequest represents the request to add a user to a league
type AddLeagueMemberRequest struct {
	UserID uuid.UUID         `json:"user_id" validate:"required"`
	Role   models.LeagueRole `json:"role" validate:"required,oneof=manager player"`
}

// LeagueResponse represents the response for league operations
type LeagueResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Season      string              `json:"season"`
	Description string              `json:"description,omitempty"`
	Status      models.LeagueStatus `json:"status"`
	CreatedAt   string              `json:"created_at"`
}

// LeagueMemberResponse represents a league membership in API responses
type LeagueMemberResponse struct {
	ID       uuid.UUID         `json:"id"`
	LeagueID uuid.UUID         `json:"league_id"`
	UserID   uuid.UUID         `json:"user_id"`
	Role     models.LeagueRole `json:"role"`
}

// LeagueListResponse represents a paginated list of leagues
type LeagueListResponse struct {
	Leagues  []LeagueResponse `json:"leagues"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new league
func (s *LeagueService) Create(req *CreateLeagueRequest) (*LeagueResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByNameAndSeason(req.Name, req.Season)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing league: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrLeagueExists
	}

	league := &models.League{
		Name:        req.Name,
		Season:      req.Season,
		Description: req.Description,
		Status:      models.LeagueStatusPending,
	}

	if err := s.repo.Create(league); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrLeagueExists
		}
		return nil, fmt.Errorf("failed to create league: %w", err)
	}

	return toLeagueResponse(league), nil
}

// GetByID retrieves a league by ID
func (s *LeagueService) GetByID(id uuid.UUID) (*LeagueResponse, error) {
	league, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to get league: %w", err)
	}
	return toLeagueResponse(league), nil
}

// GetAll retrieves leagues with pagination
func (s *LeagueService) GetAll(page, pageSize int) (*LeagueListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	leagues, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get leagues: %w", err)
	}

	responses := make([]LeagueResponse, len(leagues))
	for i := range leagues {
		responses[i] = *toLeagueResponse(&leagues[i])
	}

	return &LeagueListResponse{Leagues: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates a league's description or status
func (s *LeagueService) Update(id uuid.UUID, req *UpdateLeagueRequest) (*LeagueResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	league, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to get league: %w", err)
	}

	league.Description = req.Description
	if req.Status != nil {
		league.Status = *req.Status
	}

	if err := s.repo.Update(league); err != nil {
		return nil, fmt.Errorf("failed to update league: %w", err)
	}
	return toLeagueResponse(league), nil
}

// Delete deletes a league
func (s *LeagueService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLeagueNotFound
		}
		return fmt.Errorf("failed to get league: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete league: %w", err)
	}
	return nil
}

// AddMember adds a user to a league as a manager or player
func (s *LeagueService) AddMember(leagueID uuid.UUID, req *AddLeagueMemberRequest) (*LeagueMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(leagueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to verify league: %w", err)
	}
	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	member := &models.LeagueMember{
		LeagueID: leagueID,
		UserID:   req.UserID,
		Role:     req.Role,
	}
	if err := s.memberRepo.Create(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrLeagueMemberExists
		}
		return nil, fmt.Errorf("failed to add league member: %w", err)
	}

	return toLeagueMemberResponse(member), nil
}

// GetMembers retrieves all memberships of a league
func (s *LeagueService) GetMembers(leagueID uuid.UUID) ([]LeagueMemberResponse, error) {
	if _, err := s.repo.GetByID(leagueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to verify league: %w", err)
	}

	members, err := s.memberRepo.GetByLeagueID(leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get league members: %w", err)
	}

	responses := make([]LeagueMemberResponse, len(members))
	for i := range members {
		responses[i] = *toLeagueMemberResponse(&members[i])
	}
	return responses, nil
}

// RemoveMember removes a membership from a league
func (s *LeagueService) RemoveMember(leagueID, memberID uuid.UUID) error {
	if _, err := s.repo.GetByID(leagueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLeagueNotFound
		}
		return fmt.Errorf("failed to verify league: %w", err)
	}
	if err := s.memberRepo.Delete(memberID); err != nil {
		return fmt.Errorf("failed to remove league member: %w", err)
	}
	return nil
}

func toLeagueResponse(league *models.League) *LeagueResponse {
	return &LeagueResponse{
		ID:          league.ID,
		Name:        league.Name,
		Season:      league.Season,
		Description: league.Description,
		Status:      league.Status,
		CreatedAt:   league.CreatedAt.Format(time.RFC3339),
	}
}

func toLeagueMemberResponse(member *models.LeagueMember) *LeagueMemberResponse {
	return &LeagueMemberResponse{
		ID:       member.ID,
		LeagueID: member.LeagueID,
		UserID:   member.UserID,
		Role:     member.Role,
	}
}
