package service

import (
	"errors"
	"fmt"

	"league-portal-backend/internal/database/models"
	apperrors "league-portal-backend/internal/errors"
	"league-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationService handles business logic for match venues
type LocationService struct {
	repo      repository.LocationRepositoryInterface
	validator *validator.Validate
}

// NewLocationService creates a new location service
func NewLocationService(repo repository.LocationRepositoryInterface, validator *validator.Validate) *LocationService {
	return &LocationService{repo: repo, validator: validator}
}

// CreateLocationRequest represents the request to create a location
type CreateLocationRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Address    string `json:"address" validate:"max=200"`
	City       string `json:"city" validate:"max=100"`
	FieldCount int    `json:"field_count" validate:"omitempty,min=1"`
}

// UpdateLocationRequest represents the request to update a location
type UpdateLocationRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Address    string `json:"address" validate:"max=200"`
	City       string `json:"city" validate:"max=100"`
	FieldCount int    `json:"field_count" validate:"omitempty,min=1"`
}

// LocationResponse represents the response for location operations
type LocationResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address,omitempty"`
	City       string    `json:"city,omitempty"`
	FieldCount int       `json:"field_count"`
}

// LocationListResponse represents a paginated list of locations
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create creates a new location
func (s *LocationService) Create(req *CreateLocationRequest) (*LocationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	fieldCount := req.FieldCount
	if fieldCount == 0 {
		fieldCount = 1
	}

	location := &models.Location{
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
		FieldCount: fieldCount,
	}

	if err := s.repo.Create(location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	return toLocationResponse(location), nil
}

// GetByID retrieves a location by ID
func (s *LocationService) GetByID(id uuid.UUID) (*LocationResponse, error) {
	location, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return toLocationResponse(location), nil
}

// GetAll retrieves locations with pagination
func (s *LocationService) GetAll(page, pageSize int) (*LocationListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	locations, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get locations: %w", err)
	}

	responses := make([]LocationResponse, len(locations))
	for i := range locations {
		responses[i] = *toLocationResponse(&locations[i])
	}

	return &LocationListResponse{Locations: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates a location
func (s *LocationService) Update(id uuid.UUID, req *UpdateLocationRequest) (*LocationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	location, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	location.Name = req.Name
	location.Address = req.Address
	location.City = req.City
	if req.FieldCount > 0 {
		location.FieldCount = req.FieldCount
	}

	if err := s.repo.Update(location); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}
	return toLocationResponse(location), nil
}

// Delete deletes a location
func (s *LocationService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLocationNotFound
		}
		return fmt.Errorf("failed to get location: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	return nil
}

func toLocationResponse(location *models.Location) *LocationResponse {
	return &LocationResponse{
		ID:         location.ID,
		Name:       location.Name,
		Address:    location.Address,
		City:       location.City,
		FieldCount: location.FieldCount,
	}
}
