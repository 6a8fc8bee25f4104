package repository

import (
	"league-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeagueRepository handles database operations for leagues
type LeagueRepository struct {
	db *gorm.DB
}

// NewLeagueRepository creates a new league repository
func NewLeagueRepository(db *gorm.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

// Create creates a new league
func (r *LeagueRepository) Create(league *models.League) error {
	return r.db.Create(league).Error
}

// GetByID retrieves a league by ID
func (r *LeagueRepository) GetByID(id uuid.UUID) (*models.League, error) {
	var league models.League
	err := r.db.First(&league, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &league, nil
}

// GetByNameAndSeason retrieves a league by its name within a season
func (r *LeagueRepository) GetByNameAndSeason(name, season string) (*models.League, error) {
	var league models.League
	err := r.db.First(&league, "name = ? AND season = ?", name, season).Error
	if err != nil {
		return nil, err
	}
	return &league, nil
}

// GetAll retrieves all leagues with pagination
func (r *LeagueRepository) GetAll(limit, offset int) ([]models.League, int64, error) {
	var leagues []models.League
	var total int64

	if err := r.db.Model(&models.League{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Order("created_at").Find(&leagues).Error
	if err != nil {
		return nil, 0, err
	}

	return leagues, total, nil
}

// Update updates a league
func (r *LeagueRepository) Update(league *models.League) error {
	return r.db.Save(league).Error
}

// Delete deletes a league
func (r *LeagueRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.League{}, "id = ?", id).Error
}

// GetWithTeams retrieves a league with all its teams
func (r *LeagueRepository) GetWithTeams(id uuid.UUID) (*models.League, error) {
	var league models.League
	err := r.db.Preload("Teams").First(&league, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &league, nil
}
