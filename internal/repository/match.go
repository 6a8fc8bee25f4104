package repository

import (
	"league-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchRepository handles database operations for matches
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *MatchRepository) WithTx(tx *gorm.DB) MatchRepositoryInterface {
	if tx == nil {
		return r
	}
	return &MatchRepository{db: tx}
}

// Create creates a new match
func (r *MatchRepository) Create(match *models.Match) error {
	return r.db.Create(match).Error
}

// GetByID retrieves a match by ID
func (r *MatchRepository) GetByID(id uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := r.db.First(&match, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// GetByLeagueID retrieves all matches for a league with pagination
func (r *MatchRepository) GetByLeagueID(leagueID uuid.UUID, limit, offset int) ([]models.Match, int64, error) {
	var matches []models.Match
	var total int64

	if err := r.db.Model(&models.Match{}).Where("league_id = ?", leagueID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("league_id = ?", leagueID).
		Limit(limit).Offset(offset).
		Order("scheduled_at").
		Find(&matches).Error
	if err != nil {
		return nil, 0, err
	}

	return matches, total, nil
}

// Update updates a match
func (r *MatchRepository) Update(match *models.Match) error {
	return r.db.Save(match).Error
}

// Delete deletes a match
func (r *MatchRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Match{}, "id = ?", id).Error
}

// FinalizeMatch writes the authoritative scores and marks the match completed.
// The status guard in the WHERE clause makes racing finalizations safe: the
// second writer matches zero rows and the caller sees finalized == false.
func (r *MatchRepository) FinalizeMatch(matchID uuid.UUID, homeScore, awayScore int) (bool, error) {
	result := r.db.Model(&models.Match{}).
		Where("id = ? AND status <> ?", matchID, models.MatchStatusCompleted).
		Updates(map[string]interface{}{
			"status":     models.MatchStatusCompleted,
			"home_score": homeScore,
			"away_score": awayScore,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
