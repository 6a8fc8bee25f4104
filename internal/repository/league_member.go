package repository

import (
	"league-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeagueMemberRepository handles database operations for league memberships
type LeagueMemberRepository struct {
	db *gorm.DB
}

// NewLeagueMemberRepository creates a new league member repository
func NewLeagueMemberRepository(db *gorm.DB) *LeagueMemberRepository {
	return &LeagueMemberRepository{db: db}
}

// Create creates a new league membership
func (r *LeagueMemberRepository) Create(member *models.LeagueMember) error {
	return r.db.Create(member).Error
}

// GetByLeagueAndUser retrieves a membership for a user in a league
func (r *LeagueMemberRepository) GetByLeagueAndUser(leagueID, userID uuid.UUID) (*models.LeagueMember, error) {
	var member models.LeagueMember
	err := r.db.First(&member, "league_id = ? AND user_id = ?", leagueID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByLeagueID retrieves all memberships for a league
func (r *LeagueMemberRepository) GetByLeagueID(leagueID uuid.UUID) ([]models.LeagueMember, error) {
	var members []models.LeagueMember
	err := r.db.Where("league_id = ?", leagueID).Find(&members).Error
	return members, err
}

// GetManagers retrieves all managers of a league
func (r *LeagueMemberRepository) GetManagers(leagueID uuid.UUID) ([]models.LeagueMember, error) {
	var managers []models.LeagueMember
	err := r.db.Where("league_id = ? AND role = ?", leagueID, models.LeagueRoleManager).Find(&managers).Error
	return managers, err
}

// IsManager reports whether the user holds the manager role in the league
func (r *LeagueMemberRepository) IsManager(userID, leagueID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.LeagueMember{}).
		Where("league_id = ? AND user_id = ? AND role = ?", leagueID, userID, models.LeagueRoleManager).
		Count(&count).Error
	return count > 0, err
}

// Delete deletes a league membership
func (r *LeagueMemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.LeagueMember{}, "id = ?", id).Error
}
