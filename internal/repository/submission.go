package repository

import (
	"league-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchResultSubmissionRepository handles database operations for the submission ledger
type MatchResultSubmissionRepository struct {
	db *gorm.DB
}

// NewMatchResultSubmissionRepository creates a new submission repository
func NewMatchResultSubmissionRepository(db *gorm.DB) *MatchResultSubmissionRepository {
	return &MatchResultSubmissionRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *MatchResultSubmissionRepository) WithTx(tx *gorm.DB) MatchResultSubmissionRepositoryInterface {
	if tx == nil {
		return r
	}
	return &MatchResultSubmissionRepository{db: tx}
}

// Create inserts a new submission. The unique index over (match_id, team_id)
// rejects a second submission from the same team; with TranslateError enabled
// that surfaces as gorm.ErrDuplicatedKey.
func (r *MatchResultSubmissionRepository) Create(submission *models.MatchResultSubmission) error {
	return r.db.Create(submission).Error
}

// GetByID retrieves a submission by ID
func (r *MatchResultSubmissionRepository) GetByID(id uuid.UUID) (*models.MatchResultSubmission, error) {
	var submission models.MatchResultSubmission
	err := r.db.First(&submission, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// GetByMatchID retrieves all submissions for a match, oldest first
func (r *MatchResultSubmissionRepository) GetByMatchID(matchID uuid.UUID) ([]models.MatchResultSubmission, error) {
	var submissions []models.MatchResultSubmission
	err := r.db.Where("match_id = ?", matchID).Order("created_at").Find(&submissions).Error
	return submissions, err
}

// UpdateStatus mutates a submission's adjudication status and optional notes
func (r *MatchResultSubmissionRepository) UpdateStatus(id uuid.UUID, status models.SubmissionStatus, notes string) error {
	updates := map[string]interface{}{"status": status}
	if notes != "" {
		updates["notes"] = notes
	}
	result := r.db.Model(&models.MatchResultSubmission{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a submission from the ledger
func (r *MatchResultSubmissionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MatchResultSubmission{}, "id = ?", id).Error
}
