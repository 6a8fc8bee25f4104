package models

import "github.com/google/uuid"

// MatchResultSubmission is one team's claimed outcome for one match.
// The unique index over (match_id, team_id) is the contract the reconciliation
// engine relies on: a second submission from the same team must fail at the
// storage layer, never overwrite.
type MatchResultSubmission struct {
	BaseModel
	MatchID          uuid.UUID        `json:"match_id" gorm:"type:uuid;not null;uniqueIndex:idx_submissions_match_team" validate:"required"`
	TeamID           uuid.UUID        `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_submissions_match_team" validate:"required"`
	SubmittingUserID uuid.UUID        `json:"submitting_user_id" gorm:"type:uuid;not null;index" validate:"required"`
	HomeScore        int              `json:"home_score" gorm:"not null" validate:"min=0"`
	AwayScore        int              `json:"away_score" gorm:"not null" validate:"min=0"`
	Notes            string           `json:"notes" gorm:"size:500" validate:"max=500"`
	Status           SubmissionStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`

	// Relationships
	Match          Match `json:"match,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
	Team           Team  `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	SubmittingUser User  `json:"submitting_user,omitempty" gorm:"foreignKey:SubmittingUserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MatchResultSubmission
func (MatchResultSubmission) TableName() string {
	return "match_result_submissions"
}
