package models

import (
	"time"

	"github.com/google/uuid"
)

// Match represents a scheduled contest between two teams within a league.
// Scores stay nil until the match is finalized.
type Match struct {
	BaseModel
	LeagueID    uuid.UUID   `json:"league_id" gorm:"type:uuid;not null;index" validate:"required"`
	HomeTeamID  uuid.UUID   `json:"home_team_id" gorm:"type:uuid;not null;index;check:chk_matches_distinct_teams,home_team_id <> away_team_id" validate:"required"`
	AwayTeamID  uuid.UUID   `json:"away_team_id" gorm:"type:uuid;not null;index" validate:"required"`
	LocationID  *uuid.UUID  `json:"location_id,omitempty" gorm:"type:uuid;index"`
	ScheduledAt time.Time   `json:"scheduled_at" gorm:"not null" validate:"required"`
	Status      MatchStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled'"`
	HomeScore   *int        `json:"home_score,omitempty"`
	AwayScore   *int        `json:"away_score,omitempty"`

	// Relationships
	League      League                  `json:"league,omitempty" gorm:"foreignKey:LeagueID;constraint:OnDelete:CASCADE"`
	HomeTeam    Team                    `json:"home_team,omitempty" gorm:"foreignKey:HomeTeamID;constraint:OnDelete:CASCADE"`
	AwayTeam    Team                    `json:"away_team,omitempty" gorm:"foreignKey:AwayTeamID;constraint:OnDelete:CASCADE"`
	Location    *Location               `json:"location,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL"`
	Submissions []MatchResultSubmission `json:"submissions,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Match
func (Match) TableName() string {
	return "matches"
}

// IsFinal reports whether the match can no longer accept result submissions
func (m *Match) IsFinal() bool {
	return m.Status == MatchStatusCompleted || m.Status == MatchStatusCancelled
}
