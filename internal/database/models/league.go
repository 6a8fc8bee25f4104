package models

import "github.com/google/uuid"

// League represents a league season containing teams and matches
type League struct {
	BaseModel
	Name        string       `json:"name" gorm:"uniqueIndex:idx_leagues_name_season;not null;size:100" validate:"required,min=1,max=100"`
	Season      string       `json:"season" gorm:"uniqueIndex:idx_leagues_name_season;not null;size:50" validate:"required,max=50"`
	Description string       `json:"description" gorm:"size:500" validate:"max=500"`
	Status      LeagueStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`

	// Relationships
	Teams   []Team         `json:"teams,omitempty" gorm:"foreignKey:LeagueID;constraint:OnDelete:CASCADE"`
	Matches []Match        `json:"matches,omitempty" gorm:"foreignKey:LeagueID;constraint:OnDelete:CASCADE"`
	Members []LeagueMember `json:"members,omitempty" gorm:"foreignKey:LeagueID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for League
func (League) TableName() string {
	return "leagues"
}

// LeagueMember links a user to a league with a role (manager or player)
type LeagueMember struct {
	BaseModel
	LeagueID uuid.UUID  `json:"league_id" gorm:"type:uuid;not null;uniqueIndex:idx_league_members_league_user" validate:"required"`
	UserID   uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_league_members_league_user" validate:"required"`
	Role     LeagueRole `json:"role" gorm:"type:varchar(20);not null;default:'player'" validate:"required,oneof=manager player"`

	// Relationships
	League League `json:"league,omitempty" gorm:"foreignKey:LeagueID;constraint:OnDelete:CASCADE"`
	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for LeagueMember
func (LeagueMember) TableName() string {
	return "league_members"
}
