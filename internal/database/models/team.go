package models

import "github.com/google/uuid"

// Team represents a team competing in a league
type Team struct {
	BaseModel
	LeagueID       uuid.UUID  `json:"league_id" gorm:"type:uuid;not null;uniqueIndex:idx_teams_league_name" validate:"required"`
	Name           string     `json:"name" gorm:"uniqueIndex:idx_teams_league_name;not null;size:100" validate:"required,min=1,max=100"`
	HomeLocationID *uuid.UUID `json:"home_location_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	League       League    `json:"league,omitempty" gorm:"foreignKey:LeagueID;constraint:OnDelete:CASCADE"`
	HomeLocation *Location `json:"home_location,omitempty" gorm:"foreignKey:HomeLocationID;constraint:OnDelete:SET NULL"`
	Members      []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamMember links a user to a team roster. Only active members may act for the team.
type TeamMember struct {
	BaseModel
	TeamID   uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_team_user" validate:"required"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_team_user" validate:"required"`
	Role     TeamRole  `json:"role" gorm:"type:varchar(20);not null;default:'player'" validate:"required,oneof=captain player"`
	IsActive bool      `json:"is_active" gorm:"default:true"`

	// Relationships
	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
