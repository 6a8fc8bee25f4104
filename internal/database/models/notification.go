package models

import "github.com/google/uuid"

// Notification is a message delivered to a user, e.g. a score conflict
// requiring manager adjudication
type Notification struct {
	BaseModel
	UserID  uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	MatchID *uuid.UUID       `json:"match_id,omitempty" gorm:"type:uuid;index"`
	Type    NotificationType `json:"type" gorm:"type:varchar(30);not null;default:'generic'"`
	Title   string           `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Message string           `json:"message" gorm:"size:1000" validate:"max=1000"`
	IsRead  bool             `json:"is_read" gorm:"default:false"`

	// Relationships
	User  User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Match *Match `json:"match,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
