package models

// User represents a registered user of the league portal
type User struct {
	BaseModel
	Email       string `json:"email" gorm:"uniqueIndex:idx_users_email;not null;size:255" validate:"required,email,max=255"`
	FirstName   string `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName    string `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	PhoneNumber string `json:"phone_number" gorm:"size:20"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`

	// Relationships
	TeamMemberships   []TeamMember   `json:"team_memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	LeagueMemberships []LeagueMember `json:"league_memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Notifications     []Notification `json:"notifications,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
