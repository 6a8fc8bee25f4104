package models

// Location represents a venue where matches are played
type Location struct {
	BaseModel
	Name       string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Address    string `json:"address" gorm:"size:200" validate:"max=200"`
	City       string `json:"city" gorm:"size:100" validate:"max=100"`
	FieldCount int    `json:"field_count" gorm:"default:1" validate:"min=1"`

	// Relationships
	Matches []Match `json:"matches,omitempty" gorm:"foreignKey:LocationID"`
}

// TableName returns the table name for Location
func (Location) TableName() string {
	return "locations"
}
