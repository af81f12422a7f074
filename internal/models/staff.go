package models

type StaffMember struct {
	Base

	Name   string `gorm:"size:100;not null" json:"name"`
	Email  string `gorm:"size:100" json:"email"`
	Phone  string `gorm:"size:20" json:"phone"`
	Role   string `gorm:"size:50" json:"role"`
	Status string `gorm:"size:20;default:'active'" json:"status"`

	Locations []StaffLocation `gorm:"foreignKey:StaffID" json:"locations,omitempty"`
}

// StaffLocation grants a staff member access to a location.
type StaffLocation struct {
	Base

	StaffID    string `gorm:"size:36;not null;uniqueIndex:idx_staff_location" json:"staffId"`
	LocationID string `gorm:"size:36;not null;uniqueIndex:idx_staff_location" json:"locationId"`
	IsActive   bool   `gorm:"not null" json:"isActive"`
}
