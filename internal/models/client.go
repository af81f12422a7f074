package models

type Client struct {
	Base

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;index" json:"phone"`
	Email string `gorm:"size:100" json:"email"`
	Notes string `gorm:"size:255" json:"notes"`

	PreferredLocationID *string `gorm:"size:36" json:"preferredLocationId"`
	LoyaltyPoints       int     `gorm:"not null;default:0" json:"loyaltyPoints"`
}
