package models

type Location struct {
	Base

	Name    string `gorm:"size:100;not null;index" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	City    string `gorm:"size:100" json:"city"`
	State   string `gorm:"size:100" json:"state"`
	ZipCode string `gorm:"size:20" json:"zipCode"`
	Country string `gorm:"size:100" json:"country"`
	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`

	IsActive bool `gorm:"not null" json:"isActive"`
}
