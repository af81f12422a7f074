package models

import "github.com/shopspring/decimal"

type ServiceCategory struct {
	Base

	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

type Service struct {
	Base

	Name        string           `gorm:"size:100;not null" json:"name"`
	Description string           `gorm:"size:255" json:"description"`
	CategoryID  *string          `gorm:"size:36;index" json:"categoryId"`
	Category    *ServiceCategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category,omitempty"`
	DurationMin int              `json:"duration"`
	Price       decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"price"`
	IsActive    bool             `gorm:"not null" json:"isActive"`
}
