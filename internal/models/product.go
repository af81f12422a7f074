package models

import "github.com/shopspring/decimal"

type Product struct {
	Base

	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `gorm:"size:255" json:"description"`
	SKU         string          `gorm:"size:50;index" json:"sku"`
	Category    string          `gorm:"size:50" json:"category"`
	Type        string          `gorm:"size:50" json:"type"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Cost        decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost"`
	ImageURL    string          `gorm:"size:255" json:"imageUrl"`

	IsRetail bool `gorm:"not null" json:"isRetail"`
	IsActive bool `gorm:"not null" json:"isActive"`
}

// ProductLocation is the unit of stock truth: one row per (product, location).
type ProductLocation struct {
	Base

	ProductID  string   `gorm:"size:36;not null;uniqueIndex:idx_product_location" json:"productId"`
	Product    *Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"product,omitempty"`
	LocationID string   `gorm:"size:36;not null;uniqueIndex:idx_product_location" json:"locationId"`
	Stock      int      `gorm:"not null;default:0" json:"stock"`
	IsActive   bool     `gorm:"not null" json:"isActive"`
}

// StockMovement records every change applied to a ProductLocation row.
type StockMovement struct {
	Base

	ProductID     string `gorm:"size:36;not null;index" json:"productId"`
	LocationID    string `gorm:"size:36;not null;index" json:"locationId"`
	Type          string `gorm:"size:20;not null" json:"type"`
	Quantity      int    `gorm:"not null" json:"quantity"`
	PreviousStock int    `gorm:"not null" json:"previousStock"`
	NewStock      int    `gorm:"not null" json:"newStock"`
	Reason        string `gorm:"size:255" json:"reason"`
	Reference     string `gorm:"size:36;index" json:"reference"`
	CreatedBy     string `gorm:"size:100" json:"createdBy"`
}
