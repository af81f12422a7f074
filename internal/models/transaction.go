package models

import "github.com/shopspring/decimal"

// Transaction is a completed POS sale. Rows are not modified after creation
// apart from the payment reference fields.
type Transaction struct {
	Base

	LocationID    string  `gorm:"size:36;not null;index" json:"locationId"`
	ClientID      *string `gorm:"size:36;index" json:"clientId"`
	ClientName    string  `gorm:"size:100" json:"clientName"`
	StaffID       *string `gorm:"size:36" json:"staffId"`
	AppointmentID *string `gorm:"size:36;index" json:"appointmentId"`

	Type          string `gorm:"size:20;not null" json:"type"`
	Status        string `gorm:"size:20;not null" json:"status"`
	PaymentMethod string `gorm:"size:30" json:"paymentMethod"`

	Subtotal decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	Discount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"discount"`
	Total    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`

	Items []TransactionItem `gorm:"foreignKey:TransactionID" json:"items"`

	PaymentReference string `gorm:"size:100" json:"paymentReference,omitempty"`
	PaymentURL       string `gorm:"size:500" json:"paymentUrl,omitempty"`

	Notes     string `gorm:"size:255" json:"notes"`
	CreatedBy string `gorm:"size:100" json:"createdBy"`
}

type TransactionItem struct {
	Base

	TransactionID string          `gorm:"size:36;not null;index" json:"-"`
	ItemType      string          `gorm:"size:20;not null" json:"type"`
	ItemID        string          `gorm:"size:36;not null" json:"itemId"`
	Name          string          `gorm:"size:100" json:"name"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	Discount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"discount"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	StaffID       *string         `gorm:"size:36" json:"staffId,omitempty"`
}
