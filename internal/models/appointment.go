package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Appointment struct {
	Base

	LocationID string `gorm:"size:36;not null;index" json:"locationId"`

	ClientID   *string `gorm:"size:36;index" json:"clientId"`
	ClientName string  `gorm:"size:100" json:"clientName"`

	StaffID   string `gorm:"size:36;not null;index" json:"staffId"`
	StaffName string `gorm:"size:100" json:"staffName"`

	ServiceID   *string `gorm:"size:36" json:"serviceId"`
	ServiceName string  `gorm:"size:100" json:"serviceName"`

	Date     time.Time `gorm:"not null;index" json:"date"`
	Duration int       `gorm:"not null" json:"duration"`
	Type     string    `gorm:"size:20;default:'appointment'" json:"type"`

	Status        string                   `gorm:"size:20;not null;index" json:"status"`
	StatusHistory []AppointmentStatusEntry `gorm:"foreignKey:AppointmentID" json:"statusHistory"`

	Notes string          `gorm:"size:500" json:"notes"`
	Price decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`

	AdditionalServices datatypes.JSONSlice[AppointmentItem] `json:"additionalServices"`
	Products           datatypes.JSONSlice[AppointmentItem] `json:"products"`

	CheckedInAt *time.Time `json:"checkedInAt"`
	CompletedAt *time.Time `json:"completedAt"`
	CancelledAt *time.Time `json:"cancelledAt"`
}

// AppointmentItem is an add-on service or product attached to a booking.
type AppointmentItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// AppointmentStatusEntry is one row of the append-only status log.
type AppointmentStatusEntry struct {
	Base

	AppointmentID string    `gorm:"size:36;not null;index:idx_appointment_seq" json:"-"`
	Seq           int       `gorm:"not null;index:idx_appointment_seq" json:"-"`
	Status        string    `gorm:"size:20;not null" json:"status"`
	Timestamp     time.Time `gorm:"not null" json:"timestamp"`
	UpdatedBy     string    `gorm:"size:100" json:"updatedBy"`
	Note          string    `gorm:"size:255" json:"note,omitempty"`
}
