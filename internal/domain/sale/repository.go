package sale

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-erp/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-erp/internal/domain/inventory"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

// StatusChange carries an appointment transition computed before the write.
type StatusChange struct {
	Appointment *models.Appointment
	Prev        appointment.Status
	Entry       models.AppointmentStatusEntry
}

// Write is everything a sale persists, applied in one DB transaction.
type Write struct {
	Transaction   *models.Transaction
	StockChanges  []inventory.StockChange
	LoyaltyPoints int
	StatusChange  *StatusChange
}

type ListFilter struct {
	LocationIDs []string
	Restricted  bool

	LocationID string
	ClientID   string
	Type       string
	From       *time.Time
	To         *time.Time
}

type LocationSummary struct {
	LocationID string          `json:"locationId"`
	Count      int64           `json:"count"`
	Total      decimal.Decimal `json:"total"`
}

type Repository interface {
	GetLocation(ctx context.Context, id string) (*models.Location, error)
	GetClient(ctx context.Context, id string) (*models.Client, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)

	CreateSale(ctx context.Context, w Write) error
	GetSale(ctx context.Context, id string) (*models.Transaction, error)
	ListSales(ctx context.Context, f ListFilter) ([]models.Transaction, error)
	Summary(ctx context.Context, f ListFilter) ([]LocationSummary, error)
	SetPaymentReference(ctx context.Context, id, reference, url string) error
}
