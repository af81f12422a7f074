package inventory

import (
	"context"

	"github.com/BruksfildServices01/salon-erp/internal/models"
)

// StockChange is one signed change to a (product, location) row.
type StockChange struct {
	ProductID    string
	LocationID   string
	Delta        int
	MovementType string
	Reason       string
	Reference    string
	CreatedBy    string
}

type StockFilter struct {
	LocationIDs []string
	Restricted  bool

	LocationID string
	ProductID  string
	MaxStock   *int
}

type Repository interface {
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	GetLocation(ctx context.Context, id string) (*models.Location, error)

	// ApplyChange performs one atomic change and records its movement.
	ApplyChange(ctx context.Context, ch StockChange) (*models.StockMovement, error)

	// ApplyTransfer applies both changes in one DB transaction; either both
	// rows change or neither does.
	ApplyTransfer(ctx context.Context, out StockChange, in StockChange) ([]models.StockMovement, error)

	ListStock(ctx context.Context, f StockFilter) ([]models.ProductLocation, error)
	ListMovements(ctx context.Context, f StockFilter, limit int) ([]models.StockMovement, error)
}
