package inventory

import (
	"context"

	"github.com/BruksfildServices01/salon-erp/internal/access"
	domain "github.com/BruksfildServices01/salon-erp/internal/domain/inventory"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

const defaultMovementLimit = 100

type ListStock struct {
	repo domain.Repository
}

func NewListStock(repo domain.Repository) *ListStock {
	return &ListStock{repo: repo}
}

func (uc *ListStock) filter(actor access.Actor, locationID, productID string) (domain.StockFilter, error) {
	if locationID != "" {
		if err := actor.Require(locationID); err != nil {
			return domain.StockFilter{}, err
		}
	}
	ids, restricted := actor.Scope()
	return domain.StockFilter{
		LocationIDs: ids,
		Restricted:  restricted,
		LocationID:  locationID,
		ProductID:   productID,
	}, nil
}

func (uc *ListStock) Execute(
	ctx context.Context,
	actor access.Actor,
	locationID string,
) ([]models.ProductLocation, error) {

	f, err := uc.filter(actor, locationID, "")
	if err != nil {
		return nil, err
	}
	return uc.repo.ListStock(ctx, f)
}

// LowStock lists rows at or below threshold.
func (uc *ListStock) LowStock(
	ctx context.Context,
	actor access.Actor,
	locationID string,
	threshold int,
) ([]models.ProductLocation, error) {

	f, err := uc.filter(actor, locationID, "")
	if err != nil {
		return nil, err
	}
	f.MaxStock = &threshold
	return uc.repo.ListStock(ctx, f)
}

func (uc *ListStock) Movements(
	ctx context.Context,
	actor access.Actor,
	locationID string,
	productID string,
	limit int,
) ([]models.StockMovement, error) {

	f, err := uc.filter(actor, locationID, productID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 500 {
		limit = defaultMovementLimit
	}
	return uc.repo.ListMovements(ctx, f, limit)
}
