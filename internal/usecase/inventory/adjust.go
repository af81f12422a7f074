package inventory

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-erp/internal/access"
	"github.com/BruksfildServices01/salon-erp/internal/audit"
	domain "github.com/BruksfildServices01/salon-erp/internal/domain/inventory"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

type AdjustStockInput struct {
	ProductID      string
	LocationID     string
	AdjustmentType string
	Quantity       int
	Reason         string
}

type AdjustStock struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewAdjustStock(repo domain.Repository, audit audit.Sink) *AdjustStock {
	return &AdjustStock{repo: repo, audit: audit}
}

// Execute adds to or removes from one location's stock. A removal larger
// than the stock on hand fails with insufficient_stock and changes nothing.
func (uc *AdjustStock) Execute(
	ctx context.Context,
	actor access.Actor,
	in AdjustStockInput,
) (*models.StockMovement, error) {

	kind, err := domain.ParseAdjustmentType(strings.ToLower(strings.TrimSpace(in.AdjustmentType)))
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateQuantity(in.Quantity); err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetProduct(ctx, in.ProductID); err != nil {
		return nil, err
	}
	if _, err := uc.repo.GetLocation(ctx, in.LocationID); err != nil {
		return nil, err
	}
	if err := actor.Require(in.LocationID); err != nil {
		return nil, err
	}

	movementType := domain.MovementAdd
	if kind == domain.AdjustRemove {
		movementType = domain.MovementRemove
	}

	mv, err := uc.repo.ApplyChange(ctx, domain.StockChange{
		ProductID:    in.ProductID,
		LocationID:   in.LocationID,
		Delta:        domain.Delta(kind, in.Quantity),
		MovementType: movementType,
		Reason:       in.Reason,
		CreatedBy:    actor.Label(),
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		LocationID: in.LocationID,
		UserID:     actor.UserID,
		Action:     "stock_adjusted",
		Entity:     "product",
		EntityID:   in.ProductID,
		Metadata: map[string]any{
			"type":     kind,
			"quantity": in.Quantity,
			"previous": mv.PreviousStock,
			"new":      mv.NewStock,
			"reason":   in.Reason,
		},
	})

	return mv, nil
}
