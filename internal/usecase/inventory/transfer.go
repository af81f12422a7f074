package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-erp/internal/access"
	"github.com/BruksfildServices01/salon-erp/internal/audit"
	domain "github.com/BruksfildServices01/salon-erp/internal/domain/inventory"
	"github.com/BruksfildServices01/salon-erp/internal/httperr"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

type TransferStockInput struct {
	ProductID      string
	FromLocationID string
	ToLocationID   string
	Quantity       int
	Reason         string
}

type TransferResult struct {
	Reference string               `json:"reference"`
	From      models.StockMovement `json:"from"`
	To        models.StockMovement `json:"to"`
}

type TransferStock struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewTransferStock(repo domain.Repository, audit audit.Sink) *TransferStock {
	return &TransferStock{repo: repo, audit: audit}
}

// Execute moves stock between two locations in one DB transaction. When the
// source holds less than the quantity nothing is changed at either end.
func (uc *TransferStock) Execute(
	ctx context.Context,
	actor access.Actor,
	in TransferStockInput,
) (*TransferResult, error) {

	if err := domain.ValidateQuantity(in.Quantity); err != nil {
		return nil, err
	}
	if in.FromLocationID == "" || in.ToLocationID == "" {
		return nil, httperr.ErrBusiness("missing_location")
	}
	if in.FromLocationID == in.ToLocationID {
		return nil, httperr.ErrBusiness("same_location")
	}

	if _, err := uc.repo.GetProduct(ctx, in.ProductID); err != nil {
		return nil, err
	}
	for _, id := range []string{in.FromLocationID, in.ToLocationID} {
		if _, err := uc.repo.GetLocation(ctx, id); err != nil {
			return nil, err
		}
		if err := actor.Require(id); err != nil {
			return nil, err
		}
	}

	ref := uuid.NewString()

	moves, err := uc.repo.ApplyTransfer(ctx,
		domain.StockChange{
			ProductID:    in.ProductID,
			LocationID:   in.FromLocationID,
			Delta:        -in.Quantity,
			MovementType: domain.MovementTransferOut,
			Reason:       in.Reason,
			Reference:    ref,
			CreatedBy:    actor.Label(),
		},
		domain.StockChange{
			ProductID:    in.ProductID,
			LocationID:   in.ToLocationID,
			Delta:        in.Quantity,
			MovementType: domain.MovementTransferIn,
			Reason:       in.Reason,
			Reference:    ref,
			CreatedBy:    actor.Label(),
		},
	)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		LocationID: in.FromLocationID,
		UserID:     actor.UserID,
		Action:     "stock_transferred",
		Entity:     "product",
		EntityID:   in.ProductID,
		Metadata: map[string]any{
			"to":        in.ToLocationID,
			"quantity":  in.Quantity,
			"reference": ref,
		},
	})

	return &TransferResult{Reference: ref, From: moves[0], To: moves[1]}, nil
}
