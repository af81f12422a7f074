package sale

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-erp/internal/access"
	domain "github.com/BruksfildServices01/salon-erp/internal/domain/sale"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

type ListSalesInput struct {
	LocationID string
	ClientID   string
	Type       string
	From       *time.Time
	To         *time.Time
}

type ListSales struct {
	repo domain.Repository
}

func NewListSales(repo domain.Repository) *ListSales {
	return &ListSales{repo: repo}
}

func (uc *ListSales) filter(actor access.Actor, in ListSalesInput) (domain.ListFilter, error) {
	if in.LocationID != "" {
		if err := actor.Require(in.LocationID); err != nil {
			return domain.ListFilter{}, err
		}
	}
	ids, restricted := actor.Scope()
	return domain.ListFilter{
		LocationIDs: ids,
		Restricted:  restricted,
		LocationID:  in.LocationID,
		ClientID:    in.ClientID,
		Type:        in.Type,
		From:        in.From,
		To:          in.To,
	}, nil
}

func (uc *ListSales) Execute(
	ctx context.Context,
	actor access.Actor,
	in ListSalesInput,
) ([]models.Transaction, error) {

	f, err := uc.filter(actor, in)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListSales(ctx, f)
}

func (uc *ListSales) Get(
	ctx context.Context,
	actor access.Actor,
	id string,
) (*models.Transaction, error) {

	t, err := uc.repo.GetSale(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.Require(t.LocationID); err != nil {
		return nil, err
	}
	return t, nil
}

// Summary returns count and total per location for the period.
func (uc *ListSales) Summary(
	ctx context.Context,
	actor access.Actor,
	in ListSalesInput,
) ([]domain.LocationSummary, error) {

	f, err := uc.filter(actor, in)
	if err != nil {
		return nil, err
	}
	return uc.repo.Summary(ctx, f)
}
