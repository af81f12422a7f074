package sale

import (
	"context"

	"github.com/BruksfildServices01/salon-erp/internal/access"
	"github.com/BruksfildServices01/salon-erp/internal/audit"
	domain "github.com/BruksfildServices01/salon-erp/internal/domain/sale"
	"github.com/BruksfildServices01/salon-erp/internal/httperr"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

// PaymentGateway creates a hosted checkout for a recorded sale.
type PaymentGateway interface {
	CreatePaymentLink(ctx context.Context, t *models.Transaction) (reference string, url string, err error)
}

type CreatePaymentLink struct {
	repo    domain.Repository
	gateway PaymentGateway
	audit   audit.Sink
}

// NewCreatePaymentLink accepts a nil gateway; Execute then reports
// payments_disabled.
func NewCreatePaymentLink(
	repo domain.Repository,
	gateway PaymentGateway,
	audit audit.Sink,
) *CreatePaymentLink {
	return &CreatePaymentLink{repo: repo, gateway: gateway, audit: audit}
}

func (uc *CreatePaymentLink) Execute(
	ctx context.Context,
	actor access.Actor,
	saleID string,
) (*models.Transaction, error) {

	if uc.gateway == nil {
		return nil, httperr.ErrBusiness("payments_disabled")
	}

	t, err := uc.repo.GetSale(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if err := actor.Require(t.LocationID); err != nil {
		return nil, err
	}

	if t.PaymentURL != "" {
		return t, nil
	}

	ref, url, err := uc.gateway.CreatePaymentLink(ctx, t)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.SetPaymentReference(ctx, t.ID, ref, url); err != nil {
		return nil, err
	}
	t.PaymentReference = ref
	t.PaymentURL = url

	uc.audit.Dispatch(audit.Event{
		LocationID: t.LocationID,
		UserID:     actor.UserID,
		Action:     "payment_link_created",
		Entity:     "transaction",
		EntityID:   t.ID,
	})

	return t, nil
}
