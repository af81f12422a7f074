package sale

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-erp/internal/access"
	"github.com/BruksfildServices01/salon-erp/internal/audit"
	apdomain "github.com/BruksfildServices01/salon-erp/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-erp/internal/domain/inventory"
	domain "github.com/BruksfildServices01/salon-erp/internal/domain/sale"
	"github.com/BruksfildServices01/salon-erp/internal/httperr"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SaleItemInput struct {
	Type      string
	ID        string
	Quantity  int
	UnitPrice *decimal.Decimal
	Discount  decimal.Decimal
	StaffID   string
}

type CreateSaleInput struct {
	LocationID    string
	ClientID      string
	StaffID       string
	AppointmentID string
	PaymentMethod string
	Notes         string
	Discount      decimal.Decimal
	Items         []SaleItemInput
}

// ======================================================
// USE CASE
// ======================================================

type CreateSale struct {
	repo  domain.Repository
	audit audit.Sink
	Now   func() time.Time
}

func NewCreateSale(repo domain.Repository, audit audit.Sink) *CreateSale {
	return &CreateSale{
		repo:  repo,
		audit: audit,
		Now:   func() time.Time { return time.Now().UTC() },
	}
}

// Execute records one POS sale. Product lines take stock from the sale's
// location; a shortfall on any line rejects the whole sale.
func (uc *CreateSale) Execute(
	ctx context.Context,
	actor access.Actor,
	in CreateSaleInput,
) (*models.Transaction, error) {

	if in.LocationID == "" {
		return nil, httperr.ErrBusiness("missing_location")
	}
	if _, err := uc.repo.GetLocation(ctx, in.LocationID); err != nil {
		return nil, err
	}
	if err := actor.Require(in.LocationID); err != nil {
		return nil, err
	}

	txID := uuid.NewString()
	t := &models.Transaction{
		Base:          models.Base{ID: txID},
		LocationID:    in.LocationID,
		Status:        domain.StatusCompleted,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		CreatedBy:     actor.Label(),
	}
	if in.StaffID != "" {
		t.StaffID = &in.StaffID
	}

	// --------------------------------------------------
	// Linked appointment
	// --------------------------------------------------
	var statusChange *domain.StatusChange
	if in.AppointmentID != "" {
		ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
		if err != nil {
			return nil, err
		}
		if ap.LocationID != in.LocationID {
			return nil, httperr.ErrBusiness("invalid_request")
		}
		t.AppointmentID = &ap.ID
		if in.ClientID == "" && ap.ClientID != nil {
			in.ClientID = *ap.ClientID
		}

		// appointments that cannot complete stay linked but keep their status
		if apdomain.CanTransition(apdomain.Status(ap.Status), apdomain.StatusCompleted) {
			entry, prev, err := apdomain.Transition(ap, apdomain.StatusCompleted, uc.Now(), actor.Label(), "checkout")
			if err != nil {
				return nil, err
			}
			statusChange = &domain.StatusChange{Appointment: ap, Prev: prev, Entry: entry}
		}
	}

	if in.ClientID != "" {
		client, err := uc.repo.GetClient(ctx, in.ClientID)
		if err != nil {
			return nil, err
		}
		t.ClientID = &client.ID
		t.ClientName = client.Name
	}

	// --------------------------------------------------
	// Lines
	// --------------------------------------------------
	lines, err := uc.priceLines(ctx, in.Items)
	if err != nil {
		return nil, err
	}

	totals, err := domain.Compute(lines, in.Discount)
	if err != nil {
		return nil, err
	}

	t.Type = domain.Classify(lines)
	t.Subtotal = totals.Subtotal
	t.Discount = totals.Discount
	t.Total = totals.Total

	var changes []inventory.StockChange
	for _, l := range lines {
		item := models.TransactionItem{
			ItemType:  l.ItemType,
			ItemID:    l.ItemID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Discount:  l.Discount,
			Total:     l.Total(),
		}
		if l.StaffID != "" {
			staffID := l.StaffID
			item.StaffID = &staffID
		}
		t.Items = append(t.Items, item)

		if l.ItemType == domain.ItemProduct {
			changes = append(changes, inventory.StockChange{
				ProductID:    l.ItemID,
				LocationID:   in.LocationID,
				Delta:        -l.Quantity,
				MovementType: inventory.MovementSale,
				Reason:       "sale",
				Reference:    txID,
				CreatedBy:    actor.Label(),
			})
		}
	}

	points := 0
	if t.ClientID != nil {
		points = domain.LoyaltyPoints(t.Total)
	}

	if err := uc.repo.CreateSale(ctx, domain.Write{
		Transaction:   t,
		StockChanges:  changes,
		LoyaltyPoints: points,
		StatusChange:  statusChange,
	}); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		LocationID: t.LocationID,
		UserID:     actor.UserID,
		Action:     "sale_created",
		Entity:     "transaction",
		EntityID:   t.ID,
		Metadata: map[string]any{
			"type":  t.Type,
			"total": t.Total.String(),
			"items": len(t.Items),
		},
	})

	return t, nil
}

func (uc *CreateSale) priceLines(ctx context.Context, items []SaleItemInput) ([]domain.Line, error) {
	lines := make([]domain.Line, 0, len(items))

	for _, it := range items {
		line := domain.Line{
			ItemType: it.Type,
			ItemID:   it.ID,
			Quantity: it.Quantity,
			Discount: it.Discount,
			StaffID:  it.StaffID,
		}

		switch it.Type {
		case domain.ItemService:
			svc, err := uc.repo.GetService(ctx, it.ID)
			if err != nil {
				return nil, err
			}
			line.Name = svc.Name
			line.UnitPrice = svc.Price
		case domain.ItemProduct:
			p, err := uc.repo.GetProduct(ctx, it.ID)
			if err != nil {
				return nil, err
			}
			if !p.IsActive {
				return nil, httperr.ErrBusiness("invalid_item")
			}
			line.Name = p.Name
			line.UnitPrice = p.Price
		default:
			return nil, httperr.ErrBusiness("invalid_item")
		}

		if it.UnitPrice != nil {
			line.UnitPrice = *it.UnitPrice
		}

		lines = append(lines, line)
	}

	return lines, nil
}
