package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-erp/internal/access"
	"github.com/BruksfildServices01/salon-erp/internal/audit"
	domain "github.com/BruksfildServices01/salon-erp/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-erp/internal/httperr"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	LocationID string
	ClientID   string
	StaffID    string
	ServiceID  string

	Date     string // RFC3339
	Duration int
	Type     string
	Notes    string
	Price    *decimal.Decimal

	AdditionalServices []models.AppointmentItem
	Products           []models.AppointmentItem
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit audit.Sink
	Now   func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	audit audit.Sink,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		Now:   func() time.Time { return time.Now().UTC() },
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute books an appointment. No overlap check is made against the staff
// member's other appointments.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	actor access.Actor,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Shape
	// --------------------------------------------------
	kind := strings.TrimSpace(in.Type)
	if kind == "" {
		kind = domain.TypeAppointment
	}
	if kind != domain.TypeAppointment && kind != domain.TypeBlocked {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	if in.StaffID == "" {
		return nil, httperr.ErrBusiness("invalid_request")
	}
	if kind == domain.TypeAppointment {
		if in.ClientID == "" {
			return nil, httperr.ErrBusiness("missing_client")
		}
		if in.ServiceID == "" {
			return nil, httperr.ErrBusiness("missing_service")
		}
	}
	if in.Duration <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	date, err := time.Parse(time.RFC3339, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// --------------------------------------------------
	// 2. Staff and location
	// --------------------------------------------------
	staff, err := uc.repo.GetStaff(ctx, in.StaffID)
	if err != nil {
		return nil, err
	}

	locationID := in.LocationID
	if locationID == "" && len(staff.Locations) > 0 {
		locationID = staff.Locations[0].LocationID
	}
	if locationID == "" {
		return nil, httperr.ErrBusiness("missing_location")
	}

	if _, err := uc.repo.GetLocation(ctx, locationID); err != nil {
		return nil, err
	}
	if err := actor.Require(locationID); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		LocationID:         locationID,
		StaffID:            staff.ID,
		StaffName:          staff.Name,
		Date:               date.UTC(),
		Duration:           in.Duration,
		Type:               kind,
		Notes:              in.Notes,
		Price:              decimal.Zero,
		AdditionalServices: in.AdditionalServices,
		Products:           in.Products,
	}

	// --------------------------------------------------
	// 3. Client and service
	// --------------------------------------------------
	if in.ClientID != "" {
		client, err := uc.repo.GetClient(ctx, in.ClientID)
		if err != nil {
			return nil, err
		}
		ap.ClientID = &client.ID
		ap.ClientName = client.Name
	}

	if in.ServiceID != "" {
		svc, err := uc.repo.GetService(ctx, in.ServiceID)
		if err != nil {
			return nil, err
		}
		ap.ServiceID = &svc.ID
		ap.ServiceName = svc.Name
		ap.Price = svc.Price
	}

	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, httperr.ErrBusiness("invalid_request")
		}
		ap.Price = *in.Price
	}

	// --------------------------------------------------
	// 4. Initial status + persist
	// --------------------------------------------------
	domain.Open(ap, uc.Now(), actor.Label())

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		LocationID: ap.LocationID,
		UserID:     actor.UserID,
		Action:     "appointment_created",
		Entity:     "appointment",
		EntityID:   ap.ID,
		Metadata:   map[string]any{"status": ap.Status, "type": ap.Type},
	})

	return ap, nil
}
