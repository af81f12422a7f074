package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-erp/internal/access"
	"github.com/BruksfildServices01/salon-erp/internal/audit"
	domain "github.com/BruksfildServices01/salon-erp/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

type UpdateAppointmentStatus struct {
	repo  domain.Repository
	audit audit.Sink
	Now   func() time.Time
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit audit.Sink,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		audit: audit,
		Now:   func() time.Time { return time.Now().UTC() },
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	actor access.Actor,
	appointmentID string,
	newStatus string,
	note string,
) (*models.Appointment, error) {

	next, err := domain.ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := actor.Require(ap.LocationID); err != nil {
		return nil, err
	}

	entry, prev, err := domain.Transition(ap, next, uc.Now(), actor.Label(), note)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.SaveTransition(ctx, ap, prev, entry); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		LocationID: ap.LocationID,
		UserID:     actor.UserID,
		Action:     "appointment_status_changed",
		Entity:     "appointment",
		EntityID:   ap.ID,
		Metadata:   map[string]any{"from": prev, "to": next},
	})

	return ap, nil
}
