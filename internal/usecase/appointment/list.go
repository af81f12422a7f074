package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-erp/internal/access"
	domain "github.com/BruksfildServices01/salon-erp/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

type ListAppointmentsInput struct {
	LocationID string
	StaffID    string
	ClientID   string
	Status     string
	From       *time.Time
	To         *time.Time
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	actor access.Actor,
	in ListAppointmentsInput,
) ([]models.Appointment, error) {

	if in.LocationID != "" {
		if err := actor.Require(in.LocationID); err != nil {
			return nil, err
		}
	}
	if in.Status != "" {
		if _, err := domain.ParseStatus(in.Status); err != nil {
			return nil, err
		}
	}

	ids, restricted := actor.Scope()

	return uc.repo.ListAppointments(ctx, domain.ListFilter{
		LocationIDs: ids,
		Restricted:  restricted,
		LocationID:  in.LocationID,
		StaffID:     in.StaffID,
		ClientID:    in.ClientID,
		Status:      in.Status,
		From:        in.From,
		To:          in.To,
	})
}

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	actor access.Actor,
	id string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.Require(ap.LocationID); err != nil {
		return nil, err
	}
	return ap, nil
}
