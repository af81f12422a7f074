package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-erp/internal/models"
)

type ListFilter struct {
	LocationIDs []string
	Restricted  bool

	LocationID string
	StaffID    string
	ClientID   string
	Status     string
	From       *time.Time
	To         *time.Time
}

type Repository interface {
	// -------- Lookups --------
	GetLocation(ctx context.Context, id string) (*models.Location, error)
	GetClient(ctx context.Context, id string) (*models.Client, error)
	GetStaff(ctx context.Context, id string) (*models.StaffMember, error)
	GetService(ctx context.Context, id string) (*models.Service, error)

	// -------- Appointment --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	ListAppointments(ctx context.Context, f ListFilter) ([]models.Appointment, error)

	// SaveTransition persists a status change made by Transition. It fails
	// with invalid_transition if the stored status is no longer prev.
	SaveTransition(
		ctx context.Context,
		ap *models.Appointment,
		prev Status,
		entry models.AppointmentStatusEntry,
	) error
}
