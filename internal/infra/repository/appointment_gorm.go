package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-erp/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

type AppointmentGormRepository struct {
	lookups
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{lookups: lookups{db: db}, db: db}
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

// CreateAppointment inserts the appointment together with its first
// history entries in one statement batch.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		})

	q = scopeLocations(q, "location_id", f.LocationIDs, f.Restricted)

	if f.LocationID != "" {
		q = q.Where("location_id = ?", f.LocationID)
	}
	if f.StaffID != "" {
		q = q.Where("staff_id = ?", f.StaffID)
	}
	if f.ClientID != "" {
		q = q.Where("client_id = ?", f.ClientID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.From != nil {
		q = q.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("date < ?", *f.To)
	}

	var apps []models.Appointment
	if err := q.Order("date ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) SaveTransition(
	ctx context.Context,
	ap *models.Appointment,
	prev domain.Status,
	entry models.AppointmentStatusEntry,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return saveTransition(tx, ap, prev, entry)
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
