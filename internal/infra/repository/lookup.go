package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-erp/internal/httperr"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

// first loads one row by primary key, turning a missing row into the given
// business error code.
func first[T any](ctx context.Context, db *gorm.DB, id string, notFound string) (*T, error) {
	var out T
	if err := db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(notFound)
		}
		return nil, err
	}
	return &out, nil
}

// lookups is embedded by every repository that needs reference data.
type lookups struct {
	db *gorm.DB
}

func (l lookups) GetLocation(ctx context.Context, id string) (*models.Location, error) {
	return first[models.Location](ctx, l.db, id, "location_not_found")
}

func (l lookups) GetClient(ctx context.Context, id string) (*models.Client, error) {
	return first[models.Client](ctx, l.db, id, "client_not_found")
}

func (l lookups) GetService(ctx context.Context, id string) (*models.Service, error) {
	return first[models.Service](ctx, l.db, id, "service_not_found")
}

func (l lookups) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return first[models.Product](ctx, l.db, id, "product_not_found")
}

func (l lookups) GetStaff(ctx context.Context, id string) (*models.StaffMember, error) {
	var staff models.StaffMember
	err := l.db.WithContext(ctx).
		Preload("Locations", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("staff_not_found")
		}
		return nil, err
	}
	return &staff, nil
}

func (l lookups) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	var ap models.Appointment
	err := l.db.WithContext(ctx).
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		}).
		Where("id = ?", id).
		First(&ap).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}
	return &ap, nil
}

// scopeLocations limits q to the given locations when restricted is set.
func scopeLocations(q *gorm.DB, column string, ids []string, restricted bool) *gorm.DB {
	if !restricted {
		return q
	}
	if len(ids) == 0 {
		return q.Where("1 = 0")
	}
	return q.Where(column+" IN ?", ids)
}
