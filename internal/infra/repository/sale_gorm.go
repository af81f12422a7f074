package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-erp/internal/domain/sale"
	"github.com/BruksfildServices01/salon-erp/internal/httperr"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

type SaleGormRepository struct {
	lookups
	db *gorm.DB
}

func NewSaleGormRepository(db *gorm.DB) *SaleGormRepository {
	return &SaleGormRepository{lookups: lookups{db: db}, db: db}
}

// CreateSale applies stock changes, the transaction row, loyalty points and
// the optional appointment completion atomically.
func (r *SaleGormRepository) CreateSale(ctx context.Context, w sale.Write) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ch := range w.StockChanges {
			if _, err := applyStockChange(tx, ch); err != nil {
				return err
			}
		}

		if err := tx.Create(w.Transaction).Error; err != nil {
			return err
		}

		if w.LoyaltyPoints > 0 && w.Transaction.ClientID != nil {
			if err := tx.Model(&models.Client{}).
				Where("id = ?", *w.Transaction.ClientID).
				Update("loyalty_points", gorm.Expr("loyalty_points + ?", w.LoyaltyPoints)).
				Error; err != nil {
				return err
			}
		}

		if sc := w.StatusChange; sc != nil {
			if err := saveTransition(tx, sc.Appointment, sc.Prev, sc.Entry); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *SaleGormRepository) GetSale(ctx context.Context, id string) (*models.Transaction, error) {
	var t models.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("sale_not_found")
		}
		return nil, err
	}
	return &t, nil
}

func (r *SaleGormRepository) filtered(ctx context.Context, f sale.ListFilter) *gorm.DB {
	q := scopeLocations(
		r.db.WithContext(ctx).Model(&models.Transaction{}),
		"location_id", f.LocationIDs, f.Restricted,
	)
	if f.LocationID != "" {
		q = q.Where("location_id = ?", f.LocationID)
	}
	if f.ClientID != "" {
		q = q.Where("client_id = ?", f.ClientID)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}
	return q
}

func (r *SaleGormRepository) ListSales(ctx context.Context, f sale.ListFilter) ([]models.Transaction, error) {
	var out []models.Transaction
	if err := r.filtered(ctx, f).
		Preload("Items").
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SaleGormRepository) Summary(ctx context.Context, f sale.ListFilter) ([]sale.LocationSummary, error) {
	var rows []sale.LocationSummary
	if err := r.filtered(ctx, f).
		Select("location_id, COUNT(*) AS count, COALESCE(SUM(total), 0) AS total").
		Group("location_id").
		Order("location_id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SaleGormRepository) SetPaymentReference(ctx context.Context, id, reference, url string) error {
	return r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payment_reference": reference,
			"payment_url":       url,
		}).Error
}

var _ sale.Repository = (*SaleGormRepository)(nil)
