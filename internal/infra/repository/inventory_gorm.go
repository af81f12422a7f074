package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-erp/internal/domain/inventory"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

type InventoryGormRepository struct {
	lookups
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{lookups: lookups{db: db}, db: db}
}

func (r *InventoryGormRepository) ApplyChange(
	ctx context.Context,
	ch inventory.StockChange,
) (*models.StockMovement, error) {

	var mv *models.StockMovement
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		mv, err = applyStockChange(tx, ch)
		return err
	})
	if err != nil {
		return nil, err
	}
	return mv, nil
}

func (r *InventoryGormRepository) ApplyTransfer(
	ctx context.Context,
	out inventory.StockChange,
	in inventory.StockChange,
) ([]models.StockMovement, error) {

	var moves []models.StockMovement
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// source first: a shortfall aborts before the destination is touched
		outMv, err := applyStockChange(tx, out)
		if err != nil {
			return err
		}
		inMv, err := applyStockChange(tx, in)
		if err != nil {
			return err
		}
		moves = []models.StockMovement{*outMv, *inMv}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return moves, nil
}

func (r *InventoryGormRepository) filtered(ctx context.Context, f inventory.StockFilter) *gorm.DB {
	q := scopeLocations(r.db.WithContext(ctx), "location_id", f.LocationIDs, f.Restricted)
	if f.LocationID != "" {
		q = q.Where("location_id = ?", f.LocationID)
	}
	if f.ProductID != "" {
		q = q.Where("product_id = ?", f.ProductID)
	}
	return q
}

func (r *InventoryGormRepository) ListStock(
	ctx context.Context,
	f inventory.StockFilter,
) ([]models.ProductLocation, error) {

	q := r.filtered(ctx, f).
		Preload("Product").
		Where("is_active = ?", true)

	if f.MaxStock != nil {
		q = q.Where("stock <= ?", *f.MaxStock)
	}

	var rows []models.ProductLocation
	if err := q.Order("location_id ASC, product_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *InventoryGormRepository) ListMovements(
	ctx context.Context,
	f inventory.StockFilter,
	limit int,
) ([]models.StockMovement, error) {

	var moves []models.StockMovement
	if err := r.filtered(ctx, f).
		Order("created_at DESC").
		Limit(limit).
		Find(&moves).Error; err != nil {
		return nil, err
	}
	return moves, nil
}

var _ inventory.Repository = (*InventoryGormRepository)(nil)
