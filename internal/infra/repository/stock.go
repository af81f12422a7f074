package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-erp/internal/domain/inventory"
	"github.com/BruksfildServices01/salon-erp/internal/httperr"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

// applyStockChange changes one (product, location) row with a single
// conditional UPDATE and records the movement. Decrements only match rows
// holding enough stock, so concurrent removals cannot drive stock negative.
func applyStockChange(tx *gorm.DB, ch inventory.StockChange) (*models.StockMovement, error) {
	now := time.Now()

	if ch.Delta < 0 {
		res := tx.Model(&models.ProductLocation{}).
			Where("product_id = ? AND location_id = ?", ch.ProductID, ch.LocationID).
			Where("stock >= ?", -ch.Delta).
			Updates(map[string]any{
				"stock":      gorm.Expr("stock - ?", -ch.Delta),
				"updated_at": now,
			})
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, httperr.ErrBusiness("insufficient_stock")
		}
	} else {
		// upsert: a missing row is created holding the added quantity
		created := models.ProductLocation{
			ProductID:  ch.ProductID,
			LocationID: ch.LocationID,
			Stock:      ch.Delta,
			IsActive:   true,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}, {Name: "location_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"stock":      gorm.Expr("product_locations.stock + ?", ch.Delta),
				"updated_at": now,
			}),
		}).Create(&created).Error
		if err != nil {
			return nil, err
		}
	}

	var current models.ProductLocation
	if err := tx.
		Where("product_id = ? AND location_id = ?", ch.ProductID, ch.LocationID).
		First(&current).Error; err != nil {
		return nil, err
	}

	mv := models.StockMovement{
		ProductID:     ch.ProductID,
		LocationID:    ch.LocationID,
		Type:          ch.MovementType,
		Quantity:      ch.Delta,
		PreviousStock: current.Stock - ch.Delta,
		NewStock:      current.Stock,
		Reason:        ch.Reason,
		Reference:     ch.Reference,
		CreatedBy:     ch.CreatedBy,
	}
	if err := tx.Create(&mv).Error; err != nil {
		return nil, err
	}

	return &mv, nil
}
