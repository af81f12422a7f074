package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-erp/internal/models"
	"github.com/BruksfildServices01/salon-erp/internal/testsupport"
)

func TestInactiveFlagsArePersisted(t *testing.T) {
	db := testsupport.NewDB(t)

	loc := models.Location{Name: "Closed branch"}
	require.NoError(t, db.Create(&loc).Error)

	product := models.Product{Name: "Salon-only gel", Price: decimal.NewFromInt(10)}
	require.NoError(t, db.Create(&product).Error)

	row := models.ProductLocation{ProductID: product.ID, LocationID: loc.ID}
	require.NoError(t, db.Create(&row).Error)

	svc := models.Service{Name: "Retired cut", DurationMin: 30, Price: decimal.NewFromInt(40)}
	require.NoError(t, db.Create(&svc).Error)

	var gotLoc models.Location
	require.NoError(t, db.First(&gotLoc, "id = ?", loc.ID).Error)
	assert.False(t, gotLoc.IsActive)

	var gotProduct models.Product
	require.NoError(t, db.First(&gotProduct, "id = ?", product.ID).Error)
	assert.False(t, gotProduct.IsActive)
	assert.False(t, gotProduct.IsRetail)

	var gotRow models.ProductLocation
	require.NoError(t, db.First(&gotRow, "id = ?", row.ID).Error)
	assert.False(t, gotRow.IsActive)

	var gotSvc models.Service
	require.NoError(t, db.First(&gotSvc, "id = ?", svc.ID).Error)
	assert.False(t, gotSvc.IsActive)
}
