package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-erp/internal/access"
	"github.com/BruksfildServices01/salon-erp/internal/httperr"
	infraRepo "github.com/BruksfildServices01/salon-erp/internal/infra/repository"
	"github.com/BruksfildServices01/salon-erp/internal/models"
	"github.com/BruksfildServices01/salon-erp/internal/testsupport"
)

var admin = access.Actor{UserID: "u-admin", Name: "Admin", Role: access.RoleAdmin}

type fixture struct {
	db       *gorm.DB
	sink     *testsupport.RecordingSink
	adjust   *AdjustStock
	transfer *TransferStock
	list     *ListStock
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := testsupport.NewDB(t)
	testsupport.SeedLocation(t, db, "loc1", "Downtown")
	testsupport.SeedLocation(t, db, "loc2", "Uptown")
	testsupport.SeedProduct(t, db, "p1", "Shampoo", "25.00")

	repo := infraRepo.NewInventoryGormRepository(db)
	sink := &testsupport.RecordingSink{}
	return fixture{
		db:       db,
		sink:     sink,
		adjust:   NewAdjustStock(repo, sink),
		transfer: NewTransferStock(repo, sink),
		list:     NewListStock(repo),
	}
}

func (f fixture) stock(t *testing.T, loc string) int {
	return testsupport.Stock(t, f.db, "p1", loc)
}

func TestAdjustAdd(t *testing.T) {
	f := newFixture(t)
	testsupport.SeedStock(t, f.db, "p1", "loc1", 10)

	mv, err := f.adjust.Execute(context.Background(), admin, AdjustStockInput{
		ProductID:      "p1",
		LocationID:     "loc1",
		AdjustmentType: "add",
		Quantity:       50,
		Reason:         "delivery",
	})
	require.NoError(t, err)

	assert.Equal(t, 60, mv.NewStock)
	assert.Equal(t, 60, f.stock(t, "loc1"))
	assert.Equal(t, "Admin", mv.CreatedBy)
	assert.Equal(t, []string{"stock_adjusted"}, f.sink.Actions())
}

func TestAdjustRemoveInsufficient(t *testing.T) {
	f := newFixture(t)
	testsupport.SeedStock(t, f.db, "p1", "loc1", 10)

	_, err := f.adjust.Execute(context.Background(), admin, AdjustStockInput{
		ProductID:      "p1",
		LocationID:     "loc1",
		AdjustmentType: "remove",
		Quantity:       20,
	})
	assert.True(t, httperr.IsBusiness(err, "insufficient_stock"))
	assert.Equal(t, 10, f.stock(t, "loc1"))
	assert.Empty(t, f.sink.Actions())
}

func TestAdjustValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	base := AdjustStockInput{ProductID: "p1", LocationID: "loc1", AdjustmentType: "add", Quantity: 1}

	in := base
	in.AdjustmentType = "set"
	_, err := f.adjust.Execute(ctx, admin, in)
	assert.True(t, httperr.IsBusiness(err, "invalid_adjustment"))

	in = base
	in.Quantity = 0
	_, err = f.adjust.Execute(ctx, admin, in)
	assert.True(t, httperr.IsBusiness(err, "invalid_quantity"))

	in = base
	in.ProductID = "nope"
	_, err = f.adjust.Execute(ctx, admin, in)
	assert.True(t, httperr.IsBusiness(err, "product_not_found"))

	staff := access.Actor{UserID: "u2", Role: access.RoleStaff, LocationIDs: []string{"loc2"}}
	_, err = f.adjust.Execute(ctx, staff, base)
	assert.True(t, httperr.IsBusiness(err, "location_forbidden"))
}

func TestTransfer(t *testing.T) {
	f := newFixture(t)
	testsupport.SeedStock(t, f.db, "p1", "loc1", 60)
	testsupport.SeedStock(t, f.db, "p1", "loc2", 8)

	res, err := f.transfer.Execute(context.Background(), admin, TransferStockInput{
		ProductID:      "p1",
		FromLocationID: "loc1",
		ToLocationID:   "loc2",
		Quantity:       5,
	})
	require.NoError(t, err)

	assert.Equal(t, 55, f.stock(t, "loc1"))
	assert.Equal(t, 13, f.stock(t, "loc2"))
	assert.NotEmpty(t, res.Reference)
	assert.Equal(t, res.Reference, res.From.Reference)
	assert.Equal(t, res.Reference, res.To.Reference)

	var moves int64
	require.NoError(t, f.db.Model(&models.StockMovement{}).
		Where("reference = ?", res.Reference).
		Count(&moves).Error)
	assert.EqualValues(t, 2, moves)
}

func TestTransferRules(t *testing.T) {
	f := newFixture(t)
	testsupport.SeedStock(t, f.db, "p1", "loc1", 3)
	ctx := context.Background()

	_, err := f.transfer.Execute(ctx, admin, TransferStockInput{
		ProductID: "p1", FromLocationID: "loc1", ToLocationID: "loc1", Quantity: 1,
	})
	assert.True(t, httperr.IsBusiness(err, "same_location"))

	_, err = f.transfer.Execute(ctx, admin, TransferStockInput{
		ProductID: "p1", FromLocationID: "loc1", ToLocationID: "loc2", Quantity: 5,
	})
	assert.True(t, httperr.IsBusiness(err, "insufficient_stock"))
	assert.Equal(t, 3, f.stock(t, "loc1"))

	var dest int64
	require.NoError(t, f.db.Model(&models.ProductLocation{}).
		Where("location_id = ?", "loc2").
		Count(&dest).Error)
	assert.Zero(t, dest, "failed transfer must not create the destination row")

	staff := access.Actor{UserID: "u2", Role: access.RoleStaff, LocationIDs: []string{"loc1"}}
	_, err = f.transfer.Execute(ctx, staff, TransferStockInput{
		ProductID: "p1", FromLocationID: "loc1", ToLocationID: "loc2", Quantity: 1,
	})
	assert.True(t, httperr.IsBusiness(err, "location_forbidden"))
}

func TestLowStock(t *testing.T) {
	f := newFixture(t)
	testsupport.SeedProduct(t, f.db, "p2", "Wax", "15.00")
	testsupport.SeedStock(t, f.db, "p1", "loc1", 2)
	testsupport.SeedStock(t, f.db, "p2", "loc1", 30)

	rows, err := f.list.LowStock(context.Background(), admin, "loc1", 5)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "p1", rows[0].ProductID)
}
