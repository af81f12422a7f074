package audit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-erp/internal/audit"
	"github.com/BruksfildServices01/salon-erp/internal/models"
	"github.com/BruksfildServices01/salon-erp/internal/testsupport"
)

func TestLoggerWritesRow(t *testing.T) {
	db := testsupport.NewDB(t)
	logger := audit.New(db)

	err := logger.Log(context.Background(), audit.Event{
		LocationID: "loc1",
		UserID:     "u1",
		Action:     "stock_adjusted",
		Entity:     "product",
		EntityID:   "p1",
		Metadata:   map[string]any{"quantity": 5},
	})
	require.NoError(t, err)

	var row models.AuditLog
	require.NoError(t, db.First(&row).Error)
	assert.Equal(t, "stock_adjusted", row.Action)
	require.NotNil(t, row.LocationID)
	assert.Equal(t, "loc1", *row.LocationID)
	assert.JSONEq(t, `{"quantity":5}`, row.Metadata)
}

func TestLoggerLeavesEmptyIDsNull(t *testing.T) {
	db := testsupport.NewDB(t)

	require.NoError(t, audit.New(db).Log(context.Background(), audit.Event{Action: "locations_deduplicated"}))

	var row models.AuditLog
	require.NoError(t, db.First(&row).Error)
	assert.Nil(t, row.LocationID)
	assert.Nil(t, row.UserID)
	assert.Nil(t, row.EntityID)
	assert.Empty(t, row.Metadata)
}

func TestDispatcherDrainsOnClose(t *testing.T) {
	db := testsupport.NewDB(t)
	d := audit.NewDispatcher(audit.New(db))

	for i := 0; i < 5; i++ {
		d.Dispatch(audit.Event{Action: "sale_created", Entity: "transaction"})
	}
	d.Close()

	var count int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&count).Error)
	assert.EqualValues(t, 5, count)
}
