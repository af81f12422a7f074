// Package testsupport holds fixtures shared by package tests: an in-memory
// database with the real schema and seed helpers.
package testsupport

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-erp/internal/audit"
	"github.com/BruksfildServices01/salon-erp/internal/db"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

// NewDB opens a private in-memory sqlite database and migrates every model.
// A single connection keeps all statements on the same memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	return open(t, "file::memory:", 1)
}

// NewFileDB opens a file-backed sqlite database that several connections can
// write to concurrently. Writers take the lock up front and wait for it.
func NewFileDB(t *testing.T, conns int) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "salon.db") +
		"?_busy_timeout=10000&_journal_mode=WAL&_txlock=immediate"
	return open(t, dsn, conns)
}

func open(t *testing.T, dsn string, conns int) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(conns)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func SeedLocation(t *testing.T, gdb *gorm.DB, id, name string) models.Location {
	t.Helper()
	l := models.Location{Base: models.Base{ID: id}, Name: name, IsActive: true}
	require.NoError(t, gdb.Create(&l).Error)
	return l
}

func SeedStaff(t *testing.T, gdb *gorm.DB, id, name string, locationIDs ...string) models.StaffMember {
	t.Helper()
	s := models.StaffMember{Base: models.Base{ID: id}, Name: name, Status: "active"}
	require.NoError(t, gdb.Create(&s).Error)
	for _, loc := range locationIDs {
		require.NoError(t, gdb.Create(&models.StaffLocation{
			StaffID:    id,
			LocationID: loc,
			IsActive:   true,
		}).Error)
	}
	return s
}

func SeedClient(t *testing.T, gdb *gorm.DB, id, name string) models.Client {
	t.Helper()
	c := models.Client{Base: models.Base{ID: id}, Name: name}
	require.NoError(t, gdb.Create(&c).Error)
	return c
}

func SeedService(t *testing.T, gdb *gorm.DB, id, name, price string, duration int) models.Service {
	t.Helper()
	s := models.Service{
		Base:        models.Base{ID: id},
		Name:        name,
		DurationMin: duration,
		Price:       decimal.RequireFromString(price),
		IsActive:    true,
	}
	require.NoError(t, gdb.Create(&s).Error)
	return s
}

func SeedProduct(t *testing.T, gdb *gorm.DB, id, name, price string) models.Product {
	t.Helper()
	p := models.Product{
		Base:     models.Base{ID: id},
		Name:     name,
		SKU:      "SKU-" + id,
		Price:    decimal.RequireFromString(price),
		IsRetail: true,
		IsActive: true,
	}
	require.NoError(t, gdb.Create(&p).Error)
	return p
}

func SeedStock(t *testing.T, gdb *gorm.DB, productID, locationID string, stock int) {
	t.Helper()
	require.NoError(t, gdb.Create(&models.ProductLocation{
		ProductID:  productID,
		LocationID: locationID,
		Stock:      stock,
		IsActive:   true,
	}).Error)
}

// Stock reads the current stock of one row, failing when it does not exist.
func Stock(t *testing.T, gdb *gorm.DB, productID, locationID string) int {
	t.Helper()
	var pl models.ProductLocation
	require.NoError(t, gdb.
		Where("product_id = ? AND location_id = ?", productID, locationID).
		First(&pl).Error)
	return pl.Stock
}

// RecordingSink captures audit events for assertions.
type RecordingSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *RecordingSink) Dispatch(ev audit.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *RecordingSink) Actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Action)
	}
	return out
}
