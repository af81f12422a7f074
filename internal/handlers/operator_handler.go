package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-erp/internal/audit"
	"github.com/BruksfildServices01/salon-erp/internal/httperr"
	"github.com/BruksfildServices01/salon-erp/internal/httpresp"
	"github.com/BruksfildServices01/salon-erp/internal/middleware"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// OperatorHandler serves the status and maintenance endpoints.
type OperatorHandler struct {
	db      *gorm.DB
	audit   audit.Sink
	started time.Time
}

func NewOperatorHandler(db *gorm.DB, sink audit.Sink) *OperatorHandler {
	return &OperatorHandler{db: db, audit: sink, started: time.Now()}
}

func (h *OperatorHandler) Health(c *gin.Context) {
	httpresp.OK(c, gin.H{"status": "ok"})
}

func (h *OperatorHandler) Status(c *gin.Context) {
	dbStatus := "ok"
	if err := h.ping(c.Request.Context()); err != nil {
		zap.S().Warnw("database ping failed", "error", err)
		dbStatus = "unreachable"
	}

	httpresp.OK(c, gin.H{
		"status":   "ok",
		"version":  Version,
		"uptime":   time.Since(h.started).Round(time.Second).String(),
		"database": dbStatus,
		"time":     time.Now().UTC(),
	})
}

func (h *OperatorHandler) ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// TestDB reports a row count per core table.
func (h *OperatorHandler) TestDB(c *gin.Context) {
	tables := []struct {
		name  string
		model any
	}{
		{"locations", &models.Location{}},
		{"staff", &models.StaffMember{}},
		{"clients", &models.Client{}},
		{"services", &models.Service{}},
		{"products", &models.Product{}},
		{"productLocations", &models.ProductLocation{}},
		{"appointments", &models.Appointment{}},
		{"transactions", &models.Transaction{}},
	}

	db := h.db.WithContext(c.Request.Context())
	counts := make(gin.H, len(tables))
	for _, t := range tables {
		var n int64
		if err := db.Model(t.model).Count(&n).Error; err != nil {
			httperr.FromError(c, err, "test_db_failed")
			return
		}
		counts[t.name] = n
	}

	httpresp.OK(c, gin.H{
		"connected": true,
		"counts":    counts,
	})
}

// DeleteDuplicates deactivates active locations whose name repeats one
// created earlier. Rows are never removed.
func (h *OperatorHandler) DeleteDuplicates(c *gin.Context) {
	var locations []models.Location
	db := h.db.WithContext(c.Request.Context())

	if err := db.
		Where("is_active = ?", true).
		Order("created_at ASC").
		Order("id ASC").
		Find(&locations).Error; err != nil {
		httperr.FromError(c, err, "failed_to_load_locations")
		return
	}

	kept := make(map[string]string, len(locations))
	var dupes []string
	for _, l := range locations {
		key := strings.ToLower(strings.TrimSpace(l.Name))
		if _, ok := kept[key]; ok {
			dupes = append(dupes, l.ID)
			continue
		}
		kept[key] = l.ID
	}

	if len(dupes) > 0 {
		if err := db.Model(&models.Location{}).
			Where("id IN ?", dupes).
			Update("is_active", false).Error; err != nil {
			httperr.FromError(c, err, "failed_to_deactivate_duplicates")
			return
		}

		h.audit.Dispatch(audit.Event{
			UserID:   middleware.ActorFrom(c).UserID,
			Action:   "locations_deduplicated",
			Entity:   "location",
			Metadata: map[string]any{"deactivated": dupes},
		})
	}

	if dupes == nil {
		dupes = []string{}
	}
	httpresp.OK(c, gin.H{
		"deactivated": dupes,
		"count":       len(dupes),
	})
}

// ResetLocations is retired; it used to wipe and reseed locations.
func (h *OperatorHandler) ResetLocations(c *gin.Context) {
	httperr.FromError(c, httperr.ErrBusiness("deprecated"), "")
}
