package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-erp/internal/httperr"
	"github.com/BruksfildServices01/salon-erp/internal/timezone"
)

// parseTimeQuery reads an optional RFC3339 or YYYY-MM-DD query value. A bare
// "to" date covers the whole day.
func parseTimeQuery(c *gin.Context, key string) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}
	if t, err := timezone.ParseDay(raw); err == nil {
		if key == "to" {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return &t, true
	}
	httperr.BadRequest(c, "invalid_date", "Invalid "+key+" date.")
	return nil, false
}

func intQuery(c *gin.Context, key string, def int) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil {
		return v
	}
	return def
}

// invalidRequest answers a failed bind. Binding details stay in the log.
func invalidRequest(c *gin.Context, err error) {
	zap.S().Debugw("invalid request body",
		"path", c.FullPath(),
		"error", err,
	)
	httperr.BadRequest(c, "invalid_request", "Invalid request body.")
}
