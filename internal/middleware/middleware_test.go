package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BruksfildServices01/salon-erp/internal/access"
	"github.com/BruksfildServices01/salon-erp/internal/config"
	"github.com/BruksfildServices01/salon-erp/internal/middleware"
	"github.com/BruksfildServices01/salon-erp/internal/testsupport"
)

const secret = "mw-secret"

func sign(t *testing.T, claims jwt.MapClaims, key string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return s
}

func TestAuthMiddlewareBuildsActor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testsupport.NewDB(t)
	testsupport.SeedLocation(t, db, "loc1", "Downtown")
	testsupport.SeedLocation(t, db, "loc2", "Uptown")
	testsupport.SeedStaff(t, db, "s1", "Bia", "loc1", "loc2")

	var got access.Actor
	r := gin.New()
	r.Use(middleware.AuthMiddleware(&config.Config{JWTSecret: secret}, db))
	r.GET("/who", func(c *gin.Context) {
		got = middleware.ActorFrom(c)
		c.Status(http.StatusOK)
	})

	tok := sign(t, jwt.MapClaims{
		"sub":     "u1",
		"role":    access.RoleStaff,
		"staffId": "s1",
		"name":    "Bia",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}, secret)

	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "Bia", got.Label())
	assert.ElementsMatch(t, []string{"loc1", "loc2"}, got.LocationIDs)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testsupport.NewDB(t)

	r := gin.New()
	r.Use(middleware.AuthMiddleware(&config.Config{JWTSecret: secret}, db))
	r.GET("/who", func(c *gin.Context) { c.Status(http.StatusOK) })

	valid := jwt.MapClaims{"sub": "u1", "role": "admin", "exp": time.Now().Add(time.Hour).Unix()}
	expired := jwt.MapClaims{"sub": "u1", "role": "admin", "exp": time.Now().Add(-time.Hour).Unix()}
	noRole := jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(time.Hour).Unix()}

	headers := map[string]string{
		"missing":     "",
		"not bearer":  "Basic abc",
		"wrong key":   "Bearer " + sign(t, valid, "other"),
		"expired":     "Bearer " + sign(t, expired, secret),
		"no role":     "Bearer " + sign(t, noRole, secret),
		"garbage jwt": "Bearer abc.def.ghi",
	}

	for name, h := range headers {
		req := httptest.NewRequest(http.MethodGet, "/who", nil)
		if h != "" {
			req.Header.Set("Authorization", h)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
	}
}

func TestAdminOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for role, want := range map[string]int{
		access.RoleAdmin: http.StatusOK,
		access.RoleStaff: http.StatusForbidden,
	} {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Set(middleware.ContextActor, access.Actor{UserID: "u", Role: role})
		}, middleware.AdminOnly())
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, want, w.Code, role)
	}
}

func TestRequestLoggerTagsAndLogs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)

	r := gin.New()
	r.Use(middleware.RequestLogger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusConflict) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(middleware.HeaderRequestID))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bad", nil))
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "req-123", entries[0].ContextMap()["request_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CORSMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://app.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), middleware.HeaderRequestID)
}
