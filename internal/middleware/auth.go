package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-erp/internal/access"
	"github.com/BruksfildServices01/salon-erp/internal/config"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

const ContextActor = "actor"

// AuthMiddleware validates the bearer token and stores an access.Actor in
// the gin context. Location access is read from StaffLocation rows on every
// request so revoked assignments apply immediately.
func AuthMiddleware(cfg *config.Config, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		staffID, _ := claims["staffId"].(string)
		name, _ := claims["name"].(string)
		if userID == "" || role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		actor := access.Actor{
			UserID:  userID,
			StaffID: staffID,
			Name:    name,
			Role:    role,
		}

		if !actor.IsAdmin() && staffID != "" {
			var ids []string
			if err := db.WithContext(c.Request.Context()).
				Model(&models.StaffLocation{}).
				Where("staff_id = ? AND is_active = ?", staffID, true).
				Pluck("location_id", &ids).Error; err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_access"})
				return
			}
			actor.LocationIDs = ids
		}

		c.Set(ContextActor, actor)
		c.Next()
	}
}

// ActorFrom returns the actor stored by AuthMiddleware.
func ActorFrom(c *gin.Context) access.Actor {
	if v, ok := c.Get(ContextActor); ok {
		if a, ok := v.(access.Actor); ok {
			return a
		}
	}
	return access.Actor{}
}

// AdminOnly rejects non-admin actors.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ActorFrom(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error_code": "admin_only", "message": "Only administrators may do this."})
			return
		}
		c.Next()
	}
}
