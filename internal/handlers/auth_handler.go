package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-erp/internal/config"
	"github.com/BruksfildServices01/salon-erp/internal/httperr"
	"github.com/BruksfildServices01/salon-erp/internal/httpresp"
	"github.com/BruksfildServices01/salon-erp/internal/middleware"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		httperr.FromError(c, err, "internal_error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.FromError(c, err, "failed_to_generate_token")
		return
	}

	httpresp.OK(c, gin.H{
		"user":  user,
		"token": token,
	})
}

// Me returns the caller as seen by the API, including reachable locations.
func (h *AuthHandler) Me(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Staff").
		First(&user, "id = ?", actor.UserID).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		httperr.FromError(c, err, "failed_to_load_user")
		return
	}

	locations := actor.LocationIDs
	if locations == nil {
		locations = []string{}
	}

	httpresp.OK(c, gin.H{
		"user":        user,
		"role":        actor.Role,
		"isAdmin":     actor.IsAdmin(),
		"locationIds": locations,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"name": user.Name,
		"exp":  now.Add(tokenTTL).Unix(),
		"iat":  now.Unix(),
	}
	if user.StaffID != nil {
		claims["staffId"] = *user.StaffID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
