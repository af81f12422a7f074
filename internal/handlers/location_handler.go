package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-erp/internal/httperr"
	"github.com/BruksfildServices01/salon-erp/internal/httpresp"
	"github.com/BruksfildServices01/salon-erp/internal/middleware"
	"github.com/BruksfildServices01/salon-erp/internal/models"
	"github.com/BruksfildServices01/salon-erp/internal/validators"
)

type LocationHandler struct {
	db *gorm.DB
}

func NewLocationHandler(db *gorm.DB) *LocationHandler {
	return &LocationHandler{db: db}
}

type CreateLocationRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// List returns the active locations the caller can reach; ?all=true
// includes inactive ones.
func (h *LocationHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Model(&models.Location{})

	if c.Query("all") != "true" {
		q = q.Where("is_active = ?", true)
	}

	if ids, restricted := middleware.ActorFrom(c).Scope(); restricted {
		if len(ids) == 0 {
			httpresp.List(c, []models.Location{})
			return
		}
		q = q.Where("id IN ?", ids)
	}

	var locations []models.Location
	if err := q.Order("name ASC").Find(&locations).Error; err != nil {
		httperr.FromError(c, err, "failed_to_list_locations")
		return
	}

	httpresp.List(c, locations)
}

func (h *LocationHandler) Create(c *gin.Context) {
	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		httperr.BadRequest(c, "missing_name", "Location name is required.")
		return
	}

	email, ok := validators.NormalizeEmail(req.Email)
	if !ok {
		httperr.BadRequest(c, "invalid_email", "Invalid email address.")
		return
	}

	db := h.db.WithContext(c.Request.Context())

	var count int64
	if err := db.Model(&models.Location{}).
		Where("LOWER(name) = ? AND is_active = ?", strings.ToLower(name), true).
		Count(&count).Error; err != nil {
		httperr.FromError(c, err, "failed_to_create_location")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "duplicate", "A location with this name already exists.")
		return
	}

	loc := models.Location{
		Name:     name,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		ZipCode:  req.ZipCode,
		Country:  req.Country,
		Phone:    req.Phone,
		Email:    email,
		IsActive: true,
	}
	if err := db.Create(&loc).Error; err != nil {
		httperr.FromError(c, err, "failed_to_create_location")
		return
	}

	httpresp.Created(c, loc)
}
