package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-erp/internal/httperr"
	"github.com/BruksfildServices01/salon-erp/internal/httpresp"
	"github.com/BruksfildServices01/salon-erp/internal/infra/cache"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

const serviceCategoriesKey = "service-categories"

// CatalogHandler serves service categories and services.
type CatalogHandler struct {
	db    *gorm.DB
	cache cache.Cache
}

func NewCatalogHandler(db *gorm.DB, c cache.Cache) *CatalogHandler {
	return &CatalogHandler{db: db, cache: c}
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CreateServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	CategoryID  string          `json:"categoryId"`
	Duration    int             `json:"duration" binding:"required,min=1"`
	Price       decimal.Decimal `json:"price"`
}

// ======================================================
// CATEGORIES
// ======================================================

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	ctx := c.Request.Context()

	var categories []models.ServiceCategory
	hit, err := h.cache.Get(ctx, serviceCategoriesKey, &categories)
	if err != nil {
		zap.S().Warnw("cache read failed", "key", serviceCategoriesKey, "error", err)
	}
	if hit {
		httpresp.List(c, categories)
		return
	}

	if err := h.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		httperr.FromError(c, err, "failed_to_list_categories")
		return
	}

	if err := h.cache.Set(ctx, serviceCategoriesKey, categories); err != nil {
		zap.S().Warnw("cache write failed", "key", serviceCategoriesKey, "error", err)
	}

	httpresp.List(c, categories)
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	cat := models.ServiceCategory{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&cat).Error; err != nil {
		httperr.FromError(c, err, "failed_to_create_category")
		return
	}

	if err := h.cache.Delete(c.Request.Context(), serviceCategoriesKey); err != nil {
		zap.S().Warnw("cache invalidation failed", "key", serviceCategoriesKey, "error", err)
	}

	httpresp.Created(c, cat)
}

// ======================================================
// SERVICES
// ======================================================

func (h *CatalogHandler) ListServices(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).
		Model(&models.Service{}).
		Preload("Category")

	if c.Query("all") != "true" {
		q = q.Where("is_active = ?", true)
	}
	if v := c.Query("categoryId"); v != "" {
		q = q.Where("category_id = ?", v)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		httperr.FromError(c, err, "failed_to_list_services")
		return
	}

	httpresp.List(c, services)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	if req.Price.IsNegative() {
		httperr.BadRequest(c, "invalid_price", "Price cannot be negative.")
		return
	}

	db := h.db.WithContext(c.Request.Context())

	svc := models.Service{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		DurationMin: req.Duration,
		Price:       req.Price,
		IsActive:    true,
	}

	if req.CategoryID != "" {
		var count int64
		if err := db.Model(&models.ServiceCategory{}).
			Where("id = ?", req.CategoryID).
			Count(&count).Error; err != nil {
			httperr.FromError(c, err, "failed_to_create_service")
			return
		}
		if count == 0 {
			httperr.NotFound(c, "category_not_found", "Service category not found.")
			return
		}
		svc.CategoryID = &req.CategoryID
	}

	if err := db.Create(&svc).Error; err != nil {
		httperr.FromError(c, err, "failed_to_create_service")
		return
	}

	httpresp.Created(c, svc)
}
