package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-erp/internal/httperr"
	"github.com/BruksfildServices01/salon-erp/internal/httpresp"
	"github.com/BruksfildServices01/salon-erp/internal/imaging"
	"github.com/BruksfildServices01/salon-erp/internal/infra/storage"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

const maxImageBytes = 8 << 20

type ProductHandler struct {
	db    *gorm.DB
	store storage.Store
}

// NewProductHandler takes a nil store when image storage is not configured.
func NewProductHandler(db *gorm.DB, store storage.Store) *ProductHandler {
	return &ProductHandler{db: db, store: store}
}

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category"`
	Type        string          `json:"type"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	IsRetail    *bool           `json:"isRetail"`
}

// ======================================================
// LIST
// ======================================================
func (h *ProductHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Model(&models.Product{})

	if c.Query("all") != "true" {
		q = q.Where("is_active = ?", true)
	}
	if v := c.Query("category"); v != "" {
		q = q.Where("category = ?", v)
	}
	if v := strings.ToLower(strings.TrimSpace(c.Query("query"))); v != "" {
		like := "%" + v + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", like, like)
	}

	var products []models.Product
	if err := q.Order("name ASC").Find(&products).Error; err != nil {
		httperr.FromError(c, err, "failed_to_list_products")
		return
	}

	httpresp.List(c, products)
}

// ======================================================
// CREATE
// ======================================================
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	if req.Price.IsNegative() || req.Cost.IsNegative() {
		httperr.BadRequest(c, "invalid_price", "Price and cost cannot be negative.")
		return
	}

	retail := true
	if req.IsRetail != nil {
		retail = *req.IsRetail
	}

	p := models.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		SKU:         strings.TrimSpace(req.SKU),
		Category:    req.Category,
		Type:        req.Type,
		Price:       req.Price,
		Cost:        req.Cost,
		IsRetail:    retail,
		IsActive:    true,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&p).Error; err != nil {
		httperr.FromError(c, err, "failed_to_create_product")
		return
	}

	httpresp.Created(c, p)
}

// ======================================================
// IMAGE
// ======================================================

// UploadImage takes a multipart "image" field, stores it as a resized webp
// and records the public URL on the product.
func (h *ProductHandler) UploadImage(c *gin.Context) {
	if h.store == nil {
		httperr.FromError(c, httperr.ErrBusiness("storage_disabled"), "")
		return
	}

	ctx := c.Request.Context()
	db := h.db.WithContext(ctx)

	var p models.Product
	if err := db.First(&p, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "product_not_found", "Product not found.")
			return
		}
		httperr.FromError(c, err, "failed_to_load_product")
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Multipart field \"image\" is required.")
		return
	}
	if fh.Size > maxImageBytes {
		httperr.BadRequest(c, "image_too_large", "Image exceeds the upload limit.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.FromError(c, err, "failed_to_read_image")
		return
	}
	defer f.Close()

	body, err := imaging.ToWebP(f, imaging.DefaultMaxSide)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Unsupported or corrupt image.")
		return
	}

	key := fmt.Sprintf("products/%s/%s.webp", p.ID, uuid.NewString())
	url, err := h.store.Put(ctx, key, body, "image/webp")
	if err != nil {
		httperr.FromError(c, err, "failed_to_store_image")
		return
	}

	if err := db.Model(&p).Update("image_url", url).Error; err != nil {
		httperr.FromError(c, err, "failed_to_update_product")
		return
	}
	p.ImageURL = url

	httpresp.OK(c, p)
}
