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

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type CreateClientRequest struct {
	Name                string `json:"name" binding:"required"`
	Phone               string `json:"phone"`
	Email               string `json:"email"`
	Notes               string `json:"notes"`
	PreferredLocationID string `json:"preferredLocationId"`
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context()).Model(&models.Client{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("name ASC").
		Limit(intQuery(c, "limit", 200)).
		Find(&clients).Error; err != nil {

		httperr.FromError(c, err, "failed_to_list_clients")
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// CREATE CLIENT
// ======================================================
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	email, ok := validators.NormalizeEmail(req.Email)
	if !ok {
		httperr.BadRequest(c, "invalid_email", "Invalid email address.")
		return
	}

	client := models.Client{
		Name:  strings.TrimSpace(req.Name),
		Phone: strings.TrimSpace(req.Phone),
		Email: email,
		Notes: req.Notes,
	}

	if req.PreferredLocationID != "" {
		if err := middleware.ActorFrom(c).Require(req.PreferredLocationID); err != nil {
			httperr.FromError(c, err, "failed_to_create_client")
			return
		}
		client.PreferredLocationID = &req.PreferredLocationID
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&client).Error; err != nil {
		httperr.FromError(c, err, "failed_to_create_client")
		return
	}

	httpresp.Created(c, client)
}
