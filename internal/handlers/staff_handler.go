package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-erp/internal/access"
	"github.com/BruksfildServices01/salon-erp/internal/httperr"
	"github.com/BruksfildServices01/salon-erp/internal/httpresp"
	"github.com/BruksfildServices01/salon-erp/internal/middleware"
	"github.com/BruksfildServices01/salon-erp/internal/models"
	"github.com/BruksfildServices01/salon-erp/internal/validators"
)

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

type CreateStaffRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Role        string   `json:"role"`
	LocationIDs []string `json:"locationIds"`

	// Password, when set, also creates a login for the staff member.
	Password  string `json:"password"`
	LoginRole string `json:"loginRole"`
}

func (h *StaffHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).
		Model(&models.StaffMember{}).
		Preload("Locations", "is_active = ?", true)

	locationID := c.Query("locationId")
	ids, restricted := middleware.ActorFrom(c).Scope()

	switch {
	case locationID != "":
		if err := middleware.ActorFrom(c).Require(locationID); err != nil {
			httperr.FromError(c, err, "failed_to_list_staff")
			return
		}
		q = q.Where("id IN (?)", h.db.Model(&models.StaffLocation{}).
			Select("staff_id").
			Where("location_id = ? AND is_active = ?", locationID, true))
	case restricted:
		if len(ids) == 0 {
			httpresp.List(c, []models.StaffMember{})
			return
		}
		q = q.Where("id IN (?)", h.db.Model(&models.StaffLocation{}).
			Select("staff_id").
			Where("location_id IN ? AND is_active = ?", ids, true))
	}

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var staff []models.StaffMember
	if err := q.Order("name ASC").Find(&staff).Error; err != nil {
		httperr.FromError(c, err, "failed_to_list_staff")
		return
	}

	httpresp.List(c, staff)
}

// Create adds a staff member and assigns locations in one transaction.
func (h *StaffHandler) Create(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	email, ok := validators.NormalizeEmail(req.Email)
	if !ok {
		httperr.BadRequest(c, "invalid_email", "Invalid email address.")
		return
	}
	if req.Password != "" && email == "" {
		httperr.BadRequest(c, "missing_email", "A login requires an email address.")
		return
	}

	loginRole := req.LoginRole
	switch loginRole {
	case "":
		loginRole = access.RoleStaff
	case access.RoleStaff, access.RoleManager, access.RoleAdmin:
	default:
		httperr.BadRequest(c, "invalid_role", "Unknown login role.")
		return
	}

	member := models.StaffMember{
		Name:   strings.TrimSpace(req.Name),
		Email:  email,
		Phone:  req.Phone,
		Role:   req.Role,
		Status: "active",
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if len(req.LocationIDs) > 0 {
			var found int64
			if err := tx.Model(&models.Location{}).
				Where("id IN ?", req.LocationIDs).
				Count(&found).Error; err != nil {
				return err
			}
			if int(found) != len(dedupe(req.LocationIDs)) {
				return httperr.ErrBusiness("location_not_found")
			}
		}

		if err := tx.Create(&member).Error; err != nil {
			return err
		}

		for _, id := range dedupe(req.LocationIDs) {
			sl := models.StaffLocation{StaffID: member.ID, LocationID: id, IsActive: true}
			if err := tx.Create(&sl).Error; err != nil {
				return err
			}
			member.Locations = append(member.Locations, sl)
		}

		if req.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user := models.User{
				Name:         member.Name,
				Email:        email,
				PasswordHash: string(hash),
				Role:         loginRole,
				StaffID:      &member.ID,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_staff")
		return
	}

	httpresp.Created(c, member)
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
