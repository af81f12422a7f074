package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-erp/internal/httperr"
	"github.com/BruksfildServices01/salon-erp/internal/httpresp"
	"github.com/BruksfildServices01/salon-erp/internal/middleware"
	"github.com/BruksfildServices01/salon-erp/internal/models"
	ucAppointment "github.com/BruksfildServices01/salon-erp/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	updateStatusUC *ucAppointment.UpdateAppointmentStatus
	listUC         *ucAppointment.ListAppointments
	getUC          *ucAppointment.GetAppointment
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateStatusUC *ucAppointment.UpdateAppointmentStatus,
	listUC *ucAppointment.ListAppointments,
	getUC *ucAppointment.GetAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		updateStatusUC: updateStatusUC,
		listUC:         listUC,
		getUC:          getUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	LocationID string           `json:"locationId"`
	ClientID   string           `json:"clientId"`
	StaffID    string           `json:"staffId" binding:"required"`
	ServiceID  string           `json:"serviceId"`
	Date       string           `json:"date" binding:"required"`
	Duration   int              `json:"duration" binding:"required,min=1"`
	Type       string           `json:"type"`
	Notes      string           `json:"notes"`
	Price      *decimal.Decimal `json:"price"`

	AdditionalServices []models.AppointmentItem `json:"additionalServices"`
	Products           []models.AppointmentItem `json:"products"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		middleware.ActorFrom(c),
		ucAppointment.CreateAppointmentInput{
			LocationID:         req.LocationID,
			ClientID:           req.ClientID,
			StaffID:            req.StaffID,
			ServiceID:          req.ServiceID,
			Date:               req.Date,
			Duration:           req.Duration,
			Type:               req.Type,
			Notes:              req.Notes,
			Price:              req.Price,
			AdditionalServices: req.AdditionalServices,
			Products:           req.Products,
		},
	)
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_appointment")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	ap, err := h.updateStatusUC.Execute(
		c.Request.Context(),
		middleware.ActorFrom(c),
		c.Param("id"),
		req.Status,
		req.Note,
	)
	if err != nil {
		httperr.FromError(c, err, "failed_to_update_appointment")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	from, ok := parseTimeQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseTimeQuery(c, "to")
	if !ok {
		return
	}

	apps, err := h.listUC.Execute(
		c.Request.Context(),
		middleware.ActorFrom(c),
		ucAppointment.ListAppointmentsInput{
			LocationID: c.Query("locationId"),
			StaffID:    c.Query("staffId"),
			ClientID:   c.Query("clientId"),
			Status:     c.Query("status"),
			From:       from,
			To:         to,
		},
	)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_appointments")
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.getUC.Execute(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err, "failed_to_get_appointment")
		return
	}
	httpresp.OK(c, ap)
}
