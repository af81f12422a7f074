package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-erp/internal/httperr"
	"github.com/BruksfildServices01/salon-erp/internal/httpresp"
	"github.com/BruksfildServices01/salon-erp/internal/middleware"
	ucSale "github.com/BruksfildServices01/salon-erp/internal/usecase/sale"
)

// ======================================================
// HANDLER
// ======================================================

type SaleHandler struct {
	createUC      *ucSale.CreateSale
	listUC        *ucSale.ListSales
	paymentLinkUC *ucSale.CreatePaymentLink
}

func NewSaleHandler(
	createUC *ucSale.CreateSale,
	listUC *ucSale.ListSales,
	paymentLinkUC *ucSale.CreatePaymentLink,
) *SaleHandler {
	return &SaleHandler{
		createUC:      createUC,
		listUC:        listUC,
		paymentLinkUC: paymentLinkUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SaleItemRequest struct {
	Type      string           `json:"type" binding:"required"`
	ID        string           `json:"id" binding:"required"`
	Quantity  int              `json:"quantity" binding:"required,min=1"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
	Discount  decimal.Decimal  `json:"discount"`
	StaffID   string           `json:"staffId"`
}

type CreateSaleRequest struct {
	LocationID    string            `json:"locationId" binding:"required"`
	ClientID      string            `json:"clientId"`
	StaffID       string            `json:"staffId"`
	AppointmentID string            `json:"appointmentId"`
	PaymentMethod string            `json:"paymentMethod"`
	Notes         string            `json:"notes"`
	Discount      decimal.Decimal   `json:"discount"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ======================================================
// WRITE
// ======================================================

func (h *SaleHandler) Create(c *gin.Context) {
	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	items := make([]ucSale.SaleItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ucSale.SaleItemInput{
			Type:      it.Type,
			ID:        it.ID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Discount:  it.Discount,
			StaffID:   it.StaffID,
		})
	}

	t, err := h.createUC.Execute(c.Request.Context(), middleware.ActorFrom(c), ucSale.CreateSaleInput{
		LocationID:    req.LocationID,
		ClientID:      req.ClientID,
		StaffID:       req.StaffID,
		AppointmentID: req.AppointmentID,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		Discount:      req.Discount,
		Items:         items,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_sale")
		return
	}

	httpresp.Created(c, t)
}

func (h *SaleHandler) PaymentLink(c *gin.Context) {
	t, err := h.paymentLinkUC.Execute(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_payment_link")
		return
	}

	httpresp.OK(c, gin.H{
		"id":               t.ID,
		"paymentReference": t.PaymentReference,
		"paymentUrl":       t.PaymentURL,
	})
}

// ======================================================
// READ
// ======================================================

func (h *SaleHandler) listInput(c *gin.Context) (ucSale.ListSalesInput, bool) {
	from, ok := parseTimeQuery(c, "from")
	if !ok {
		return ucSale.ListSalesInput{}, false
	}
	to, ok := parseTimeQuery(c, "to")
	if !ok {
		return ucSale.ListSalesInput{}, false
	}
	return ucSale.ListSalesInput{
		LocationID: c.Query("locationId"),
		ClientID:   c.Query("clientId"),
		Type:       c.Query("type"),
		From:       from,
		To:         to,
	}, true
}

func (h *SaleHandler) List(c *gin.Context) {
	in, ok := h.listInput(c)
	if !ok {
		return
	}

	sales, err := h.listUC.Execute(c.Request.Context(), middleware.ActorFrom(c), in)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_sales")
		return
	}
	httpresp.List(c, sales)
}

func (h *SaleHandler) Get(c *gin.Context) {
	t, err := h.listUC.Get(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err, "failed_to_get_sale")
		return
	}
	httpresp.OK(c, t)
}

func (h *SaleHandler) Summary(c *gin.Context) {
	in, ok := h.listInput(c)
	if !ok {
		return
	}

	rows, err := h.listUC.Summary(c.Request.Context(), middleware.ActorFrom(c), in)
	if err != nil {
		httperr.FromError(c, err, "failed_to_summarize_sales")
		return
	}

	var count int64
	total := decimal.Zero
	for _, r := range rows {
		count += r.Count
		total = total.Add(r.Total)
	}

	httpresp.OK(c, gin.H{
		"locations": rows,
		"count":     count,
		"total":     total,
	})
}
