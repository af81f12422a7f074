package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-erp/internal/dto"
	"github.com/BruksfildServices01/salon-erp/internal/httperr"
	"github.com/BruksfildServices01/salon-erp/internal/httpresp"
	"github.com/BruksfildServices01/salon-erp/internal/middleware"
	ucInventory "github.com/BruksfildServices01/salon-erp/internal/usecase/inventory"
)

type InventoryHandler struct {
	adjustUC   *ucInventory.AdjustStock
	transferUC *ucInventory.TransferStock
	listUC     *ucInventory.ListStock

	lowStockThreshold int
}

func NewInventoryHandler(
	adjustUC *ucInventory.AdjustStock,
	transferUC *ucInventory.TransferStock,
	listUC *ucInventory.ListStock,
	lowStockThreshold int,
) *InventoryHandler {
	return &InventoryHandler{
		adjustUC:          adjustUC,
		transferUC:        transferUC,
		listUC:            listUC,
		lowStockThreshold: lowStockThreshold,
	}
}

// --------- Requests ---------

type AdjustStockRequest struct {
	ProductID      string `json:"productId" binding:"required"`
	LocationID     string `json:"locationId" binding:"required"`
	AdjustmentType string `json:"adjustmentType"`
	Type           string `json:"type"` // older clients send "type"
	Quantity       int    `json:"quantity" binding:"required"`
	Reason         string `json:"reason"`
}

type TransferStockRequest struct {
	ProductID      string `json:"productId" binding:"required"`
	FromLocationID string `json:"fromLocationId" binding:"required"`
	ToLocationID   string `json:"toLocationId" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required"`
	Reason         string `json:"reason"`
}

// --------- Handlers ---------

func (h *InventoryHandler) Adjust(c *gin.Context) {
	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	kind := req.AdjustmentType
	if kind == "" {
		kind = req.Type
	}

	mv, err := h.adjustUC.Execute(c.Request.Context(), middleware.ActorFrom(c), ucInventory.AdjustStockInput{
		ProductID:      req.ProductID,
		LocationID:     req.LocationID,
		AdjustmentType: kind,
		Quantity:       req.Quantity,
		Reason:         req.Reason,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_adjust_stock")
		return
	}

	httpresp.OK(c, gin.H{
		"productId":     mv.ProductID,
		"locationId":    mv.LocationID,
		"previousStock": mv.PreviousStock,
		"newStock":      mv.NewStock,
		"movement":      mv,
	})
}

func (h *InventoryHandler) Transfer(c *gin.Context) {
	var req TransferStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	res, err := h.transferUC.Execute(c.Request.Context(), middleware.ActorFrom(c), ucInventory.TransferStockInput{
		ProductID:      req.ProductID,
		FromLocationID: req.FromLocationID,
		ToLocationID:   req.ToLocationID,
		Quantity:       req.Quantity,
		Reason:         req.Reason,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_transfer_stock")
		return
	}

	httpresp.OK(c, res)
}

func (h *InventoryHandler) List(c *gin.Context) {
	rows, err := h.listUC.Execute(c.Request.Context(), middleware.ActorFrom(c), c.Query("locationId"))
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_stock")
		return
	}
	httpresp.List(c, dto.StockRows(rows))
}

func (h *InventoryHandler) LowStock(c *gin.Context) {
	threshold := intQuery(c, "threshold", h.lowStockThreshold)

	rows, err := h.listUC.LowStock(c.Request.Context(), middleware.ActorFrom(c), c.Query("locationId"), threshold)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_low_stock")
		return
	}
	httpresp.List(c, dto.StockRows(rows))
}

func (h *InventoryHandler) Movements(c *gin.Context) {
	moves, err := h.listUC.Movements(
		c.Request.Context(),
		middleware.ActorFrom(c),
		c.Query("locationId"),
		c.Query("productId"),
		intQuery(c, "limit", 0),
	)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_movements")
		return
	}
	httpresp.List(c, moves)
}
