package dto

import "github.com/BruksfildServices01/salon-erp/internal/models"

type StockRowDTO struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	SKU         string `json:"sku"`
	LocationID  string `json:"locationId"`
	Stock       int    `json:"stock"`
}

func StockRows(rows []models.ProductLocation) []StockRowDTO {
	out := make([]StockRowDTO, 0, len(rows))
	for _, r := range rows {
		d := StockRowDTO{
			ProductID:  r.ProductID,
			LocationID: r.LocationID,
			Stock:      r.Stock,
		}
		if r.Product != nil {
			d.ProductName = r.Product.Name
			d.SKU = r.Product.SKU
		}
		out = append(out, d)
	}
	return out
}
