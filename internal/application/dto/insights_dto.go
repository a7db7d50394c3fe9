package dto

import "github.com/shopspring/decimal"

// InsightsRequest selección de productos a analizar.
type InsightsRequest struct {
	ProductIDs []string `json:"product_ids"`
}

// ProductTrendSummaryDTO resumen de tendencias de un producto que se
// serializa a JSON dentro del prompt del LLM.
type ProductTrendSummaryDTO struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	OpeningInventory int               `json:"opening_inventory"`
	FinalInventory   int               `json:"final_inventory"`
	TotalSales       decimal.Decimal   `json:"total_sales"`
	TotalProcurement decimal.Decimal   `json:"total_procurement"`
	InventoryTrend   []int             `json:"inventory_trend"`
	SalesTrend       []decimal.Decimal `json:"sales_trend"`
	ProcurementTrend []decimal.Decimal `json:"procurement_trend"`
}

// InsightsResponse texto generado por el LLM y tokens consumidos.
type InsightsResponse struct {
	Insights   string `json:"insights"`
	TokensUsed int    `json:"tokens_used"`
}
