package dto

import "github.com/shopspring/decimal"

// ProductSummaryResponse entrada del listado de productos (solo id y nombre).
type ProductSummaryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DailyRecordDTO registro diario con los montos derivados que consumen las
// gráficas del dashboard (monto = cantidad × precio unitario).
type DailyRecordDTO struct {
	Day               int             `json:"day"`
	Inventory         int             `json:"inventory"`
	ProcurementAmount decimal.Decimal `json:"procurement_amount"`
	SalesAmount       decimal.Decimal `json:"sales_amount"`
	ProcurementQty    int             `json:"procurement_qty"`
	ProcurementPrice  decimal.Decimal `json:"procurement_price"`
	SalesQty          int             `json:"sales_qty"`
	SalesPrice        decimal.Decimal `json:"sales_price"`
}

// ProductDetailResponse producto con su histórico derivado completo.
type ProductDetailResponse struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	OpeningInventory int              `json:"opening_inventory"`
	History          []DailyRecordDTO `json:"history"`
}
