package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryDays número fijo de días del histórico derivado por producto.
const HistoryDays = 3

// Product representa un producto del catálogo de un usuario (tenant).
// El ID viene de la hoja de cálculo cargada y es único por usuario
// (unicidad compuesta user_id + id). Records siempre contiene exactamente
// HistoryDays registros ordenados por día ascendente.
type Product struct {
	ID               string
	UserID           string
	Name             string
	OpeningInventory int
	Records          []DailyRecord
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DailyRecord registro diario derivado de un producto. Inventory es el
// inventario corrido: inventario del día anterior + compras - ventas.
// Nunca lo suministra el usuario; se recalcula completo en cada carga.
// Un inventario negativo es un estado de negocio válido (sobreventa)
// y se conserva tal cual.
type DailyRecord struct {
	Day              int // 1..HistoryDays
	ProcurementQty   int
	ProcurementPrice decimal.Decimal
	SalesQty         int
	SalesPrice       decimal.Decimal
	Inventory        int
}

// ProcurementAmount monto de compras del día (cantidad × precio unitario).
func (r DailyRecord) ProcurementAmount() decimal.Decimal {
	return decimal.NewFromInt(int64(r.ProcurementQty)).Mul(r.ProcurementPrice)
}

// SalesAmount monto de ventas del día (cantidad × precio unitario).
func (r DailyRecord) SalesAmount() decimal.Decimal {
	return decimal.NewFromInt(int64(r.SalesQty)).Mul(r.SalesPrice)
}
