package ingest

import (
	"time"

	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
)

// DeriveRecords calcula la secuencia de registros diarios de una fila:
//
//	inventario(día) = inventario(día-1) + compras(día) - ventas(día)
//
// con inventario(0) = inventario inicial. Determinista, sin recortes a cero
// ni chequeo de overflow más allá del rango nativo de int: un inventario
// negativo señala sobreventa y se conserva.
func DeriveRecords(row ProductRow) []entity.DailyRecord {
	records := make([]entity.DailyRecord, 0, entity.HistoryDays)
	inventory := row.OpeningInventory
	for day := 1; day <= entity.HistoryDays; day++ {
		idx := day - 1
		inventory = inventory + row.ProcurementQty[idx] - row.SalesQty[idx]
		records = append(records, entity.DailyRecord{
			Day:              day,
			ProcurementQty:   row.ProcurementQty[idx],
			ProcurementPrice: row.ProcurementPrice[idx],
			SalesQty:         row.SalesQty[idx],
			SalesPrice:       row.SalesPrice[idx],
			Inventory:        inventory,
		})
	}
	return records
}

// BuildProduct arma la entidad Product de un usuario a partir de una fila
// parseada, con sus registros ya derivados.
func BuildProduct(userID string, row ProductRow) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:               row.ID,
		UserID:           userID,
		Name:             row.Name,
		OpeningInventory: row.OpeningInventory,
		Records:          DeriveRecords(row),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
