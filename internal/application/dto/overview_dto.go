package dto

import "github.com/shopspring/decimal"

// StatusCountsDTO conteos por estado del conjunto mergeado de órdenes, más
// los dos buckets derivados que consumen los widgets del dashboard.
type StatusCountsDTO struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	InTransit  int `json:"in_transit"`
	Shipped    int `json:"shipped"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`

	PendingAndProcessing int `json:"pending_and_processing"` // pending + processing
	InTransitAndShipped  int `json:"in_transit_and_shipped"` // in_transit + shipped
}

// MonthlyActivityDTO conteo de órdenes de un mes (YYYY-MM) por tipo de
// movimiento.
type MonthlyActivityDTO struct {
	Month     string `json:"month"` // formato 2006-01
	Transfer  int    `json:"transfer"`
	Wholesale int    `json:"wholesale"`
	Import    int    `json:"import"`
	Total     int    `json:"total"`
}

// StockHealthDTO partición de productos según existencia sumada por producto.
type StockHealthDTO struct {
	InStock    int `json:"in_stock"`     // suma > 10
	LowStock   int `json:"low_stock"`    // 0 < suma <= 10
	OutOfStock int `json:"out_of_stock"` // suma = 0 (incluye productos sin filas)
}

// OverviewDTO respuesta de GET /api/reports/overview: unión de-duplicada de
// los conjuntos export/import/wholesale de la bodega, con estadísticas
// derivadas. Puro: se recalcula en cada invocación.
type OverviewDTO struct {
	WarehouseID        string               `json:"warehouse_id"`
	TotalOrders        int                  `json:"total_orders"`
	StatusCounts       StatusCountsDTO      `json:"status_counts"`
	MonthlyActivity    []MonthlyActivityDTO `json:"monthly_activity"` // 6 meses, el actual incluido
	InventoryValuation decimal.Decimal      `json:"inventory_valuation"`
	StockHealth        StockHealthDTO       `json:"stock_health"`
}
