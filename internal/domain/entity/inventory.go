package entity

import "time"

// Inventory representa la existencia de un producto en una bodega.
// A lo sumo una fila por par (ProductID, WarehouseID); el motor de
// reconciliación busca la fila existente antes de crear una nueva.
// Este núcleo solo incrementa Quantity (aceptaciones de importación);
// los decrementos pertenecen a los flujos de venta/exportación externos.
type Inventory struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	WarehouseID string    `json:"warehouseId"`
	Quantity    int       `json:"quantity"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}
