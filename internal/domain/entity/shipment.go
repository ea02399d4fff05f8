package entity

import "time"

// Estados de entrega de un envío.
const (
	ShipmentStatusCreated   = "created"
	ShipmentStatusDelivered = "delivered"
)

// Shipment vincula una orden con el transportista que la aceptó y la bodega
// de origen. Se crea exactamente uno cuando un transportista toma una orden
// wholesale/transfer en estado ready; este núcleo no lo modifica después.
type Shipment struct {
	ID           string     `json:"id"`
	OrderID      string     `json:"orderId"`
	ShipperID    string     `json:"shipperId"`
	WarehouseID  string     `json:"warehouseId"`
	Status       string     `json:"status"`
	DeliveryDate *time.Time `json:"deliveryDate,omitempty"`
	CreatedAt    time.Time  `json:"createdAt,omitempty"`
}
