package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserSummaryDTO identidad resuelta de un usuario referenciado por la orden.
type UserSummaryDTO struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

// WarehouseSummaryDTO bodega resuelta.
type WarehouseSummaryDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// EnterpriseSummaryDTO empresa dueña resuelta.
type EnterpriseSummaryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ShipmentSummaryDTO envío resuelto (si la orden ya tiene transportista).
type ShipmentSummaryDTO struct {
	ID           string     `json:"id"`
	Status       string     `json:"status"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	Shipper      *UserSummaryDTO `json:"shipper,omitempty"`
}

// OrderLineDTO línea enriquecida con el nombre del producto y el precio
// efectivo (precio congelado de la línea, o el del catálogo si no hay).
type OrderLineDTO struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Status      string          `json:"status,omitempty"`
}

// TransferViewDTO sección exclusiva de órdenes transfer.
type TransferViewDTO struct {
	Sender   *UserSummaryDTO `json:"sender"`
	Receiver *UserSummaryDTO `json:"receiver"`
}

// WholesaleViewDTO sección exclusiva de órdenes wholesale.
type WholesaleViewDTO struct {
	Buyer *UserSummaryDTO `json:"buyer"`
}

// ImportViewDTO sección exclusiva de órdenes import.
type ImportViewDTO struct {
	Sender        *UserSummaryDTO `json:"sender"`
	Receiver      *UserSummaryDTO `json:"receiver"`
	CompletedDate *time.Time      `json:"completed_date,omitempty"`
}

// EnrichedOrderDTO vista enriquecida de una orden: unión etiquetada
// discriminada por Type sobre una base común. Exactamente una de las
// secciones Transfer/Wholesale/Import es no-nula; los consumidores
// discriminan por Type en lugar de sondear campos opcionales.
// Las referencias ausentes (buyer, shipper, receiver pendientes de
// asignación) se resuelven a null, nunca a error.
type EnrichedOrderDTO struct {
	ID               string                `json:"id"`
	Type             string                `json:"type"`
	Status           string                `json:"status"`
	Date             time.Time             `json:"date"`
	Note             string                `json:"note,omitempty"`
	Version          int                   `json:"version"`
	SendWarehouse    *WarehouseSummaryDTO  `json:"send_warehouse"`
	ReceiveWarehouse *WarehouseSummaryDTO  `json:"receive_warehouse"`
	Enterprise       *EnterpriseSummaryDTO `json:"enterprise"`
	Shipment         *ShipmentSummaryDTO   `json:"shipment"`
	Lines            []OrderLineDTO        `json:"lines"`
	TotalPrice       decimal.Decimal       `json:"total_price"`

	Transfer  *TransferViewDTO  `json:"transfer,omitempty"`
	Wholesale *WholesaleViewDTO `json:"wholesale,omitempty"`
	Import    *ImportViewDTO    `json:"import,omitempty"`
}

// TransitionRequest cuerpo de POST /api/orders/:id/transition.
type TransitionRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// TransitionResponse orden resultante tras la transición.
type TransitionResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Note     string `json:"note,omitempty"`
	Version  int    `json:"version"`
	Shipment *ShipmentSummaryDTO `json:"shipment,omitempty"`
}
