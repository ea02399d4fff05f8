package entity

import "time"

// Tipos de movimiento de una orden.
const (
	OrderTypeTransfer  = "transfer"  // bodega → bodega dentro de la empresa
	OrderTypeWholesale = "wholesale" // bodega → comprador mayorista externo
	OrderTypeImport    = "import"    // recepción en bodega con inspección de defectos
)

// Estados del ciclo de vida de una orden.
// ready es el sub-estado en el que el exportador deja la orden lista para que
// un transportista la tome; declined es el rechazo terminal del exportador.
const (
	OrderStatusPending    = "pending"
	OrderStatusReady      = "ready"
	OrderStatusProcessing = "processing"
	OrderStatusInTransit  = "in_transit"
	OrderStatusShipped    = "shipped"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
	OrderStatusDeclined   = "declined"
)

// Order representa un movimiento de mercancía entre bodegas o hacia un
// comprador. Nunca se borra: solo transiciona a un estado terminal.
// Version es el token de concurrencia optimista: toda escritura de estado
// relee la orden, compara Version y escribe Version+1.
type Order struct {
	ID                 string     `json:"id"`
	Type               string     `json:"type"`
	Status             string     `json:"status"`
	Date               time.Time  `json:"date"`
	Note               string     `json:"note,omitempty"`
	SenderStaffID      string     `json:"senderStaffId,omitempty"`
	ReceiverStaffID    string     `json:"receiverStaffId,omitempty"`
	BuyerID            string     `json:"buyerId,omitempty"`
	SendWarehouseID    string     `json:"sendWarehouseId,omitempty"`
	ReceiveWarehouseID string     `json:"receiveWarehouseId,omitempty"`
	EnterpriseID       string     `json:"enterpriseId,omitempty"`
	CompletedDate      *time.Time `json:"completedDate,omitempty"`
	Version            int        `json:"version"`
}

// IsTerminal indica si la orden está en un estado final.
func (o *Order) IsTerminal() bool {
	switch o.Status {
	case OrderStatusCompleted, OrderStatusCancelled, OrderStatusDeclined:
		return true
	}
	return false
}
