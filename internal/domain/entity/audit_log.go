package entity

import "time"

// Acciones registradas en la bitácora.
const (
	AuditActionImportReconciled = "import_reconciled"
	AuditActionStatusOverride   = "status_override"
	AuditActionShipmentAccepted = "shipment_accepted"
)

// AuditLog es una entrada de bitácora que referencia la orden afectada y el
// usuario que ejecutó la acción.
type AuditLog struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	UserID    string    `json:"userId"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
