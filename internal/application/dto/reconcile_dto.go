package dto

// ReconcileRequest cuerpo de POST /api/orders/:id/reconcile: cantidad
// aceptada por línea (id de OrderDetail → entero en [0, cantidad original]).
type ReconcileRequest struct {
	AcceptedQuantities map[string]int `json:"accepted_quantities"`
}

// ReconcileLineResultDTO resultado por línea de la reconciliación.
type ReconcileLineResultDTO struct {
	DetailID         string `json:"detail_id"`
	ProductID        string `json:"product_id"`
	Accepted         int    `json:"accepted"`
	Defective        int    `json:"defective"`
	RefundedDetailID string `json:"refunded_detail_id,omitempty"` // fila nueva en splits parciales
	Skipped          bool   `json:"skipped"`                      // línea ya procesada en una pasada previa
}

// ReconcileResponse resultado de la reconciliación completa.
type ReconcileResponse struct {
	OrderID       string                   `json:"order_id"`
	Status        string                   `json:"status"`
	Lines         []ReconcileLineResultDTO `json:"lines"`
	TotalAccepted int                      `json:"total_accepted"`
	TotalRefunded int                      `json:"total_refunded"`
}
