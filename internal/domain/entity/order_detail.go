package entity

import "github.com/shopspring/decimal"

// Sub-estados de una línea de orden. Solo las órdenes de importación los usan;
// los demás tipos mantienen pending durante toda su vida.
const (
	DetailStatusPending  = "pending"
	DetailStatusAccepted = "accepted"
	DetailStatusRefunded = "refunded"
)

// OrderDetail es una línea de producto dentro de una orden. Cada línea
// pertenece exclusivamente a su orden. Price es el precio unitario congelado
// al momento de la orden; nil significa usar el precio actual del producto.
//
// Invariante de conservación: la suma de cantidades de las líneas de un
// producto, a través de cualquier split accepted/refunded, es exactamente la
// cantidad previa al split.
type OrderDetail struct {
	ID        string           `json:"id"`
	OrderID   string           `json:"orderId"`
	ProductID string           `json:"productId"`
	Quantity  int              `json:"quantity"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Status    string           `json:"status"`
}
