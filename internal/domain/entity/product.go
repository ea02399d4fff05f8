package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Entidad de referencia: este
// núcleo la consulta para enriquecer órdenes y valorizar inventario, nunca
// la modifica.
type Product struct {
	ID           string          `json:"id"`
	EnterpriseID string          `json:"enterpriseId,omitempty"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Unit         string          `json:"unit,omitempty"`
	CreatedAt    time.Time       `json:"createdAt,omitempty"`
}
