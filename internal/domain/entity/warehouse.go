package entity

// Warehouse representa una bodega de la empresa. Entidad de referencia,
// consultada nunca modificada por este núcleo.
type Warehouse struct {
	ID           string `json:"id"`
	EnterpriseID string `json:"enterpriseId,omitempty"`
	Name         string `json:"name"`
	Address      string `json:"address,omitempty"`
}
