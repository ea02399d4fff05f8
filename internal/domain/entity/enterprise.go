package entity

// Enterprise representa la empresa dueña de bodegas y usuarios. Entidad de
// referencia de datos organizacionales.
type Enterprise struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}
