package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// DetailID línea ofensora en errores de validación/reconciliación.
	DetailID string `json:"detail_id,omitempty"`
}
