package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrVersionConflict = errors.New("la orden fue modificada por otro actor")
)

// InvalidTransitionError indica un cambio de estado no permitido para el
// estado actual, el tipo de orden y el rol del actor. Deja la orden intacta.
type InvalidTransitionError struct {
	OrderType string
	From      string
	To        string
	Role      string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transición inválida: %s → %s (orden %s, rol %s)",
		e.From, e.To, e.OrderType, e.Role)
}

// ValidationError indica un dato de entrada inválido; DetailID identifica la
// línea ofensora cuando aplica (vacío para errores a nivel de orden).
type ValidationError struct {
	DetailID string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.DetailID == "" {
		return "validación: " + e.Reason
	}
	return fmt.Sprintf("validación: línea %s: %s", e.DetailID, e.Reason)
}

// PartialApplicationError indica que una reconciliación multi-paso falló
// después de confirmar escrituras anteriores. No hay rollback: el caller debe
// reintentar la misma reconciliación (la re-ejecución es idempotente porque
// las líneas ya procesadas dejan de estar en pending).
type PartialApplicationError struct {
	OrderID  string
	DetailID string
	Err      error
}

func (e *PartialApplicationError) Error() string {
	return fmt.Sprintf("reconciliación parcial: orden %s, línea %s: %v",
		e.OrderID, e.DetailID, e.Err)
}

func (e *PartialApplicationError) Unwrap() error { return e.Err }
