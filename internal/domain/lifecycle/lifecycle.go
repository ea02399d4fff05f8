// Package lifecycle contiene las reglas puras del ciclo de vida de una orden:
// qué transición de estado es válida para cada tipo de orden y qué rol puede
// causarla. No toca persistencia; los casos de uso aplican las mutaciones.
package lifecycle

import (
	"github.com/nvdekay/stock-master-sub000/internal/domain"
	"github.com/nvdekay/stock-master-sub000/internal/domain/entity"
)

// adminTargets son los estados alcanzables por la edición administrativa de
// estado+nota (manager/staff). ready y declined quedan fuera: esos pasan por
// los caminos del exportador y del transportista.
var adminTargets = map[string]bool{
	entity.OrderStatusPending:    true,
	entity.OrderStatusProcessing: true,
	entity.OrderStatusInTransit:  true,
	entity.OrderStatusShipped:    true,
	entity.OrderStatusCompleted:  true,
	entity.OrderStatusCancelled:  true,
}

// Validate decide si el actor con el rol dado puede mover la orden a target
// mediante un patch de estado. Devuelve *domain.InvalidTransitionError si la
// transición no está en la tabla; la orden no se modifica aquí.
//
// La finalización de una importación (completed) NUNCA pasa por esta tabla:
// solo el motor de reconciliación la escribe, porque debe acoplar la mutación
// de inventario al cambio de estado (ver ValidateReconciliation).
func Validate(o *entity.Order, target, role string) error {
	if o.IsTerminal() {
		return invalid(o, target, role)
	}

	switch target {
	case entity.OrderStatusReady:
		// Solo el exportador/remitente deja lista una orden pending de
		// salida (wholesale o transfer; una importación nunca pasa por ready).
		if o.Status == entity.OrderStatusPending &&
			o.Type != entity.OrderTypeImport &&
			(role == entity.RoleExporter || role == entity.RoleStaff) {
			return nil
		}
		return invalid(o, target, role)

	case entity.OrderStatusDeclined:
		if o.Status == entity.OrderStatusPending &&
			(role == entity.RoleExporter || role == entity.RoleStaff) {
			return nil
		}
		return invalid(o, target, role)

	case entity.OrderStatusInTransit:
		// ready → in_transit es el camino del transportista; el caso de uso
		// crea además exactamente un Shipment. El camino administrativo
		// también puede fijar in_transit desde otros estados (sin envío).
		if o.Status == entity.OrderStatusReady {
			if role == entity.RoleShipper {
				return nil
			}
			return invalid(o, target, role)
		}
	}

	// Camino administrativo: patch directo de estado+nota, sin efectos sobre
	// inventario, permitido mientras la orden no esté en estado terminal.
	if !adminTargets[target] {
		return invalid(o, target, role)
	}
	if role != entity.RoleAdmin && role != entity.RoleManager && role != entity.RoleStaff {
		return invalid(o, target, role)
	}
	if target == entity.OrderStatusCompleted && o.Type == entity.OrderTypeImport {
		// El motor de reconciliación es el único escritor de la finalización
		// de importaciones.
		return invalid(o, target, role)
	}
	return nil
}

// ValidateReconciliation decide si la orden puede entrar al motor de
// reconciliación de importaciones: tipo import en pending o in_transit.
func ValidateReconciliation(o *entity.Order) error {
	if o.Type != entity.OrderTypeImport {
		return &domain.InvalidTransitionError{
			OrderType: o.Type,
			From:      o.Status,
			To:        entity.OrderStatusCompleted,
		}
	}
	if o.Status != entity.OrderStatusPending && o.Status != entity.OrderStatusInTransit {
		return &domain.InvalidTransitionError{
			OrderType: o.Type,
			From:      o.Status,
			To:        entity.OrderStatusCompleted,
		}
	}
	return nil
}

// RequiresShipment indica si la transición solicitada es la aceptación de un
// transportista, que debe crear exactamente un Shipment junto con el patch.
func RequiresShipment(o *entity.Order, target, role string) bool {
	return o.Status == entity.OrderStatusReady &&
		target == entity.OrderStatusInTransit &&
		role == entity.RoleShipper
}

func invalid(o *entity.Order, target, role string) error {
	return &domain.InvalidTransitionError{
		OrderType: o.Type,
		From:      o.Status,
		To:        target,
		Role:      role,
	}
}
