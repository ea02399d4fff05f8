package orders

import (
	"context"
	"fmt"

	"github.com/nvdekay/stock-master-sub000/internal/application/dto"
	"github.com/nvdekay/stock-master-sub000/internal/domain"
	"github.com/nvdekay/stock-master-sub000/internal/domain/entity"
	"github.com/nvdekay/stock-master-sub000/internal/domain/lifecycle"
	"github.com/nvdekay/stock-master-sub000/internal/domain/repository"
)

// TransitionUseCase aplica transiciones de estado validadas por la tabla del
// ciclo de vida: pending→ready / pending→declined (exportador), la aceptación
// del transportista (ready→in_transit con creación de exactamente un envío) y
// la edición administrativa de estado+nota sin efectos sobre inventario.
//
// La finalización de importaciones no pasa por aquí: es exclusiva del motor
// de reconciliación.
type TransitionUseCase struct {
	orderRepo    repository.OrderRepository
	shipmentRepo repository.ShipmentRepository
	auditRepo    repository.AuditLogRepository
}

// NewTransitionUseCase construye el caso de uso.
func NewTransitionUseCase(
	orderRepo repository.OrderRepository,
	shipmentRepo repository.ShipmentRepository,
	auditRepo repository.AuditLogRepository,
) *TransitionUseCase {
	return &TransitionUseCase{
		orderRepo:    orderRepo,
		shipmentRepo: shipmentRepo,
		auditRepo:    auditRepo,
	}
}

// TransitionInput entrada de una transición. ActorID y Role vienen del token
// del actor; el núcleo no lee contexto ambiental.
type TransitionInput struct {
	OrderID string
	Target  string
	Note    string
	ActorID string
	Role    string
}

// Transition valida la transición contra la tabla del ciclo de vida y, si es
// legal, la aplica. Una transición fuera de tabla devuelve
// *domain.InvalidTransitionError y deja la orden intacta.
//
// Concurrencia optimista: la orden se relee justo antes de escribir; si la
// versión ya no coincide con la leída al entrar, se rechaza con
// domain.ErrVersionConflict sin escribir.
func (uc *TransitionUseCase) Transition(ctx context.Context, in TransitionInput) (*dto.TransitionResponse, error) {
	o, err := uc.orderRepo.GetByID(ctx, in.OrderID)
	if err != nil {
		return nil, fmt.Errorf("transición: %w", err)
	}
	readVersion := o.Version

	if err := lifecycle.Validate(o, in.Target, in.Role); err != nil {
		return nil, err
	}

	resp := &dto.TransitionResponse{ID: o.ID}

	// Aceptación del transportista: exactamente un envío por orden. Un envío
	// previo del mismo transportista con la orden todavía en ready es la
	// reanudación de una aceptación interrumpida (el envío quedó creado pero
	// la orden nunca llegó a in_transit): se reutiliza en lugar de duplicarse,
	// de modo que el reintento converge.
	if lifecycle.RequiresShipment(o, in.Target, in.Role) {
		existing, err := uc.shipmentRepo.FindByOrder(ctx, in.OrderID)
		if err != nil {
			return nil, fmt.Errorf("transición: buscar envío: %w", err)
		}
		switch {
		case existing == nil:
			// Chequeo de versión antes de crear: si otro escritor ya movió la
			// orden no se persiste un envío huérfano.
			current, err := uc.orderRepo.GetByID(ctx, in.OrderID)
			if err != nil {
				return nil, fmt.Errorf("transición: releer orden: %w", err)
			}
			if current.Version != readVersion {
				return nil, domain.ErrVersionConflict
			}
			shipment := &entity.Shipment{
				OrderID:     o.ID,
				ShipperID:   in.ActorID,
				WarehouseID: o.SendWarehouseID,
				Status:      entity.ShipmentStatusCreated,
			}
			if err := uc.shipmentRepo.Create(ctx, shipment); err != nil {
				return nil, fmt.Errorf("transición: crear envío: %w", err)
			}
			resp.Shipment = &dto.ShipmentSummaryDTO{ID: shipment.ID, Status: shipment.Status}
			if err := uc.auditRepo.Create(ctx, &entity.AuditLog{
				OrderID: o.ID,
				UserID:  in.ActorID,
				Action:  entity.AuditActionShipmentAccepted,
				Detail:  "envío " + shipment.ID,
			}); err != nil {
				return nil, fmt.Errorf("transición: bitácora: %w", err)
			}
		case existing.ShipperID == in.ActorID:
			resp.Shipment = &dto.ShipmentSummaryDTO{ID: existing.ID, Status: existing.Status}
		default:
			return nil, fmt.Errorf("transición: la orden %s ya tiene envío: %w", in.OrderID, domain.ErrConflict)
		}
	}

	// Chequeo de versión al momento de escribir.
	current, err := uc.orderRepo.GetByID(ctx, in.OrderID)
	if err != nil {
		return nil, fmt.Errorf("transición: releer orden: %w", err)
	}
	if current.Version != readVersion {
		return nil, domain.ErrVersionConflict
	}

	fields := map[string]any{
		"status":  in.Target,
		"version": readVersion + 1,
	}
	if in.Note != "" {
		fields["note"] = in.Note
	}
	updated, err := uc.orderRepo.Patch(ctx, in.OrderID, fields)
	if err != nil {
		return nil, fmt.Errorf("transición: actualizar orden: %w", err)
	}

	// Bitácora del override administrativo (los caminos del exportador y del
	// transportista tienen sus propias entradas o quedan implícitos en el envío).
	if in.Role == entity.RoleAdmin || in.Role == entity.RoleManager {
		if err := uc.auditRepo.Create(ctx, &entity.AuditLog{
			OrderID: o.ID,
			UserID:  in.ActorID,
			Action:  entity.AuditActionStatusOverride,
			Detail:  fmt.Sprintf("%s → %s", o.Status, in.Target),
		}); err != nil {
			return nil, fmt.Errorf("transición: bitácora: %w", err)
		}
	}

	resp.Status = updated.Status
	resp.Note = updated.Note
	resp.Version = updated.Version
	return resp, nil
}
