// Package reconcile implementa el motor de reconciliación de importaciones:
// concilia la cantidad aceptada declarada por el personal contra la cantidad
// ordenada, parte los remanentes defectuosos en filas de devolución, pliega
// las cantidades aceptadas al inventario de la bodega receptora y finaliza la
// orden.
package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/nvdekay/stock-master-sub000/internal/application/dto"
	"github.com/nvdekay/stock-master-sub000/internal/domain"
	"github.com/nvdekay/stock-master-sub000/internal/domain/entity"
	"github.com/nvdekay/stock-master-sub000/internal/domain/lifecycle"
	"github.com/nvdekay/stock-master-sub000/internal/domain/repository"
)

// UseCase motor de reconciliación. El almacén no ofrece transacciones
// multi-documento: las mutaciones se emiten como secuencia de pasos
// individualmente reintentables. Una falla a mitad de camino deja las líneas
// anteriores confirmadas; la re-invocación con el mismo mapa converge al
// estado de una pasada limpia porque las líneas que ya no están en pending se
// saltan sin re-plegar inventario.
type UseCase struct {
	orderRepo     repository.OrderRepository
	detailRepo    repository.OrderDetailRepository
	inventoryRepo repository.InventoryRepository
	auditRepo     repository.AuditLogRepository
}

// NewUseCase construye el motor.
func NewUseCase(
	orderRepo repository.OrderRepository,
	detailRepo repository.OrderDetailRepository,
	inventoryRepo repository.InventoryRepository,
	auditRepo repository.AuditLogRepository,
) *UseCase {
	return &UseCase{
		orderRepo:     orderRepo,
		detailRepo:    detailRepo,
		inventoryRepo: inventoryRepo,
		auditRepo:     auditRepo,
	}
}

// ReconcileImport ejecuta la reconciliación completa de una orden de
// importación en pending o in_transit.
//
// Todas las líneas se validan antes de la primera escritura (todo-o-nada en
// la frontera de validación): cada línea pending debe tener una cantidad
// aceptada en [0, cantidad], y el mapa no puede referenciar líneas ajenas.
//
// Por línea pending con cantidad aceptada a y defectuosa d = q - a:
//   - d == q: la línea se marca refunded, cantidad intacta, sin inventario;
//   - d == 0: la línea se marca accepted, cantidad intacta;
//   - 0 < d < q: se crea una fila refunded nueva con cantidad d y el mismo
//     precio congelado, y la original se reduce a cantidad a / accepted.
//     El split conserva la cantidad exactamente: a + d == q.
//
// Tras el split, si a > 0 la cantidad aceptada se pliega al inventario de la
// bodega receptora: incremento si la fila (producto, bodega) existe, creación
// con cantidad a si no.
func (uc *UseCase) ReconcileImport(
	ctx context.Context,
	orderID string,
	acceptedQuantities map[string]int,
	actingUserID string,
) (*dto.ReconcileResponse, error) {
	o, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("reconciliación: %w", err)
	}
	readVersion := o.Version

	if err := lifecycle.ValidateReconciliation(o); err != nil {
		return nil, err
	}

	details, err := uc.detailRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("reconciliación: líneas: %w", err)
	}

	if err := validateLines(details, acceptedQuantities); err != nil {
		return nil, err
	}

	resp := &dto.ReconcileResponse{OrderID: orderID}

	// Mutación por línea: split primero, pliegue de inventario después, línea
	// por línea. Las líneas fuera de pending ya fueron procesadas en una
	// pasada anterior y se saltan sin re-plegar.
	for i := range details {
		d := &details[i]

		if d.Status != entity.DetailStatusPending {
			resp.Lines = append(resp.Lines, dto.ReconcileLineResultDTO{
				DetailID:  d.ID,
				ProductID: d.ProductID,
				Skipped:   true,
			})
			continue
		}

		accepted := acceptedQuantities[d.ID]
		defective := d.Quantity - accepted

		lineResult := dto.ReconcileLineResultDTO{
			DetailID:  d.ID,
			ProductID: d.ProductID,
			Accepted:  accepted,
			Defective: defective,
		}

		switch {
		case defective == d.Quantity:
			// Rechazo total: la misma fila pasa a refunded, cantidad intacta.
			if _, err := uc.detailRepo.Patch(ctx, d.ID, map[string]any{
				"status": entity.DetailStatusRefunded,
			}); err != nil {
				return resp, &domain.PartialApplicationError{OrderID: orderID, DetailID: d.ID, Err: err}
			}

		case defective == 0:
			// Aceptación total: la misma fila pasa a accepted, cantidad intacta.
			if _, err := uc.detailRepo.Patch(ctx, d.ID, map[string]any{
				"status": entity.DetailStatusAccepted,
			}); err != nil {
				return resp, &domain.PartialApplicationError{OrderID: orderID, DetailID: d.ID, Err: err}
			}

		default:
			// Split parcial: fila nueva refunded con lo defectuoso, la
			// original se reduce a lo aceptado. Nunca se crea una fila de
			// cantidad cero.
			refundRow := &entity.OrderDetail{
				OrderID:   d.OrderID,
				ProductID: d.ProductID,
				Quantity:  defective,
				Price:     d.Price,
				Status:    entity.DetailStatusRefunded,
			}
			if err := uc.detailRepo.Create(ctx, refundRow); err != nil {
				return resp, &domain.PartialApplicationError{OrderID: orderID, DetailID: d.ID, Err: err}
			}
			if _, err := uc.detailRepo.Patch(ctx, d.ID, map[string]any{
				"quantity": accepted,
				"status":   entity.DetailStatusAccepted,
			}); err != nil {
				return resp, &domain.PartialApplicationError{OrderID: orderID, DetailID: d.ID, Err: err}
			}
			lineResult.RefundedDetailID = refundRow.ID
		}

		if accepted > 0 {
			if err := uc.foldInventory(ctx, d.ProductID, o.ReceiveWarehouseID, accepted); err != nil {
				return resp, &domain.PartialApplicationError{OrderID: orderID, DetailID: d.ID, Err: err}
			}
		}

		resp.TotalAccepted += accepted
		resp.TotalRefunded += defective
		resp.Lines = append(resp.Lines, lineResult)
	}

	// Finalización: solo después de procesar todas las líneas sin error.
	// Chequeo de versión al momento de escribir la orden.
	current, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return resp, &domain.PartialApplicationError{OrderID: orderID, Err: err}
	}
	if current.Version != readVersion {
		return resp, domain.ErrVersionConflict
	}

	now := time.Now()
	updated, err := uc.orderRepo.Patch(ctx, orderID, map[string]any{
		"status":          entity.OrderStatusCompleted,
		"completedDate":   now,
		"receiverStaffId": actingUserID,
		"version":         readVersion + 1,
	})
	if err != nil {
		return resp, &domain.PartialApplicationError{OrderID: orderID, Err: err}
	}

	if err := uc.auditRepo.Create(ctx, &entity.AuditLog{
		OrderID: orderID,
		UserID:  actingUserID,
		Action:  entity.AuditActionImportReconciled,
		Detail:  fmt.Sprintf("aceptadas %d, devueltas %d", resp.TotalAccepted, resp.TotalRefunded),
	}); err != nil {
		return resp, &domain.PartialApplicationError{OrderID: orderID, Err: err}
	}

	resp.Status = updated.Status
	return resp, nil
}

// validateLines valida el mapa completo antes de cualquier mutación: cada id
// debe existir en la orden, cada línea pending debe traer cantidad aceptada y
// estar en [0, cantidad original].
func validateLines(details []entity.OrderDetail, accepted map[string]int) error {
	byID := make(map[string]*entity.OrderDetail, len(details))
	for i := range details {
		byID[details[i].ID] = &details[i]
	}

	for id := range accepted {
		if _, ok := byID[id]; !ok {
			return &domain.ValidationError{DetailID: id, Reason: "la línea no pertenece a la orden"}
		}
	}

	for i := range details {
		d := &details[i]
		if d.Status != entity.DetailStatusPending {
			continue
		}
		a, ok := accepted[d.ID]
		if !ok {
			return &domain.ValidationError{DetailID: d.ID, Reason: "falta la cantidad aceptada"}
		}
		if a < 0 || a > d.Quantity {
			return &domain.ValidationError{
				DetailID: d.ID,
				Reason:   fmt.Sprintf("cantidad aceptada %d fuera de rango [0, %d]", a, d.Quantity),
			}
		}
	}
	return nil
}

// foldInventory pliega la cantidad aceptada a la fila (producto, bodega):
// incremento si existe, creación si la bodega recibe el producto por primera
// vez. La búsqueda previa evita filas duplicadas para el mismo par.
func (uc *UseCase) foldInventory(ctx context.Context, productID, warehouseID string, quantity int) error {
	inv, err := uc.inventoryRepo.FindByProductAndWarehouse(ctx, productID, warehouseID)
	if err != nil {
		return fmt.Errorf("buscar inventario: %w", err)
	}
	if inv == nil {
		return uc.inventoryRepo.Create(ctx, &entity.Inventory{
			ProductID:   productID,
			WarehouseID: warehouseID,
			Quantity:    quantity,
		})
	}
	_, err = uc.inventoryRepo.Patch(ctx, inv.ID, map[string]any{
		"quantity": inv.Quantity + quantity,
	})
	return err
}
