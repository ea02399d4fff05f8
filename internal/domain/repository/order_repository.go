package repository

import (
	"context"

	"github.com/nvdekay/stock-master-sub000/internal/domain/entity"
)

// OrderRepository acceso a la colección orders del almacén remoto.
// Las órdenes nunca se borran: solo se leen y se parchean.
type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// ListBySendWarehouse órdenes del tipo dado con origen en la bodega.
	ListBySendWarehouse(ctx context.Context, warehouseID, orderType string) ([]entity.Order, error)
	// ListByReceiveWarehouse órdenes de cualquier tipo con destino en la bodega.
	ListByReceiveWarehouse(ctx context.Context, warehouseID string) ([]entity.Order, error)
	// Patch actualización parcial de campos; devuelve la orden resultante.
	Patch(ctx context.Context, id string, fields map[string]any) (*entity.Order, error)
}
