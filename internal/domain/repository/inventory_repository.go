package repository

import (
	"context"

	"github.com/nvdekay/stock-master-sub000/internal/domain/entity"
)

// InventoryRepository acceso a la colección inventory.
type InventoryRepository interface {
	// FindByProductAndWarehouse devuelve la fila del par (producto, bodega)
	// o (nil, nil) si no existe todavía.
	FindByProductAndWarehouse(ctx context.Context, productID, warehouseID string) (*entity.Inventory, error)
	ListByWarehouse(ctx context.Context, warehouseID string) ([]entity.Inventory, error)
	Create(ctx context.Context, inv *entity.Inventory) error
	Patch(ctx context.Context, id string, fields map[string]any) (*entity.Inventory, error)
}
