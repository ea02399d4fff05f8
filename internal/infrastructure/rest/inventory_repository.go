package rest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nvdekay/stock-master-sub000/internal/domain/entity"
	"github.com/nvdekay/stock-master-sub000/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo adaptador de InventoryRepository sobre la colección inventory.
type InventoryRepo struct {
	c *Client
}

// NewInventoryRepository construye el adaptador.
func NewInventoryRepository(c *Client) *InventoryRepo {
	return &InventoryRepo{c: c}
}

// FindByProductAndWarehouse busca la fila del par (producto, bodega).
// Devuelve (nil, nil) si aún no existe; el motor de reconciliación decide
// entonces crearla en lugar de duplicarla.
func (r *InventoryRepo) FindByProductAndWarehouse(ctx context.Context, productID, warehouseID string) (*entity.Inventory, error) {
	var rows []entity.Inventory
	filter := map[string]string{"productId": productID, "warehouseId": warehouseID}
	if err := r.c.List(ctx, "inventory", filter, &rows); err != nil {
		return nil, fmt.Errorf("find inventory: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// ListByWarehouse todas las filas de existencia de la bodega.
func (r *InventoryRepo) ListByWarehouse(ctx context.Context, warehouseID string) ([]entity.Inventory, error) {
	var rows []entity.Inventory
	if err := r.c.List(ctx, "inventory", map[string]string{"warehouseId": warehouseID}, &rows); err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return rows, nil
}

// Create crea una fila nueva; asigna id y UpdatedAt si vienen vacíos.
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if inv.UpdatedAt.IsZero() {
		inv.UpdatedAt = time.Now()
	}
	if err := r.c.Create(ctx, "inventory", inv, inv); err != nil {
		return fmt.Errorf("create inventory: %w", err)
	}
	return nil
}

// Patch actualización parcial de la fila.
func (r *InventoryRepo) Patch(ctx context.Context, id string, fields map[string]any) (*entity.Inventory, error) {
	var inv entity.Inventory
	if err := r.c.Patch(ctx, "inventory", id, fields, &inv); err != nil {
		return nil, fmt.Errorf("patch inventory: %w", err)
	}
	return &inv, nil
}
