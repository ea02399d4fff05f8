package rest

import (
	"context"
	"fmt"

	"github.com/nvdekay/stock-master-sub000/internal/domain/entity"
	"github.com/nvdekay/stock-master-sub000/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo adaptador de OrderRepository sobre la colección orders.
type OrderRepo struct {
	c *Client
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(c *Client) *OrderRepo {
	return &OrderRepo{c: c}
}

// GetByID obtiene una orden por id.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var o entity.Order
	if err := r.c.Get(ctx, "orders", id, &o); err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// ListBySendWarehouse órdenes del tipo dado con origen en la bodega.
func (r *OrderRepo) ListBySendWarehouse(ctx context.Context, warehouseID, orderType string) ([]entity.Order, error) {
	var orders []entity.Order
	filter := map[string]string{"sendWarehouseId": warehouseID, "type": orderType}
	if err := r.c.List(ctx, "orders", filter, &orders); err != nil {
		return nil, fmt.Errorf("list orders by send warehouse: %w", err)
	}
	return orders, nil
}

// ListByReceiveWarehouse órdenes de cualquier tipo con destino en la bodega.
func (r *OrderRepo) ListByReceiveWarehouse(ctx context.Context, warehouseID string) ([]entity.Order, error) {
	var orders []entity.Order
	filter := map[string]string{"receiveWarehouseId": warehouseID}
	if err := r.c.List(ctx, "orders", filter, &orders); err != nil {
		return nil, fmt.Errorf("list orders by receive warehouse: %w", err)
	}
	return orders, nil
}

// Patch actualización parcial de la orden.
func (r *OrderRepo) Patch(ctx context.Context, id string, fields map[string]any) (*entity.Order, error) {
	var o entity.Order
	if err := r.c.Patch(ctx, "orders", id, fields, &o); err != nil {
		return nil, fmt.Errorf("patch order: %w", err)
	}
	return &o, nil
}
