package rest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nvdekay/stock-master-sub000/internal/domain/entity"
	"github.com/nvdekay/stock-master-sub000/internal/domain/repository"
)

var _ repository.OrderDetailRepository = (*OrderDetailRepo)(nil)

// OrderDetailRepo adaptador de OrderDetailRepository sobre orderDetails.
type OrderDetailRepo struct {
	c *Client
}

// NewOrderDetailRepository construye el adaptador.
func NewOrderDetailRepository(c *Client) *OrderDetailRepo {
	return &OrderDetailRepo{c: c}
}

// ListByOrder líneas de la orden dada.
func (r *OrderDetailRepo) ListByOrder(ctx context.Context, orderID string) ([]entity.OrderDetail, error) {
	var details []entity.OrderDetail
	if err := r.c.List(ctx, "orderDetails", map[string]string{"orderId": orderID}, &details); err != nil {
		return nil, fmt.Errorf("list order details: %w", err)
	}
	return details, nil
}

// Create crea una línea nueva; asigna id si viene vacío.
func (r *OrderDetailRepo) Create(ctx context.Context, detail *entity.OrderDetail) error {
	if detail.ID == "" {
		detail.ID = uuid.New().String()
	}
	if err := r.c.Create(ctx, "orderDetails", detail, detail); err != nil {
		return fmt.Errorf("create order detail: %w", err)
	}
	return nil
}

// Patch actualización parcial de la línea.
func (r *OrderDetailRepo) Patch(ctx context.Context, id string, fields map[string]any) (*entity.OrderDetail, error) {
	var d entity.OrderDetail
	if err := r.c.Patch(ctx, "orderDetails", id, fields, &d); err != nil {
		return nil, fmt.Errorf("patch order detail: %w", err)
	}
	return &d, nil
}
