package repository

import (
	"context"

	"github.com/nvdekay/stock-master-sub000/internal/domain/entity"
)

// OrderDetailRepository acceso a la colección orderDetails.
type OrderDetailRepository interface {
	ListByOrder(ctx context.Context, orderID string) ([]entity.OrderDetail, error)
	Create(ctx context.Context, detail *entity.OrderDetail) error
	Patch(ctx context.Context, id string, fields map[string]any) (*entity.OrderDetail, error)
}
