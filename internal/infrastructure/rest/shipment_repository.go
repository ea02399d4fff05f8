package rest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nvdekay/stock-master-sub000/internal/domain/entity"
	"github.com/nvdekay/stock-master-sub000/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo adaptador de ShipmentRepository sobre la colección shipments.
type ShipmentRepo struct {
	c *Client
}

// NewShipmentRepository construye el adaptador.
func NewShipmentRepository(c *Client) *ShipmentRepo {
	return &ShipmentRepo{c: c}
}

// FindByOrder devuelve el envío de la orden o (nil, nil) si no tiene.
func (r *ShipmentRepo) FindByOrder(ctx context.Context, orderID string) (*entity.Shipment, error) {
	var rows []entity.Shipment
	if err := r.c.List(ctx, "shipments", map[string]string{"orderId": orderID}, &rows); err != nil {
		return nil, fmt.Errorf("find shipment: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// Create crea el envío; asigna id y CreatedAt si vienen vacíos.
func (r *ShipmentRepo) Create(ctx context.Context, s *entity.Shipment) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	if err := r.c.Create(ctx, "shipments", s, s); err != nil {
		return fmt.Errorf("create shipment: %w", err)
	}
	return nil
}
