package repository

import (
	"context"

	"github.com/nvdekay/stock-master-sub000/internal/domain/entity"
)

// ShipmentRepository acceso a la colección shipments. Este núcleo crea el
// envío en la aceptación del transportista y solo lo lee después.
type ShipmentRepository interface {
	FindByOrder(ctx context.Context, orderID string) (*entity.Shipment, error)
	Create(ctx context.Context, s *entity.Shipment) error
}
