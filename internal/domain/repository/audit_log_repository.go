package repository

import (
	"context"

	"github.com/nvdekay/stock-master-sub000/internal/domain/entity"
)

// AuditLogRepository acceso de solo escritura a la colección logs.
type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
}
