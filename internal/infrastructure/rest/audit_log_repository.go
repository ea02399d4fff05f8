package rest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nvdekay/stock-master-sub000/internal/domain/entity"
	"github.com/nvdekay/stock-master-sub000/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo adaptador de AuditLogRepository sobre la colección logs.
type AuditLogRepo struct {
	c *Client
}

// NewAuditLogRepository construye el adaptador.
func NewAuditLogRepository(c *Client) *AuditLogRepo {
	return &AuditLogRepo{c: c}
}

// Create escribe una entrada de bitácora.
func (r *AuditLogRepo) Create(ctx context.Context, log *entity.AuditLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	if err := r.c.Create(ctx, "logs", log, nil); err != nil {
		return fmt.Errorf("create audit log: %w", err)
	}
	return nil
}
