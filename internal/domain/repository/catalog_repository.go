package repository

import (
	"context"

	"github.com/nvdekay/stock-master-sub000/internal/domain/entity"
)

// Repositorios de entidades de referencia (catálogo y datos
// organizacionales). Solo lectura desde este núcleo.

// ProductRepository acceso a la colección products.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]entity.Product, error)
}

// WarehouseRepository acceso a la colección warehouses.
type WarehouseRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
	List(ctx context.Context) ([]entity.Warehouse, error)
}

// UserRepository acceso a la colección users.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
}

// EnterpriseRepository acceso a la colección enterprises.
type EnterpriseRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Enterprise, error)
}
