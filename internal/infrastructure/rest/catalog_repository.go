package rest

import (
	"context"
	"fmt"

	"github.com/nvdekay/stock-master-sub000/internal/domain/entity"
	"github.com/nvdekay/stock-master-sub000/internal/domain/repository"
)

var (
	_ repository.ProductRepository    = (*ProductRepo)(nil)
	_ repository.WarehouseRepository  = (*WarehouseRepo)(nil)
	_ repository.UserRepository       = (*UserRepo)(nil)
	_ repository.EnterpriseRepository = (*EnterpriseRepo)(nil)
)

// Adaptadores de solo lectura para las entidades de referencia.

// ProductRepo adaptador sobre la colección products.
type ProductRepo struct{ c *Client }

// NewProductRepository construye el adaptador.
func NewProductRepository(c *Client) *ProductRepo { return &ProductRepo{c: c} }

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var p entity.Product
	if err := r.c.Get(ctx, "products", id, &p); err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.c.List(ctx, "products", nil, &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// WarehouseRepo adaptador sobre la colección warehouses.
type WarehouseRepo struct{ c *Client }

// NewWarehouseRepository construye el adaptador.
func NewWarehouseRepository(c *Client) *WarehouseRepo { return &WarehouseRepo{c: c} }

func (r *WarehouseRepo) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	var w entity.Warehouse
	if err := r.c.Get(ctx, "warehouses", id, &w); err != nil {
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

func (r *WarehouseRepo) List(ctx context.Context) ([]entity.Warehouse, error) {
	var warehouses []entity.Warehouse
	if err := r.c.List(ctx, "warehouses", nil, &warehouses); err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	return warehouses, nil
}

// UserRepo adaptador sobre la colección users.
type UserRepo struct{ c *Client }

// NewUserRepository construye el adaptador.
func NewUserRepository(c *Client) *UserRepo { return &UserRepo{c: c} }

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	if err := r.c.Get(ctx, "users", id, &u); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var users []entity.User
	if err := r.c.List(ctx, "users", map[string]string{"email": email}, &users); err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *UserRepo) List(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.c.List(ctx, "users", nil, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// EnterpriseRepo adaptador sobre la colección enterprises.
type EnterpriseRepo struct{ c *Client }

// NewEnterpriseRepository construye el adaptador.
func NewEnterpriseRepository(c *Client) *EnterpriseRepo { return &EnterpriseRepo{c: c} }

func (r *EnterpriseRepo) GetByID(ctx context.Context, id string) (*entity.Enterprise, error) {
	var e entity.Enterprise
	if err := r.c.Get(ctx, "enterprises", id, &e); err != nil {
		return nil, fmt.Errorf("get enterprise: %w", err)
	}
	return &e, nil
}
