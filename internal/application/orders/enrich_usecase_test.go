package orders_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvdekay/stock-master-sub000/internal/application/orders"
	"github.com/nvdekay/stock-master-sub000/internal/domain"
	"github.com/nvdekay/stock-master-sub000/internal/domain/entity"
)

type fakeDetailRepo struct {
	details []entity.OrderDetail
}

func (r *fakeDetailRepo) ListByOrder(_ context.Context, orderID string) ([]entity.OrderDetail, error) {
	var out []entity.OrderDetail
	for _, d := range r.details {
		if d.OrderID == orderID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDetailRepo) Create(_ context.Context, d *entity.OrderDetail) error {
	r.details = append(r.details, *d)
	return nil
}

func (r *fakeDetailRepo) Patch(_ context.Context, _ string, _ map[string]any) (*entity.OrderDetail, error) {
	return nil, nil
}

type fakeUserRepo struct {
	users []entity.User
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			c := u
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]entity.User, error) {
	return r.users, nil
}

type fakeWarehouseRepo struct {
	warehouses []entity.Warehouse
}

func (r *fakeWarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	for _, w := range r.warehouses {
		if w.ID == id {
			c := w
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeWarehouseRepo) List(_ context.Context) ([]entity.Warehouse, error) {
	return r.warehouses, nil
}

type fakeProductRepo struct {
	products []entity.Product
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			c := p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]entity.Product, error) {
	return r.products, nil
}

type fakeEnterpriseRepo struct {
	enterprises []entity.Enterprise
}

func (r *fakeEnterpriseRepo) GetByID(_ context.Context, id string) (*entity.Enterprise, error) {
	for _, e := range r.enterprises {
		if e.ID == id {
			c := e
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Join puro
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildEnrichedOrder_TotalConPrecioCongeladoYFallbackDeCatalogo(t *testing.T) {
	o := &entity.Order{
		ID:                 "ord-1",
		Type:               entity.OrderTypeTransfer,
		Status:             entity.OrderStatusPending,
		SenderStaffID:      "usr-env",
		ReceiverStaffID:    "usr-rec",
		SendWarehouseID:    "bod-a",
		ReceiveWarehouseID: "bod-b",
		Version:            3,
	}
	refs := orders.ReferenceSets{
		Details: []entity.OrderDetail{
			// Precio congelado en la línea: manda sobre el catálogo.
			{ID: "det-1", OrderID: "ord-1", ProductID: "prod-1", Quantity: 2, Price: dec("150.50")},
			// Sin precio congelado: se usa el precio actual del catálogo.
			{ID: "det-2", OrderID: "ord-1", ProductID: "prod-2", Quantity: 3},
		},
		Users: []entity.User{
			{ID: "usr-env", FullName: "Elena Vargas", Role: entity.RoleStaff},
			{ID: "usr-rec", FullName: "Raúl Cifuentes", Role: entity.RoleStaff},
		},
		Warehouses: []entity.Warehouse{
			{ID: "bod-a", Name: "Bodega Norte"},
			{ID: "bod-b", Name: "Bodega Sur"},
		},
		Products: []entity.Product{
			{ID: "prod-1", Name: "Tornillo M6", Price: decimal.RequireFromString("999")},
			{ID: "prod-2", Name: "Tuerca M6", Price: decimal.RequireFromString("40")},
		},
		Enterprise: &entity.Enterprise{ID: "emp-1", Name: "Aceros del Sur"},
	}

	out := orders.BuildEnrichedOrder(o, refs)

	// 2×150.50 + 3×40 = 421
	assert.True(t, out.TotalPrice.Equal(decimal.RequireFromString("421")),
		"total %s", out.TotalPrice)

	require.Len(t, out.Lines, 2)
	assert.Equal(t, "Tornillo M6", out.Lines[0].ProductName)
	assert.True(t, out.Lines[0].UnitPrice.Equal(decimal.RequireFromString("150.50")))
	assert.True(t, out.Lines[1].UnitPrice.Equal(decimal.RequireFromString("40")))

	require.NotNil(t, out.SendWarehouse)
	assert.Equal(t, "Bodega Norte", out.SendWarehouse.Name)
	require.NotNil(t, out.ReceiveWarehouse)
	assert.Equal(t, "Bodega Sur", out.ReceiveWarehouse.Name)
	require.NotNil(t, out.Enterprise)
	assert.Equal(t, "Aceros del Sur", out.Enterprise.Name)
}

func TestBuildEnrichedOrder_UnionEtiquetadaPorTipo(t *testing.T) {
	base := entity.Order{ID: "ord-1", Status: entity.OrderStatusPending}

	transfer := base
	transfer.Type = entity.OrderTypeTransfer
	out := orders.BuildEnrichedOrder(&transfer, orders.ReferenceSets{})
	assert.NotNil(t, out.Transfer)
	assert.Nil(t, out.Wholesale)
	assert.Nil(t, out.Import)

	wholesale := base
	wholesale.Type = entity.OrderTypeWholesale
	out = orders.BuildEnrichedOrder(&wholesale, orders.ReferenceSets{})
	assert.Nil(t, out.Transfer)
	assert.NotNil(t, out.Wholesale)
	assert.Nil(t, out.Import)

	completed := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
	imported := base
	imported.Type = entity.OrderTypeImport
	imported.CompletedDate = &completed
	out = orders.BuildEnrichedOrder(&imported, orders.ReferenceSets{})
	assert.Nil(t, out.Transfer)
	assert.Nil(t, out.Wholesale)
	require.NotNil(t, out.Import)
	require.NotNil(t, out.Import.CompletedDate)
	assert.True(t, completed.Equal(*out.Import.CompletedDate))
}

func TestBuildEnrichedOrder_ReferenciasAusentesResuelvenANil(t *testing.T) {
	// Orden wholesale sin buyer asignado todavía y con bodegas desconocidas:
	// las referencias ausentes se resuelven a nil, nunca a error.
	o := &entity.Order{
		ID:              "ord-1",
		Type:            entity.OrderTypeWholesale,
		Status:          entity.OrderStatusPending,
		SendWarehouseID: "bod-fantasma",
	}

	out := orders.BuildEnrichedOrder(o, orders.ReferenceSets{})

	assert.Nil(t, out.SendWarehouse)
	assert.Nil(t, out.ReceiveWarehouse)
	assert.Nil(t, out.Enterprise)
	assert.Nil(t, out.Shipment)
	require.NotNil(t, out.Wholesale)
	assert.Nil(t, out.Wholesale.Buyer)
	assert.True(t, out.TotalPrice.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Caso de uso con lecturas en paralelo
// ──────────────────────────────────────────────────────────────────────────────

func TestGetEnrichedOrder_ResuelveEnvioYTransportista(t *testing.T) {
	o := &entity.Order{
		ID:           "ord-1",
		Type:         entity.OrderTypeWholesale,
		Status:       entity.OrderStatusInTransit,
		BuyerID:      "usr-buy",
		EnterpriseID: "emp-1",
		Version:      2,
	}
	uc := orders.NewEnrichUseCase(
		&fakeOrderRepo{orders: map[string]*entity.Order{o.ID: o}},
		&fakeDetailRepo{details: []entity.OrderDetail{
			{ID: "det-1", OrderID: "ord-1", ProductID: "prod-1", Quantity: 1, Price: dec("10")},
		}},
		&fakeUserRepo{users: []entity.User{
			{ID: "usr-buy", FullName: "Comercial Andina", Role: entity.RoleBuyer},
			{ID: "usr-ship", FullName: "Pedro Lemos", Role: entity.RoleShipper},
		}},
		&fakeWarehouseRepo{},
		&fakeProductRepo{products: []entity.Product{{ID: "prod-1", Name: "Tornillo M6"}}},
		&fakeShipmentRepo{shipments: []*entity.Shipment{
			{ID: "env-1", OrderID: "ord-1", ShipperID: "usr-ship", Status: entity.ShipmentStatusCreated},
		}},
		&fakeEnterpriseRepo{enterprises: []entity.Enterprise{{ID: "emp-1", Name: "Aceros del Sur"}}},
	)

	out, err := uc.GetEnrichedOrder(context.Background(), "ord-1")
	require.NoError(t, err)

	require.NotNil(t, out.Enterprise)
	assert.Equal(t, "Aceros del Sur", out.Enterprise.Name)

	assert.Equal(t, entity.OrderTypeWholesale, out.Type)
	require.NotNil(t, out.Wholesale)
	require.NotNil(t, out.Wholesale.Buyer)
	assert.Equal(t, "Comercial Andina", out.Wholesale.Buyer.FullName)

	require.NotNil(t, out.Shipment)
	assert.Equal(t, "env-1", out.Shipment.ID)
	require.NotNil(t, out.Shipment.Shipper)
	assert.Equal(t, "Pedro Lemos", out.Shipment.Shipper.FullName)

	assert.True(t, out.TotalPrice.Equal(decimal.RequireFromString("10")))
}

func TestGetEnrichedOrder_EmpresaColganteResuelveANil(t *testing.T) {
	// EnterpriseID apunta a una empresa que ya no existe en el almacén: la
	// referencia colgante se resuelve a nil en lugar de fallar la vista.
	o := &entity.Order{
		ID:           "ord-1",
		Type:         entity.OrderTypeTransfer,
		Status:       entity.OrderStatusPending,
		EnterpriseID: "emp-borrada",
	}
	uc := orders.NewEnrichUseCase(
		&fakeOrderRepo{orders: map[string]*entity.Order{o.ID: o}},
		&fakeDetailRepo{},
		&fakeUserRepo{},
		&fakeWarehouseRepo{},
		&fakeProductRepo{},
		&fakeShipmentRepo{},
		&fakeEnterpriseRepo{},
	)

	out, err := uc.GetEnrichedOrder(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Nil(t, out.Enterprise)
}
