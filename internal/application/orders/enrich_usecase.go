// Package orders contiene los casos de uso sobre órdenes individuales:
// el agregador de vista enriquecida y las transiciones del ciclo de vida.
package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nvdekay/stock-master-sub000/internal/application/dto"
	"github.com/nvdekay/stock-master-sub000/internal/domain"
	"github.com/nvdekay/stock-master-sub000/internal/domain/entity"
	"github.com/nvdekay/stock-master-sub000/internal/domain/repository"
)

// EnrichUseCase une una orden cruda con sus entidades de referencia
// (usuarios, bodegas, productos, líneas, envío) y la clasifica por tipo de
// movimiento. Transformación pura sobre datos ya leídos; sin efectos.
type EnrichUseCase struct {
	orderRepo      repository.OrderRepository
	detailRepo     repository.OrderDetailRepository
	userRepo       repository.UserRepository
	warehouseRepo  repository.WarehouseRepository
	productRepo    repository.ProductRepository
	shipmentRepo   repository.ShipmentRepository
	enterpriseRepo repository.EnterpriseRepository
}

// NewEnrichUseCase construye el caso de uso.
func NewEnrichUseCase(
	orderRepo repository.OrderRepository,
	detailRepo repository.OrderDetailRepository,
	userRepo repository.UserRepository,
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
	shipmentRepo repository.ShipmentRepository,
	enterpriseRepo repository.EnterpriseRepository,
) *EnrichUseCase {
	return &EnrichUseCase{
		orderRepo:      orderRepo,
		detailRepo:     detailRepo,
		userRepo:       userRepo,
		warehouseRepo:  warehouseRepo,
		productRepo:    productRepo,
		shipmentRepo:   shipmentRepo,
		enterpriseRepo: enterpriseRepo,
	}
}

// ReferenceSets conjuntos de referencia ya leídos con los que se enriquece
// una orden.
type ReferenceSets struct {
	Details    []entity.OrderDetail
	Users      []entity.User
	Warehouses []entity.Warehouse
	Products   []entity.Product
	Shipment   *entity.Shipment
	Enterprise *entity.Enterprise
}

// GetEnrichedOrder lee la orden y sus conjuntos de referencia (en paralelo,
// no hay dependencia de orden entre las lecturas) y construye la vista
// enriquecida.
func (uc *EnrichUseCase) GetEnrichedOrder(ctx context.Context, orderID string) (*dto.EnrichedOrderDTO, error) {
	o, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("orden enriquecida: %w", err)
	}

	type detailsResult struct {
		details []entity.OrderDetail
		err     error
	}
	type usersResult struct {
		users []entity.User
		err   error
	}
	type warehousesResult struct {
		warehouses []entity.Warehouse
		err        error
	}
	type productsResult struct {
		products []entity.Product
		err      error
	}
	type shipmentResult struct {
		shipment *entity.Shipment
		err      error
	}
	type enterpriseResult struct {
		enterprise *entity.Enterprise
		err        error
	}

	detailsCh := make(chan detailsResult, 1)
	usersCh := make(chan usersResult, 1)
	warehousesCh := make(chan warehousesResult, 1)
	productsCh := make(chan productsResult, 1)
	shipmentCh := make(chan shipmentResult, 1)
	enterpriseCh := make(chan enterpriseResult, 1)

	go func() {
		d, err := uc.detailRepo.ListByOrder(ctx, orderID)
		detailsCh <- detailsResult{d, err}
	}()
	go func() {
		u, err := uc.userRepo.List(ctx)
		usersCh <- usersResult{u, err}
	}()
	go func() {
		w, err := uc.warehouseRepo.List(ctx)
		warehousesCh <- warehousesResult{w, err}
	}()
	go func() {
		p, err := uc.productRepo.List(ctx)
		productsCh <- productsResult{p, err}
	}()
	go func() {
		s, err := uc.shipmentRepo.FindByOrder(ctx, orderID)
		shipmentCh <- shipmentResult{s, err}
	}()
	go func() {
		// Referencia ausente o colgante: se resuelve a nil, nunca a error.
		if o.EnterpriseID == "" {
			enterpriseCh <- enterpriseResult{}
			return
		}
		e, err := uc.enterpriseRepo.GetByID(ctx, o.EnterpriseID)
		if errors.Is(err, domain.ErrNotFound) {
			enterpriseCh <- enterpriseResult{}
			return
		}
		enterpriseCh <- enterpriseResult{e, err}
	}()

	details := <-detailsCh
	users := <-usersCh
	warehouses := <-warehousesCh
	products := <-productsCh
	shipment := <-shipmentCh
	enterprise := <-enterpriseCh

	if details.err != nil {
		return nil, fmt.Errorf("orden enriquecida: líneas: %w", details.err)
	}
	if users.err != nil {
		return nil, fmt.Errorf("orden enriquecida: usuarios: %w", users.err)
	}
	if warehouses.err != nil {
		return nil, fmt.Errorf("orden enriquecida: bodegas: %w", warehouses.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("orden enriquecida: productos: %w", products.err)
	}
	if shipment.err != nil {
		return nil, fmt.Errorf("orden enriquecida: envío: %w", shipment.err)
	}
	if enterprise.err != nil {
		return nil, fmt.Errorf("orden enriquecida: empresa: %w", enterprise.err)
	}

	return BuildEnrichedOrder(o, ReferenceSets{
		Details:    details.details,
		Users:      users.users,
		Warehouses: warehouses.warehouses,
		Products:   products.products,
		Shipment:   shipment.shipment,
		Enterprise: enterprise.enterprise,
	}), nil
}

// BuildEnrichedOrder es el join puro: resuelve identidades y bodegas,
// calcula el total y arma la variante según el tipo de orden. Una referencia
// ausente (buyer, shipper o receiver aún sin asignar) se resuelve a nil,
// nunca falla.
func BuildEnrichedOrder(o *entity.Order, refs ReferenceSets) *dto.EnrichedOrderDTO {
	usersByID := make(map[string]*entity.User, len(refs.Users))
	for i := range refs.Users {
		usersByID[refs.Users[i].ID] = &refs.Users[i]
	}
	warehousesByID := make(map[string]*entity.Warehouse, len(refs.Warehouses))
	for i := range refs.Warehouses {
		warehousesByID[refs.Warehouses[i].ID] = &refs.Warehouses[i]
	}
	productsByID := make(map[string]*entity.Product, len(refs.Products))
	for i := range refs.Products {
		productsByID[refs.Products[i].ID] = &refs.Products[i]
	}

	out := &dto.EnrichedOrderDTO{
		ID:               o.ID,
		Type:             o.Type,
		Status:           o.Status,
		Date:             o.Date,
		Note:             o.Note,
		Version:          o.Version,
		SendWarehouse:    warehouseSummary(warehousesByID[o.SendWarehouseID]),
		ReceiveWarehouse: warehouseSummary(warehousesByID[o.ReceiveWarehouseID]),
		TotalPrice:       decimal.Zero,
	}

	// TotalPrice = Σ (precio congelado de la línea ?? precio del catálogo) × cantidad
	for _, d := range refs.Details {
		unitPrice := decimal.Zero
		if d.Price != nil {
			unitPrice = *d.Price
		} else if p := productsByID[d.ProductID]; p != nil {
			unitPrice = p.Price
		}
		subtotal := unitPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))
		out.TotalPrice = out.TotalPrice.Add(subtotal)

		line := dto.OrderLineDTO{
			ID:        d.ID,
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			UnitPrice: unitPrice,
			Subtotal:  subtotal,
			Status:    d.Status,
		}
		if p := productsByID[d.ProductID]; p != nil {
			line.ProductName = p.Name
		}
		out.Lines = append(out.Lines, line)
	}

	if refs.Enterprise != nil {
		out.Enterprise = &dto.EnterpriseSummaryDTO{
			ID:   refs.Enterprise.ID,
			Name: refs.Enterprise.Name,
		}
	}

	if refs.Shipment != nil {
		out.Shipment = &dto.ShipmentSummaryDTO{
			ID:           refs.Shipment.ID,
			Status:       refs.Shipment.Status,
			DeliveryDate: refs.Shipment.DeliveryDate,
			Shipper:      userSummary(usersByID[refs.Shipment.ShipperID]),
		}
	}

	// Variante según tipo de movimiento: exactamente una sección poblada.
	switch o.Type {
	case entity.OrderTypeTransfer:
		out.Transfer = &dto.TransferViewDTO{
			Sender:   userSummary(usersByID[o.SenderStaffID]),
			Receiver: userSummary(usersByID[o.ReceiverStaffID]),
		}
	case entity.OrderTypeWholesale:
		out.Wholesale = &dto.WholesaleViewDTO{
			Buyer: userSummary(usersByID[o.BuyerID]),
		}
	case entity.OrderTypeImport:
		out.Import = &dto.ImportViewDTO{
			Sender:        userSummary(usersByID[o.SenderStaffID]),
			Receiver:      userSummary(usersByID[o.ReceiverStaffID]),
			CompletedDate: o.CompletedDate,
		}
	}

	return out
}

func userSummary(u *entity.User) *dto.UserSummaryDTO {
	if u == nil {
		return nil
	}
	return &dto.UserSummaryDTO{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}
}

func warehouseSummary(w *entity.Warehouse) *dto.WarehouseSummaryDTO {
	if w == nil {
		return nil
	}
	return &dto.WarehouseSummaryDTO{
		ID:      w.ID,
		Name:    w.Name,
		Address: w.Address,
	}
}
