// Package reports contiene los casos de uso de reportería: el compositor de
// historial/resumen de una bodega y su exportación a PDF.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nvdekay/stock-master-sub000/internal/application/dto"
	"github.com/nvdekay/stock-master-sub000/internal/domain/entity"
	"github.com/nvdekay/stock-master-sub000/internal/domain/repository"
)

const trailingMonths = 6 // ventana de actividad mensual, mes actual incluido

// OverviewUseCase mergea los conjuntos de órdenes export/import/wholesale de
// una bodega en vistas de-duplicadas por estado y por mes, y calcula la
// valorización del inventario y la partición de salud de stock. Agregación
// puramente en memoria, recalculada en cada invocación; sin caché.
type OverviewUseCase struct {
	orderRepo     repository.OrderRepository
	inventoryRepo repository.InventoryRepository
	productRepo   repository.ProductRepository
}

// NewOverviewUseCase construye el caso de uso.
func NewOverviewUseCase(
	orderRepo repository.OrderRepository,
	inventoryRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
) *OverviewUseCase {
	return &OverviewUseCase{
		orderRepo:     orderRepo,
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
	}
}

// GetOverview lee los tres conjuntos de órdenes, el inventario de la bodega y
// el catálogo — en paralelo, no hay dependencia de orden entre las lecturas —
// y compone el resumen.
func (uc *OverviewUseCase) GetOverview(ctx context.Context, warehouseID string) (*dto.OverviewDTO, error) {
	type ordersResult struct {
		orders []entity.Order
		err    error
	}
	type inventoryResult struct {
		rows []entity.Inventory
		err  error
	}
	type productsResult struct {
		products []entity.Product
		err      error
	}

	exportCh := make(chan ordersResult, 1)
	importCh := make(chan ordersResult, 1)
	wholesaleCh := make(chan ordersResult, 1)
	inventoryCh := make(chan inventoryResult, 1)
	productsCh := make(chan productsResult, 1)

	go func() {
		orders, err := uc.orderRepo.ListBySendWarehouse(ctx, warehouseID, entity.OrderTypeTransfer)
		exportCh <- ordersResult{orders, err}
	}()
	go func() {
		orders, err := uc.orderRepo.ListByReceiveWarehouse(ctx, warehouseID)
		importCh <- ordersResult{orders, err}
	}()
	go func() {
		orders, err := uc.orderRepo.ListBySendWarehouse(ctx, warehouseID, entity.OrderTypeWholesale)
		wholesaleCh <- ordersResult{orders, err}
	}()
	go func() {
		rows, err := uc.inventoryRepo.ListByWarehouse(ctx, warehouseID)
		inventoryCh <- inventoryResult{rows, err}
	}()
	go func() {
		products, err := uc.productRepo.List(ctx)
		productsCh <- productsResult{products, err}
	}()

	exports := <-exportCh
	imports := <-importCh
	wholesale := <-wholesaleCh
	inventory := <-inventoryCh
	products := <-productsCh

	if exports.err != nil {
		return nil, fmt.Errorf("resumen: órdenes de salida: %w", exports.err)
	}
	if imports.err != nil {
		return nil, fmt.Errorf("resumen: órdenes de entrada: %w", imports.err)
	}
	if wholesale.err != nil {
		return nil, fmt.Errorf("resumen: órdenes mayoristas: %w", wholesale.err)
	}
	if inventory.err != nil {
		return nil, fmt.Errorf("resumen: inventario: %w", inventory.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("resumen: productos: %w", products.err)
	}

	return BuildOverview(
		time.Now(),
		warehouseID,
		exports.orders,
		imports.orders,
		wholesale.orders,
		inventory.rows,
		products.products,
	), nil
}

// BuildOverview es la agregación pura. Los filtros de entrada garantizan que
// una orden aparezca en a lo sumo uno de los tres conjuntos, pero la unión se
// hace defensivamente con un mapa por id: un duplicado cuenta una sola vez.
func BuildOverview(
	now time.Time,
	warehouseID string,
	exports, imports, wholesale []entity.Order,
	inventory []entity.Inventory,
	products []entity.Product,
) *dto.OverviewDTO {
	merged := make(map[string]*entity.Order)
	for _, set := range [][]entity.Order{exports, imports, wholesale} {
		for i := range set {
			merged[set[i].ID] = &set[i]
		}
	}

	out := &dto.OverviewDTO{
		WarehouseID: warehouseID,
		TotalOrders: len(merged),
	}

	// ── Conteos por estado ────────────────────────────────────────────────
	for _, o := range merged {
		switch o.Status {
		case entity.OrderStatusPending:
			out.StatusCounts.Pending++
		case entity.OrderStatusProcessing, entity.OrderStatusReady:
			// ready es el sub-estado implícito del carril pending/processing.
			out.StatusCounts.Processing++
		case entity.OrderStatusInTransit:
			out.StatusCounts.InTransit++
		case entity.OrderStatusShipped:
			out.StatusCounts.Shipped++
		case entity.OrderStatusCompleted:
			out.StatusCounts.Completed++
		case entity.OrderStatusCancelled, entity.OrderStatusDeclined:
			out.StatusCounts.Cancelled++
		}
	}
	out.StatusCounts.PendingAndProcessing = out.StatusCounts.Pending + out.StatusCounts.Processing
	out.StatusCounts.InTransitAndShipped = out.StatusCounts.InTransit + out.StatusCounts.Shipped

	// ── Actividad mensual: 6 meses hacia atrás, mes actual incluido ───────
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(trailingMonths - 1), 0)
	buckets := make([]dto.MonthlyActivityDTO, trailingMonths)
	indexByMonth := make(map[string]int, trailingMonths)
	for i := 0; i < trailingMonths; i++ {
		label := monthStart.AddDate(0, i, 0).Format("2006-01")
		buckets[i] = dto.MonthlyActivityDTO{Month: label}
		indexByMonth[label] = i
	}
	for _, o := range merged {
		idx, ok := indexByMonth[o.Date.Format("2006-01")]
		if !ok {
			continue
		}
		switch o.Type {
		case entity.OrderTypeTransfer:
			buckets[idx].Transfer++
		case entity.OrderTypeWholesale:
			buckets[idx].Wholesale++
		case entity.OrderTypeImport:
			buckets[idx].Import++
		}
		buckets[idx].Total++
	}
	out.MonthlyActivity = buckets

	// ── Valorización y salud de stock ─────────────────────────────────────
	pricesByProduct := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		pricesByProduct[p.ID] = p.Price
	}

	valuation := decimal.Zero
	onHandByProduct := make(map[string]int, len(products))
	for _, p := range products {
		onHandByProduct[p.ID] = 0 // sin filas de inventario = agotado
	}
	for _, row := range inventory {
		onHandByProduct[row.ProductID] += row.Quantity
		if price, ok := pricesByProduct[row.ProductID]; ok {
			valuation = valuation.Add(price.Mul(decimal.NewFromInt(int64(row.Quantity))))
		}
	}
	out.InventoryValuation = valuation

	for _, qty := range onHandByProduct {
		switch {
		case qty > 10:
			out.StockHealth.InStock++
		case qty > 0:
			out.StockHealth.LowStock++
		default:
			out.StockHealth.OutOfStock++
		}
	}

	return out
}
