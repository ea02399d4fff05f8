// Package pdf implementa el renderizado del resumen operativo de una bodega
// con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Bodega + Dirección  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ÓRDENES: totales y conteos por estado                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ACTIVIDAD: 6 meses por tipo de movimiento                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INVENTARIO: valorización + salud de stock                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/nvdekay/stock-master-sub000/internal/application/dto"
	appreports "github.com/nvdekay/stock-master-sub000/internal/application/reports"
	"github.com/nvdekay/stock-master-sub000/internal/domain/entity"
)

var _ appreports.OverviewPDFGenerator = (*MarotoOverviewGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 16, Green: 78, Blue: 139}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoOverviewGenerator implementa reports.OverviewPDFGenerator con Maroto v2.
type MarotoOverviewGenerator struct{}

// NewMarotoOverviewGenerator construye el generador.
func NewMarotoOverviewGenerator() *MarotoOverviewGenerator { return &MarotoOverviewGenerator{} }

// GenerateOverviewPDF genera el PDF y devuelve sus bytes.
func (g *MarotoOverviewGenerator) GenerateOverviewPDF(
	_ context.Context,
	overview *dto.OverviewDTO,
	warehouse *entity.Warehouse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen operativo de bodega", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(warehouse))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("Órdenes"))
	m.AddRows(statusRows(overview)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("Actividad mensual"))
	m.AddRows(activityHeaderRow())
	for _, bucket := range overview.MonthlyActivity {
		m.AddRows(activityRow(bucket))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("Inventario"))
	m.AddRows(inventoryRows(overview)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(warehouse *entity.Warehouse) core.Row {
	generated := time.Now().Format("02/01/2006 15:04")
	return row.New(16).Add(
		col.New(8).Add(
			text.New(warehouse.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(warehouse.Address, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+generated, props.Text{
				Size: 9, Top: 2, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 1}),
		),
	)
}

func statusRows(overview *dto.OverviewDTO) []core.Row {
	counts := overview.StatusCounts
	pairs := []struct {
		label string
		value int
	}{
		{"Total de órdenes", overview.TotalOrders},
		{"Pendientes y en proceso", counts.PendingAndProcessing},
		{"En tránsito y despachadas", counts.InTransitAndShipped},
		{"Completadas", counts.Completed},
		{"Canceladas", counts.Cancelled},
	}
	rows := make([]core.Row, 0, len(pairs))
	for _, pair := range pairs {
		rows = append(rows, row.New(6).Add(
			col.New(8).Add(text.New(pair.label, props.Text{Size: 9, Top: 1})),
			col.New(4).Add(text.New(strconv.Itoa(pair.value), props.Text{
				Size: 9, Top: 1, Align: align.Right, Style: fontstyle.Bold,
			})),
		))
	}
	return rows
}

func activityHeaderRow() core.Row {
	header := props.Text{Size: 8, Top: 1, Style: fontstyle.Bold, Color: colorGray}
	return row.New(6).Add(
		col.New(3).Add(text.New("Mes", header)),
		col.New(3).Add(text.New("Transfer", headerRight(header))),
		col.New(3).Add(text.New("Wholesale", headerRight(header))),
		col.New(3).Add(text.New("Import", headerRight(header))),
	)
}

func headerRight(p props.Text) props.Text {
	p.Align = align.Right
	return p
}

func activityRow(bucket dto.MonthlyActivityDTO) core.Row {
	cell := props.Text{Size: 9, Top: 1}
	return row.New(5).Add(
		col.New(3).Add(text.New(bucket.Month, cell)),
		col.New(3).Add(text.New(strconv.Itoa(bucket.Transfer), headerRight(cell))),
		col.New(3).Add(text.New(strconv.Itoa(bucket.Wholesale), headerRight(cell))),
		col.New(3).Add(text.New(strconv.Itoa(bucket.Import), headerRight(cell))),
	)
}

func inventoryRows(overview *dto.OverviewDTO) []core.Row {
	health := overview.StockHealth
	pairs := []struct {
		label string
		value string
	}{
		{"Valorización del inventario", overview.InventoryValuation.StringFixed(2)},
		{"Productos con stock", strconv.Itoa(health.InStock)},
		{"Productos con stock bajo", strconv.Itoa(health.LowStock)},
		{"Productos agotados", strconv.Itoa(health.OutOfStock)},
	}
	rows := make([]core.Row, 0, len(pairs))
	for _, pair := range pairs {
		rows = append(rows, row.New(6).Add(
			col.New(8).Add(text.New(pair.label, props.Text{Size: 9, Top: 1})),
			col.New(4).Add(text.New(pair.value, props.Text{
				Size: 9, Top: 1, Align: align.Right, Style: fontstyle.Bold,
			})),
		))
	}
	return rows
}
