package reports

import (
	"context"
	"fmt"

	"github.com/nvdekay/stock-master-sub000/internal/application/dto"
	"github.com/nvdekay/stock-master-sub000/internal/domain/entity"
	"github.com/nvdekay/stock-master-sub000/internal/domain/repository"
)

// OverviewPDFGenerator puerto de renderizado del resumen a PDF.
type OverviewPDFGenerator interface {
	GenerateOverviewPDF(ctx context.Context, overview *dto.OverviewDTO, warehouse *entity.Warehouse) ([]byte, error)
}

// PDFUseCase compone el resumen de la bodega y lo entrega como PDF.
type PDFUseCase struct {
	overview      *OverviewUseCase
	warehouseRepo repository.WarehouseRepository
	generator     OverviewPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	overview *OverviewUseCase,
	warehouseRepo repository.WarehouseRepository,
	generator OverviewPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{overview: overview, warehouseRepo: warehouseRepo, generator: generator}
}

// GetOverviewPDF genera el PDF del resumen de la bodega.
func (uc *PDFUseCase) GetOverviewPDF(ctx context.Context, warehouseID string) ([]byte, error) {
	warehouse, err := uc.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("pdf resumen: bodega: %w", err)
	}
	overview, err := uc.overview.GetOverview(ctx, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("pdf resumen: %w", err)
	}
	return uc.generator.GenerateOverviewPDF(ctx, overview, warehouse)
}
