package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nvdekay/stock-master-sub000/internal/application/dto"
	"github.com/nvdekay/stock-master-sub000/internal/application/reports"
	"github.com/nvdekay/stock-master-sub000/internal/domain"
)

// ReportHandler maneja las peticiones de reportería de bodega.
type ReportHandler struct {
	overviewUC *reports.OverviewUseCase
	pdfUC      *reports.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(overviewUC *reports.OverviewUseCase, pdfUC *reports.PDFUseCase) *ReportHandler {
	return &ReportHandler{overviewUC: overviewUC, pdfUC: pdfUC}
}

// GetOverview godoc
// @Summary      Resumen operativo de la bodega
// @Description  Unión de-duplicada de las órdenes export/import/wholesale de
//               la bodega con conteos por estado, actividad mensual (6 meses),
//               valorización del inventario y salud de stock.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Bodega; por defecto la del token"
// @Success      200  {object}  dto.OverviewDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/overview [get]
func (h *ReportHandler) GetOverview(c *fiber.Ctx) error {
	warehouseID := c.Query("warehouse_id")
	if warehouseID == "" {
		warehouseID = GetWarehouseID(c)
	}
	if warehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id requerido"})
	}
	out, err := h.overviewUC.GetOverview(c.Context(), warehouseID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetOverviewPDF godoc
// @Summary      Resumen operativo en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        warehouse_id  query  string  false  "Bodega; por defecto la del token"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/overview/pdf [get]
func (h *ReportHandler) GetOverviewPDF(c *fiber.Ctx) error {
	warehouseID := c.Query("warehouse_id")
	if warehouseID == "" {
		warehouseID = GetWarehouseID(c)
	}
	if warehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id requerido"})
	}
	raw, err := h.pdfUC.GetOverviewPDF(c.Context(), warehouseID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bodega no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="overview.pdf"`)
	return c.Send(raw)
}
