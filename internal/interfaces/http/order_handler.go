package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nvdekay/stock-master-sub000/internal/application/dto"
	"github.com/nvdekay/stock-master-sub000/internal/application/orders"
	"github.com/nvdekay/stock-master-sub000/internal/application/reconcile"
	"github.com/nvdekay/stock-master-sub000/internal/domain"
)

// OrderHandler maneja las peticiones HTTP sobre órdenes: vista enriquecida,
// transiciones del ciclo de vida y reconciliación de importaciones.
type OrderHandler struct {
	enrichUC     *orders.EnrichUseCase
	transitionUC *orders.TransitionUseCase
	reconcileUC  *reconcile.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(
	enrichUC *orders.EnrichUseCase,
	transitionUC *orders.TransitionUseCase,
	reconcileUC *reconcile.UseCase,
) *OrderHandler {
	return &OrderHandler{enrichUC: enrichUC, transitionUC: transitionUC, reconcileUC: reconcileUC}
}

// GetByID godoc
// @Summary      Orden enriquecida
// @Description  Une la orden con remitente/receptor/comprador/transportista,
//               bodegas de origen y destino, líneas con nombre de producto y
//               total calculado.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.EnrichedOrderDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.enrichUC.GetEnrichedOrder(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Transition godoc
// @Summary      Transición de estado validada
// @Description  Aplica pending→ready / pending→declined (exportador), la
//               aceptación del transportista (crea el envío) o la edición
//               administrativa de estado+nota, según el rol del token.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la orden"
// @Param        body  body  dto.TransitionRequest  true  "status destino y nota opcional"
// @Success      200   {object}  dto.TransitionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/transition [post]
func (h *OrderHandler) Transition(c *fiber.Ctx) error {
	var in dto.TransitionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status requerido"})
	}
	out, err := h.transitionUC.Transition(c.Context(), orders.TransitionInput{
		OrderID: c.Params("id"),
		Target:  in.Status,
		Note:    in.Note,
		ActorID: GetUserID(c),
		Role:    GetRole(c),
	})
	if err != nil {
		return transitionError(c, err)
	}
	return c.JSON(out)
}

// Reconcile godoc
// @Summary      Reconciliar una orden de importación
// @Description  Valida las cantidades aceptadas por línea, parte los
//               remanentes defectuosos en filas de devolución, pliega lo
//               aceptado al inventario de la bodega receptora y finaliza la
//               orden. Reintentable: las líneas ya procesadas se saltan.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID de la orden"
// @Param        body  body  dto.ReconcileRequest  true  "cantidad aceptada por línea"
// @Success      200   {object}  dto.ReconcileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/reconcile [post]
func (h *OrderHandler) Reconcile(c *fiber.Ctx) error {
	var in dto.ReconcileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.reconcileUC.ReconcileImport(c.Context(), c.Params("id"), in.AcceptedQuantities, GetUserID(c))
	if err != nil {
		return transitionError(c, err)
	}
	return c.JSON(out)
}

// transitionError mapea los errores de dominio del ciclo de vida y la
// reconciliación a códigos HTTP.
func transitionError(c *fiber.Ctx, err error) error {
	var invalidTransition *domain.InvalidTransitionError
	if errors.As(err, &invalidTransition) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INVALID_TRANSITION",
			Message: invalidTransition.Error(),
		})
	}
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:     "VALIDATION",
			Message:  validation.Error(),
			DetailID: validation.DetailID,
		})
	}
	var partial *domain.PartialApplicationError
	if errors.As(err, &partial) {
		// Sin rollback: el caller reintenta la misma reconciliación y las
		// líneas ya confirmadas se saltan.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:     "PARTIAL_APPLICATION",
			Message:  partial.Error(),
			DetailID: partial.DetailID,
		})
	}
	if errors.Is(err, domain.ErrVersionConflict) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "VERSION_CONFLICT", Message: "la orden fue modificada por otro actor; recargue y reintente"})
	}
	if errors.Is(err, domain.ErrConflict) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
