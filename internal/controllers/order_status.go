package controllers

import (
	"net/http"

	"bathhouse-orders/internal/dto"
	"bathhouse-orders/internal/entities"
	"bathhouse-orders/internal/services"
	apperrors "bathhouse-orders/pkg/errors"
	"bathhouse-orders/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// OrderStatusController — переходы заказа по статусам и чтение журнала.
type OrderStatusController struct {
	workflow services.OrderWorkflowServiceInterface
	logger   *zap.Logger
}

func NewOrderStatusController(workflow services.OrderWorkflowServiceInterface, logger *zap.Logger) *OrderStatusController {
	return &OrderStatusController{workflow: workflow, logger: logger}
}

// ChangeStatus переводит заказ в новый статус (PUT /orders/:id/status).
func (c *OrderStatusController) ChangeStatus(ctx echo.Context) error {
	var payload dto.ChangeOrderStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Warn("Ошибка привязки данных для смены статуса", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные в теле запроса", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	actor, err := actorFromCtx(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	order, err := c.workflow.ChangeStatus(
		ctx.Request().Context(), actor, ctx.Param("id"), entities.OrderStatus(payload.NewStatus))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.OrderToResponseDTO(order), "Статус заказа изменен", http.StatusOK)
}

// GetHistory отдаёт журнал переходов заказа в хронологическом порядке
// (GET /orders/:id/history).
func (c *OrderStatusController) GetHistory(ctx echo.Context) error {
	history, err := c.workflow.GetHistory(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	response := make([]dto.OrderStatusUpdateDTO, 0, len(history))
	for i := range history {
		response = append(response, dto.OrderStatusUpdateToResponseDTO(&history[i]))
	}
	return utils.SuccessResponse(ctx, response, "Журнал переходов заказа", http.StatusOK)
}
