package controllers

import (
	"net/http"

	"bathhouse-orders/internal/dto"
	"bathhouse-orders/internal/repositories"
	"bathhouse-orders/internal/services"
	apperrors "bathhouse-orders/pkg/errors"
	"bathhouse-orders/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// OrderController обрабатывает HTTP-запросы по заказам: список,
// карточка, создание, обновление, запрос удаления и значения параметров.
type OrderController struct {
	service      services.OrderServiceInterface
	paramService services.OrderParamValueServiceInterface
	logger       *zap.Logger
}

func NewOrderController(
	service services.OrderServiceInterface,
	paramService services.OrderParamValueServiceInterface,
	logger *zap.Logger,
) *OrderController {
	return &OrderController{service: service, paramService: paramService, logger: logger}
}

func actorFromCtx(ctx echo.Context) (services.Actor, error) {
	reqCtx := ctx.Request().Context()
	userID, err := utils.GetUserIDFromCtx(reqCtx)
	if err != nil {
		return services.Actor{}, err
	}
	roles, err := utils.GetUserRolesFromCtx(reqCtx)
	if err != nil {
		return services.Actor{}, err
	}
	return services.Actor{UserID: userID, Roles: roles}, nil
}

// GetAll отдаёт список заказов с фильтрацией, сортировкой и пагинацией
// (GET /orders).
func (c *OrderController) GetAll(ctx echo.Context) error {
	filter, err := utils.ParseFilterFromQuery(ctx.QueryParams(), repositories.OrderSortingFields)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	orders, total, err := c.service.GetOrders(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for i := range orders {
		response = append(response, dto.OrderToResponseDTO(&orders[i]))
	}
	return utils.SuccessResponse(ctx, response, "Список заказов", http.StatusOK, total)
}

// GetByID отдаёт заказ вместе с параметрами и журналом переходов
// (GET /orders/:id).
func (c *OrderController) GetByID(ctx echo.Context) error {
	order, err := c.service.FindOrder(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.OrderToResponseDTO(order), "Заказ", http.StatusOK)
}

// Create создаёт заказ в статусе NEW (POST /orders).
func (c *OrderController) Create(ctx echo.Context) error {
	var payload dto.CreateOrderDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Warn("Ошибка привязки данных для создания заказа", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные в теле запроса", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	actor, err := actorFromCtx(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	order, err := c.service.CreateOrder(ctx.Request().Context(), actor, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.OrderToResponseDTO(order), "Заказ успешно создан", http.StatusCreated)
}

// Update меняет заказчика или исполнителя (PUT /orders/:id). Статус
// через этот эндпоинт не меняется.
func (c *OrderController) Update(ctx echo.Context) error {
	var payload dto.UpdateOrderDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные в теле запроса", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	order, err := c.service.UpdateOrder(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.OrderToResponseDTO(order), "Заказ успешно обновлен", http.StatusOK)
}

// Delete — мягкое удаление: перевод заказа в TO_REMOVE (DELETE /orders/:id).
func (c *OrderController) Delete(ctx echo.Context) error {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	order, err := c.service.RequestRemoval(ctx.Request().Context(), actor, ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.OrderToResponseDTO(order), "Заказ помечен на удаление", http.StatusOK)
}

// SetParamValue выставляет значение параметра заказа
// (PUT /orders/:id/params).
func (c *OrderController) SetParamValue(ctx echo.Context) error {
	var payload dto.SetOrderParamValueDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные в теле запроса", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	value, err := c.paramService.SetValue(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.OrderParamValueToResponseDTO(value), "Значение параметра записано", http.StatusOK)
}

// GetParamValues отдаёт значения параметров заказа (GET /orders/:id/params).
func (c *OrderController) GetParamValues(ctx echo.Context) error {
	values, err := c.paramService.GetByOrderID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	response := make([]dto.OrderParamValueDTO, 0, len(values))
	for i := range values {
		response = append(response, dto.OrderParamValueToResponseDTO(&values[i]))
	}
	return utils.SuccessResponse(ctx, response, "Значения параметров заказа", http.StatusOK)
}
