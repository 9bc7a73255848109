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

type OrderTypeController struct {
	service services.OrderTypeServiceInterface
	logger  *zap.Logger
}

func NewOrderTypeController(service services.OrderTypeServiceInterface, logger *zap.Logger) *OrderTypeController {
	return &OrderTypeController{service: service, logger: logger}
}

// Create заводит тип заказа вместе с параметрами (POST /order-types).
func (c *OrderTypeController) Create(ctx echo.Context) error {
	var payload dto.CreateOrderTypeDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Warn("Ошибка привязки данных для создания типа заказа", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные в теле запроса", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	orderType, err := c.service.CreateOrderType(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.OrderTypeToResponseDTO(orderType), "Тип заказа успешно создан", http.StatusCreated)
}

// GetAll отдаёт список типов заказов (GET /order-types).
func (c *OrderTypeController) GetAll(ctx echo.Context) error {
	filter, err := utils.ParseFilterFromQuery(ctx.QueryParams(), repositories.OrderTypeSortingFields)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	orderTypes, total, err := c.service.GetOrderTypes(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	response := make([]dto.OrderTypeResponseDTO, 0, len(orderTypes))
	for i := range orderTypes {
		response = append(response, dto.OrderTypeToResponseDTO(&orderTypes[i]))
	}
	return utils.SuccessResponse(ctx, response, "Список типов заказов", http.StatusOK, total)
}

// GetByID отдаёт тип заказа вместе с объявлением параметров
// (GET /order-types/:id).
func (c *OrderTypeController) GetByID(ctx echo.Context) error {
	orderType, err := c.service.FindOrderType(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.OrderTypeToResponseDTO(orderType), "Тип заказа", http.StatusOK)
}

// Update меняет имя типа заказа (PUT /order-types/:id).
func (c *OrderTypeController) Update(ctx echo.Context) error {
	var payload dto.UpdateOrderTypeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные в теле запроса", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	orderType, err := c.service.UpdateOrderType(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.OrderTypeToResponseDTO(orderType), "Тип заказа успешно обновлен", http.StatusOK)
}

// Delete удаляет тип заказа, на который не ссылаются заказы
// (DELETE /order-types/:id).
func (c *OrderTypeController) Delete(ctx echo.Context) error {
	if err := c.service.DeleteOrderType(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Тип заказа успешно удален", http.StatusOK)
}
