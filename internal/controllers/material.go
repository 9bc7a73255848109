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

type MaterialController struct {
	service services.MaterialServiceInterface
	logger  *zap.Logger
}

func NewMaterialController(service services.MaterialServiceInterface, logger *zap.Logger) *MaterialController {
	return &MaterialController{service: service, logger: logger}
}

// Create добавляет материал к заказу (POST /orders/:id/materials).
func (c *MaterialController) Create(ctx echo.Context) error {
	var payload dto.CreateMaterialDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Warn("Ошибка привязки данных для создания материала", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные в теле запроса", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	actor, err := actorFromCtx(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	material, err := c.service.Create(ctx.Request().Context(), actor, ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.MaterialToResponseDTO(material), "Материал добавлен", http.StatusCreated)
}

// GetAll отдаёт материалы заказа (GET /orders/:id/materials).
func (c *MaterialController) GetAll(ctx echo.Context) error {
	filter, err := utils.ParseFilterFromQuery(ctx.QueryParams(), repositories.MaterialSortingFields)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	materials, total, err := c.service.GetByOrderID(ctx.Request().Context(), ctx.Param("id"), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	response := make([]dto.MaterialResponseDTO, 0, len(materials))
	for i := range materials {
		response = append(response, dto.MaterialToResponseDTO(&materials[i]))
	}
	return utils.SuccessResponse(ctx, response, "Материалы заказа", http.StatusOK, total)
}

// GetByID отдаёт один материал заказа (GET /orders/:id/materials/:materialId).
func (c *MaterialController) GetByID(ctx echo.Context) error {
	material, err := c.service.FindByID(ctx.Request().Context(), ctx.Param("id"), ctx.Param("materialId"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.MaterialToResponseDTO(material), "Материал", http.StatusOK)
}

// Update перезаписывает материал (PUT /orders/:id/materials/:materialId).
func (c *MaterialController) Update(ctx echo.Context) error {
	var payload dto.UpdateMaterialDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные в теле запроса", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	actor, err := actorFromCtx(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	material, err := c.service.Update(ctx.Request().Context(), actor, ctx.Param("id"), ctx.Param("materialId"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.MaterialToResponseDTO(material), "Материал обновлен", http.StatusOK)
}

// Delete убирает материал из заказа (DELETE /orders/:id/materials/:materialId).
func (c *MaterialController) Delete(ctx echo.Context) error {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.service.Delete(ctx.Request().Context(), actor, ctx.Param("id"), ctx.Param("materialId")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Материал удален", http.StatusOK)
}
