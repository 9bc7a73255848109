package controllers

import (
	"net/http"

	"bathhouse-orders/internal/authz"
	"bathhouse-orders/internal/dto"
	"bathhouse-orders/internal/services"
	apperrors "bathhouse-orders/pkg/errors"
	"bathhouse-orders/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	service services.AuthServiceInterface
	logger  *zap.Logger
}

func NewAuthController(service services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{service: service, logger: logger}
}

// Login обрабатывает вход по логину и паролю (POST /auth/login).
func (c *AuthController) Login(ctx echo.Context) error {
	var payload dto.LoginDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Warn("Ошибка привязки данных для входа", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные в теле запроса", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	tokens, err := c.service.Login(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, tokens, "Вход выполнен", http.StatusOK)
}

// Refresh обновляет пару токенов по refresh-токену (POST /auth/refresh).
func (c *AuthController) Refresh(ctx echo.Context) error {
	var payload dto.RefreshTokenDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные в теле запроса", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	tokens, err := c.service.RefreshTokens(ctx.Request().Context(), payload.RefreshToken)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, tokens, "Токены обновлены", http.StatusOK)
}

// Me отдаёт текущего пользователя вместе с его ролями (GET /auth/me).
func (c *AuthController) Me(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	userID, err := utils.GetUserIDFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	user, err := c.service.Me(reqCtx, userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, user, "Текущий пользователь", http.StatusOK)
}

// CheckRoles — диагностический эндпоинт: держит ли текущий пользователь
// ВСЕ перечисленные роли (POST /auth/check-roles).
func (c *AuthController) CheckRoles(ctx echo.Context) error {
	var payload dto.CheckRolesDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные в теле запроса", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	roles, err := utils.GetUserRolesFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := authz.RequireAllRoles(roles, payload.Roles); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Все роли присутствуют", http.StatusOK)
}
