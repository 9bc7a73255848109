package middleware

import (
	"context"
	"strings"

	"bathhouse-orders/pkg/contextkeys"
	apperrors "bathhouse-orders/pkg/errors"
	"bathhouse-orders/pkg/service"
	"bathhouse-orders/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RoleProvider отдаёт роли пользователя; реализация живёт в сервисах
// и кеширует набор ролей в Redis.
type RoleProvider interface {
	GetUserRoles(ctx context.Context, userID string) ([]string, error)
}

type AuthMiddleware struct {
	jwtService   service.JWTService
	roleProvider RoleProvider
	logger       *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, roleProvider RoleProvider, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:   jwtSvc,
		roleProvider: roleProvider,
		logger:       logger,
	}
}

// Auth проверяет Bearer-токен, подтягивает роли пользователя и кладёт
// идентификатор с ролями в контекст запроса.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("AuthMiddleware: Пустой заголовок Authorization")
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("AuthMiddleware: Неверный формат заголовка Authorization")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("AuthMiddleware: Ошибка валидации токена", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		if claims.IsRefreshToken {
			m.logger.Warn("AuthMiddleware: Попытка доступа с refresh токеном")
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		roles, err := m.roleProvider.GetUserRoles(c.Request().Context(), claims.UserID)
		if err != nil {
			m.logger.Error("AuthMiddleware: не удалось получить роли пользователя",
				zap.String("userID", claims.UserID), zap.Error(err))
			return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.UserRolesKey, roles)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
