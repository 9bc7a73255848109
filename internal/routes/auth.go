package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"bathhouse-orders/internal/controllers"
	"bathhouse-orders/internal/services"
	"bathhouse-orders/pkg/middleware"
)

func runAuthRouter(
	api *echo.Group,
	authService services.AuthServiceInterface,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	authCtrl := controllers.NewAuthController(authService, logger)

	auth := api.Group("/auth")
	{
		auth.POST("/login", authCtrl.Login)
		auth.POST("/refresh", authCtrl.Refresh)
		auth.GET("/me", authCtrl.Me, authMW.Auth)
		auth.POST("/check-roles", authCtrl.CheckRoles, authMW.Auth)
	}
}
