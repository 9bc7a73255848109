package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"bathhouse-orders/internal/controllers"
	"bathhouse-orders/internal/services"
)

func runOrderTypeRouter(
	secureGroup *echo.Group,
	orderTypeService services.OrderTypeServiceInterface,
	logger *zap.Logger,
) {
	orderTypeCtrl := controllers.NewOrderTypeController(orderTypeService, logger)

	orderTypes := secureGroup.Group("/order-types")
	{
		orderTypes.POST("", orderTypeCtrl.Create)
		orderTypes.GET("", orderTypeCtrl.GetAll)
		orderTypes.GET("/:id", orderTypeCtrl.GetByID)
		orderTypes.PUT("/:id", orderTypeCtrl.Update)
		orderTypes.DELETE("/:id", orderTypeCtrl.Delete)
	}
}
