package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"bathhouse-orders/internal/controllers"
	"bathhouse-orders/internal/services"
)

func runOrderRouter(
	secureGroup *echo.Group,
	orderService services.OrderServiceInterface,
	paramService services.OrderParamValueServiceInterface,
	workflowService services.OrderWorkflowServiceInterface,
	materialService services.MaterialServiceInterface,
	logger *zap.Logger,
) {
	orderCtrl := controllers.NewOrderController(orderService, paramService, logger)
	statusCtrl := controllers.NewOrderStatusController(workflowService, logger)
	materialCtrl := controllers.NewMaterialController(materialService, logger)

	orders := secureGroup.Group("/orders")
	{
		orders.GET("", orderCtrl.GetAll)
		orders.POST("", orderCtrl.Create)
		orders.GET("/:id", orderCtrl.GetByID)
		orders.PUT("/:id", orderCtrl.Update)
		orders.DELETE("/:id", orderCtrl.Delete)

		orders.PUT("/:id/status", statusCtrl.ChangeStatus)
		orders.GET("/:id/history", statusCtrl.GetHistory)

		orders.PUT("/:id/params", orderCtrl.SetParamValue)
		orders.GET("/:id/params", orderCtrl.GetParamValues)

		orders.GET("/:id/materials", materialCtrl.GetAll)
		orders.POST("/:id/materials", materialCtrl.Create)
		orders.GET("/:id/materials/:materialId", materialCtrl.GetByID)
		orders.PUT("/:id/materials/:materialId", materialCtrl.Update)
		orders.DELETE("/:id/materials/:materialId", materialCtrl.Delete)
	}
}
