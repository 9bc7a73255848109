package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"bathhouse-orders/internal/controllers"
	"bathhouse-orders/internal/services"
)

func runReportRouter(
	secureGroup *echo.Group,
	reportService services.ReportServiceInterface,
	logger *zap.Logger,
) {
	reportCtrl := controllers.NewReportController(reportService, logger)

	reports := secureGroup.Group("/reports")
	{
		reports.GET("/orders", reportCtrl.ExportOrders)
	}
}
