package controllers

import (
	"fmt"
	"net/http"

	"bathhouse-orders/internal/repositories"
	"bathhouse-orders/internal/services"
	"bathhouse-orders/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ReportController struct {
	service services.ReportServiceInterface
	logger  *zap.Logger
}

func NewReportController(service services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{service: service, logger: logger}
}

// ExportOrders выгружает реестр заказов в xlsx (GET /reports/orders).
// Принимает те же фильтры и сортировку, что и список заказов.
func (c *ReportController) ExportOrders(ctx echo.Context) error {
	filter, err := utils.ParseFilterFromQuery(ctx.QueryParams(), repositories.OrderSortingFields)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	filter, err = utils.RestrictFilters(filter, repositories.OrderFilterFields)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	buf, filename, err := c.service.ExportOrders(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
