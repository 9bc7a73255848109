package services

import (
	"bytes"
	"context"
	"fmt"

	"bathhouse-orders/internal/entities"
	"bathhouse-orders/internal/repositories"
	"bathhouse-orders/pkg/types"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ReportServiceInterface interface {
	ExportOrders(ctx context.Context, filter types.Filter) (*bytes.Buffer, string, error)
}

// ReportService выгружает реестр заказов в xlsx. Фильтры и сортировка те
// же, что у списочного эндпоинта.
type ReportService struct {
	orderRepo     repositories.OrderRepositoryInterface
	orderTypeRepo repositories.OrderTypeRepositoryInterface
	logger        *zap.Logger
}

func NewReportService(
	orderRepo repositories.OrderRepositoryInterface,
	orderTypeRepo repositories.OrderTypeRepositoryInterface,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{
		orderRepo:     orderRepo,
		orderTypeRepo: orderTypeRepo,
		logger:        logger,
	}
}

var reportHeaders = []string{
	"ID", "Статус", "Тип заказа", "Заказчик", "Исполнитель", "Родительский заказ", "Создан", "Обновлён",
}

func (s *ReportService) ExportOrders(ctx context.Context, filter types.Filter) (*bytes.Buffer, string, error) {
	// Выгрузка постранично не ограничивается.
	filter.Limit = 0
	filter.Offset = 0

	orders, _, err := s.orderRepo.GetOrders(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	typeNames, err := s.orderTypeNames(ctx, orders)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Заказы"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка создания листа отчёта: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, header := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, "", fmt.Errorf("ошибка записи заголовка отчёта: %w", err)
		}
	}

	for i, order := range orders {
		parent := ""
		if order.ParentOrderID != nil {
			parent = *order.ParentOrderID
		}
		row := []interface{}{
			order.ID,
			order.Status.String(),
			typeNames[order.OrderTypeID],
			order.UserCustomer,
			order.UserImplementer,
			parent,
			order.CreatedAt.Format("2006-01-02 15:04:05"),
			order.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, "", fmt.Errorf("ошибка записи строки отчёта: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("ошибка сборки файла отчёта: %w", err)
	}

	s.logger.Info("сформирован отчёт по заказам", zap.Int("count", len(orders)))
	return buf, "orders_report.xlsx", nil
}

func (s *ReportService) orderTypeNames(ctx context.Context, orders []entities.Order) (map[string]string, error) {
	names := make(map[string]string)
	for _, order := range orders {
		if _, ok := names[order.OrderTypeID]; ok {
			continue
		}
		orderType, err := s.orderTypeRepo.FindByID(ctx, order.OrderTypeID)
		if err != nil {
			return nil, err
		}
		names[order.OrderTypeID] = orderType.Name
	}
	return names, nil
}
