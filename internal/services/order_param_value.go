package services

import (
	"context"

	"bathhouse-orders/internal/dto"
	"bathhouse-orders/internal/entities"
	"bathhouse-orders/internal/repositories"
	apperrors "bathhouse-orders/pkg/errors"

	"go.uber.org/zap"
)

type OrderParamValueServiceInterface interface {
	SetValue(ctx context.Context, orderID string, payload dto.SetOrderParamValueDTO) (*entities.OrderParamValue, error)
	GetByOrderID(ctx context.Context, orderID string) ([]entities.OrderParamValue, error)
	Delete(ctx context.Context, id string) error
}

// OrderParamValueService пишет значения параметров заказа. Значение
// принимается только для параметра, объявленного у типа этого заказа.
type OrderParamValueService struct {
	orderRepo      repositories.OrderRepositoryInterface
	typeParamRepo  repositories.OrderTypeParamRepositoryInterface
	paramValueRepo repositories.OrderParamValueRepositoryInterface
	logger         *zap.Logger
}

func NewOrderParamValueService(
	orderRepo repositories.OrderRepositoryInterface,
	typeParamRepo repositories.OrderTypeParamRepositoryInterface,
	paramValueRepo repositories.OrderParamValueRepositoryInterface,
	logger *zap.Logger,
) OrderParamValueServiceInterface {
	return &OrderParamValueService{
		orderRepo:      orderRepo,
		typeParamRepo:  typeParamRepo,
		paramValueRepo: paramValueRepo,
		logger:         logger,
	}
}

func (s *OrderParamValueService) SetValue(ctx context.Context, orderID string, payload dto.SetOrderParamValueDTO) (*entities.OrderParamValue, error) {
	order, err := s.orderRepo.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	param, err := s.typeParamRepo.FindByID(ctx, payload.OrderTypeParamID)
	if err != nil {
		return nil, err
	}
	if param.OrderTypeID != order.OrderTypeID {
		return nil, apperrors.NewValidationError("параметр не объявлен у типа этого заказа")
	}

	value := &entities.OrderParamValue{
		OrderID:          order.ID,
		OrderTypeParamID: param.ID,
		Value:            payload.Value,
	}
	if err := s.paramValueRepo.Upsert(ctx, value); err != nil {
		return nil, err
	}

	s.logger.Info("значение параметра заказа записано",
		zap.String("orderID", order.ID),
		zap.String("param", param.Name),
	)
	return value, nil
}

func (s *OrderParamValueService) GetByOrderID(ctx context.Context, orderID string) ([]entities.OrderParamValue, error) {
	if _, err := s.orderRepo.FindOrder(ctx, orderID); err != nil {
		return nil, err
	}
	return s.paramValueRepo.GetByOrderID(ctx, nil, orderID)
}

func (s *OrderParamValueService) Delete(ctx context.Context, id string) error {
	return s.paramValueRepo.Delete(ctx, id)
}
