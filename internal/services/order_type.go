package services

import (
	"context"

	"bathhouse-orders/internal/dto"
	"bathhouse-orders/internal/entities"
	"bathhouse-orders/internal/repositories"
	apperrors "bathhouse-orders/pkg/errors"
	"bathhouse-orders/pkg/types"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderTypeServiceInterface interface {
	GetOrderTypes(ctx context.Context, filter types.Filter) ([]entities.OrderType, uint64, error)
	FindOrderType(ctx context.Context, id string) (*entities.OrderType, error)
	CreateOrderType(ctx context.Context, payload dto.CreateOrderTypeDTO) (*entities.OrderType, error)
	UpdateOrderType(ctx context.Context, id string, payload dto.UpdateOrderTypeDTO) (*entities.OrderType, error)
	DeleteOrderType(ctx context.Context, id string) error
}

type OrderTypeService struct {
	txManager     repositories.TxManagerInterface
	orderTypeRepo repositories.OrderTypeRepositoryInterface
	typeParamRepo repositories.OrderTypeParamRepositoryInterface
	logger        *zap.Logger
}

func NewOrderTypeService(
	txManager repositories.TxManagerInterface,
	orderTypeRepo repositories.OrderTypeRepositoryInterface,
	typeParamRepo repositories.OrderTypeParamRepositoryInterface,
	logger *zap.Logger,
) OrderTypeServiceInterface {
	return &OrderTypeService{
		txManager:     txManager,
		orderTypeRepo: orderTypeRepo,
		typeParamRepo: typeParamRepo,
		logger:        logger,
	}
}

func (s *OrderTypeService) GetOrderTypes(ctx context.Context, filter types.Filter) ([]entities.OrderType, uint64, error) {
	return s.orderTypeRepo.GetAll(ctx, filter)
}

func (s *OrderTypeService) FindOrderType(ctx context.Context, id string) (*entities.OrderType, error) {
	orderType, err := s.orderTypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	params, err := s.typeParamRepo.GetByOrderTypeID(ctx, nil, orderType.ID)
	if err != nil {
		return nil, err
	}
	orderType.Params = params
	return orderType, nil
}

// CreateOrderType заводит тип вместе с объявлением параметров одной
// транзакцией.
func (s *OrderTypeService) CreateOrderType(ctx context.Context, payload dto.CreateOrderTypeDTO) (*entities.OrderType, error) {
	kind := entities.DependencyKind(payload.DependencyKind)
	if !kind.Valid() {
		return nil, apperrors.NewInvalidInputError("неизвестный вид зависимости: %s", payload.DependencyKind)
	}

	orderType := &entities.OrderType{
		Name:           payload.Name,
		DependencyKind: kind,
	}

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.orderTypeRepo.Create(ctx, tx, orderType); err != nil {
			return err
		}
		for _, p := range payload.Params {
			param := entities.OrderTypeParam{
				Name:        p.Name,
				ValueType:   entities.ValueType(p.ValueType),
				Required:    p.Required,
				OrderTypeID: orderType.ID,
			}
			if err := s.typeParamRepo.CreateInTx(ctx, tx, &param); err != nil {
				return err
			}
			orderType.Params = append(orderType.Params, param)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("тип заказа создан",
		zap.String("orderTypeID", orderType.ID),
		zap.String("name", orderType.Name),
	)
	return orderType, nil
}

// UpdateOrderType меняет только имя. Вид зависимости и набор параметров
// после создания неизменны: на них опираются существующие заказы.
func (s *OrderTypeService) UpdateOrderType(ctx context.Context, id string, payload dto.UpdateOrderTypeDTO) (*entities.OrderType, error) {
	if payload.Name == nil {
		return nil, apperrors.NewInvalidInputError("нет полей для обновления")
	}
	if err := s.orderTypeRepo.UpdateName(ctx, id, *payload.Name); err != nil {
		return nil, err
	}
	return s.FindOrderType(ctx, id)
}

func (s *OrderTypeService) DeleteOrderType(ctx context.Context, id string) error {
	used, err := s.orderTypeRepo.HasOrders(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return apperrors.ErrConflict
	}
	return s.orderTypeRepo.Delete(ctx, id)
}
