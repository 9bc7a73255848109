package services

import (
	"context"

	"bathhouse-orders/internal/authz"
	"bathhouse-orders/internal/dto"
	"bathhouse-orders/internal/entities"
	"bathhouse-orders/internal/repositories"
	apperrors "bathhouse-orders/pkg/errors"
	"bathhouse-orders/pkg/types"
	"bathhouse-orders/pkg/utils"

	"go.uber.org/zap"
)

type OrderServiceInterface interface {
	GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, uint64, error)
	FindOrder(ctx context.Context, id string) (*entities.Order, error)
	CreateOrder(ctx context.Context, actor Actor, payload dto.CreateOrderDTO) (*entities.Order, error)
	UpdateOrder(ctx context.Context, id string, payload dto.UpdateOrderDTO) (*entities.Order, error)
	RequestRemoval(ctx context.Context, actor Actor, id string) (*entities.Order, error)
}

type OrderService struct {
	orderRepo      repositories.OrderRepositoryInterface
	orderTypeRepo  repositories.OrderTypeRepositoryInterface
	paramValueRepo repositories.OrderParamValueRepositoryInterface
	statusRepo     repositories.OrderStatusUpdateRepositoryInterface
	workflow       OrderWorkflowServiceInterface
	logger         *zap.Logger
}

func NewOrderService(
	orderRepo repositories.OrderRepositoryInterface,
	orderTypeRepo repositories.OrderTypeRepositoryInterface,
	paramValueRepo repositories.OrderParamValueRepositoryInterface,
	statusRepo repositories.OrderStatusUpdateRepositoryInterface,
	workflow OrderWorkflowServiceInterface,
	logger *zap.Logger,
) OrderServiceInterface {
	return &OrderService{
		orderRepo:      orderRepo,
		orderTypeRepo:  orderTypeRepo,
		paramValueRepo: paramValueRepo,
		statusRepo:     statusRepo,
		workflow:       workflow,
		logger:         logger,
	}
}

func (s *OrderService) GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, uint64, error) {
	filter, err := utils.RestrictFilters(filter, repositories.OrderFilterFields)
	if err != nil {
		return nil, 0, err
	}
	return s.orderRepo.GetOrders(ctx, filter)
}

// FindOrder отдаёт заказ вместе со значениями параметров и журналом
// переходов.
func (s *OrderService) FindOrder(ctx context.Context, id string) (*entities.Order, error) {
	order, err := s.orderRepo.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	values, err := s.paramValueRepo.GetByOrderID(ctx, nil, order.ID)
	if err != nil {
		return nil, err
	}
	order.Params = values

	history, err := s.statusRepo.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.History = history
	return order, nil
}

// CreateOrder заводит заказ в статусе NEW. Заказ без MAIN-типа обязан
// ссылаться на родителя, и у родителя не может быть второго дочернего
// заказа того же типа. Нарушения собираются все разом.
func (s *OrderService) CreateOrder(ctx context.Context, actor Actor, payload dto.CreateOrderDTO) (*entities.Order, error) {
	orderType, err := s.orderTypeRepo.FindByID(ctx, payload.OrderTypeID)
	if err != nil {
		return nil, err
	}

	if err := authz.RequireAnyRole(actor.Roles, authz.RolesForOrderType(orderType.Name)); err != nil {
		s.logger.Warn("создание заказа запрещено по ролям",
			zap.String("userID", actor.UserID),
			zap.String("orderType", orderType.Name),
		)
		return nil, err
	}

	var violations []string

	parentID := payload.ParentOrderID.Ptr()
	if orderType.DependencyKind != entities.DependencyMain && parentID == nil {
		violations = append(violations, "Заполните родительский заказ")
	}

	if parentID != nil {
		if _, err := s.orderRepo.FindOrder(ctx, *parentID); err != nil {
			return nil, err
		}
		exists, err := s.orderRepo.ExistsChildOfType(ctx, *parentID, orderType.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			violations = append(violations, "Заявка с таким типом уже была создана")
		}
	}

	if len(violations) > 0 {
		return nil, &apperrors.ValidationError{Violations: violations}
	}

	order := &entities.Order{
		Status:          entities.StatusNew,
		UserCustomer:    payload.UserCustomer,
		UserImplementer: payload.UserImplementer,
		OrderTypeID:     orderType.ID,
		ParentOrderID:   parentID,
	}
	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("заказ создан",
		zap.String("orderID", order.ID),
		zap.String("orderType", orderType.Name),
		zap.String("userID", actor.UserID),
	)
	return order, nil
}

func (s *OrderService) UpdateOrder(ctx context.Context, id string, payload dto.UpdateOrderDTO) (*entities.Order, error) {
	if payload.UserCustomer == nil && payload.UserImplementer == nil {
		return nil, apperrors.NewInvalidInputError("нет полей для обновления")
	}
	if err := s.orderRepo.UpdateOrder(ctx, id, payload.UserCustomer, payload.UserImplementer); err != nil {
		return nil, err
	}
	return s.orderRepo.FindOrder(ctx, id)
}

// RequestRemoval — мягкое удаление: заказ переводится в TO_REMOVE через
// машину состояний, физическая финализация выполняется фоновым проходом
// после льготного периода.
func (s *OrderService) RequestRemoval(ctx context.Context, actor Actor, id string) (*entities.Order, error) {
	return s.workflow.ChangeStatus(ctx, actor, id, entities.StatusToRemove)
}
