package services

import (
	"context"
	"fmt"
	"time"

	"bathhouse-orders/internal/authz"
	"bathhouse-orders/internal/entities"
	"bathhouse-orders/internal/repositories"
	apperrors "bathhouse-orders/pkg/errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Actor — действующее лицо перехода: живой пользователь или системная
// личность фоновой финализации.
type Actor struct {
	UserID string
	Roles  []string
}

// SystemActor выполняет TO_REMOVE -> REMOVED в фоновом проходе.
func SystemActor() Actor {
	return Actor{UserID: "system", Roles: []string{authz.RoleSystem}}
}

type OrderWorkflowServiceInterface interface {
	ChangeStatus(ctx context.Context, actor Actor, orderID string, newStatus entities.OrderStatus) (*entities.Order, error)
	GetHistory(ctx context.Context, orderID string) ([]entities.OrderStatusUpdate, error)
	FinalizeExpiredRemovals(ctx context.Context) (int, error)
}

// OrderWorkflowService — машина состояний заказа. Валидации выполняются
// по порядку: роль, таблица переходов, обязательные параметры (READY),
// готовность дочерних заказов (ACCEPTED); первая провалившаяся проверка
// и останавливает переход. Запись журнала и смена статуса атомарны.
type OrderWorkflowService struct {
	txManager       repositories.TxManagerInterface
	orderRepo       repositories.OrderRepositoryInterface
	typeParamRepo   repositories.OrderTypeParamRepositoryInterface
	paramValueRepo  repositories.OrderParamValueRepositoryInterface
	statusUpdateRepo repositories.OrderStatusUpdateRepositoryInterface
	logger          *zap.Logger
	gracePeriod     time.Duration
	now             func() time.Time
}

func NewOrderWorkflowService(
	txManager repositories.TxManagerInterface,
	orderRepo repositories.OrderRepositoryInterface,
	typeParamRepo repositories.OrderTypeParamRepositoryInterface,
	paramValueRepo repositories.OrderParamValueRepositoryInterface,
	statusUpdateRepo repositories.OrderStatusUpdateRepositoryInterface,
	logger *zap.Logger,
	gracePeriod time.Duration,
) OrderWorkflowServiceInterface {
	return &OrderWorkflowService{
		txManager:        txManager,
		orderRepo:        orderRepo,
		typeParamRepo:    typeParamRepo,
		paramValueRepo:   paramValueRepo,
		statusUpdateRepo: statusUpdateRepo,
		logger:           logger,
		gracePeriod:      gracePeriod,
		now:              time.Now,
	}
}

func (s *OrderWorkflowService) ChangeStatus(ctx context.Context, actor Actor, orderID string, newStatus entities.OrderStatus) (*entities.Order, error) {
	if !newStatus.Valid() {
		return nil, apperrors.NewInvalidInputError("неизвестный статус заказа: %s", newStatus)
	}

	if err := authz.RequireAnyRole(actor.Roles, authz.OrderStatusRequisites[newStatus]); err != nil {
		s.logger.Warn("переход статуса запрещён по ролям",
			zap.String("orderID", orderID),
			zap.String("userID", actor.UserID),
			zap.String("newStatus", newStatus.String()),
		)
		return nil, err
	}

	var updated *entities.Order
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		// Статус перечитывается под блокировкой строки: решение против
		// устаревшего статуса обязано провалиться здесь, а не примениться.
		order, err := s.orderRepo.FindOrderForUpdate(ctx, tx, orderID)
		if err != nil {
			return err
		}

		if !order.Status.CanTransit(newStatus) {
			return apperrors.NewInvalidTransitionError(order.Status.String(), newStatus.String())
		}

		if newStatus == entities.StatusReady {
			if err := s.checkRequiredParams(ctx, tx, order); err != nil {
				return err
			}
		}

		if newStatus == entities.StatusAccepted {
			if err := s.checkChildrenAccepted(ctx, tx, order); err != nil {
				return err
			}
		}

		update := &entities.OrderStatusUpdate{
			OrderID:   order.ID,
			User:      actor.UserID,
			OldStatus: order.Status,
			NewStatus: newStatus,
		}
		if err := s.statusUpdateRepo.CreateInTx(ctx, tx, update); err != nil {
			return err
		}
		if err := s.orderRepo.UpdateStatusInTx(ctx, tx, order.ID, newStatus); err != nil {
			return err
		}

		order.Status = newStatus
		order.History = append(order.History, *update)
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("статус заказа изменён",
		zap.String("orderID", updated.ID),
		zap.String("userID", actor.UserID),
		zap.String("oldStatus", updated.History[len(updated.History)-1].OldStatus.String()),
		zap.String("newStatus", newStatus.String()),
	)
	return updated, nil
}

// checkRequiredParams собирает ВСЕ незаполненные обязательные параметры
// типа заказа, а не только первый.
func (s *OrderWorkflowService) checkRequiredParams(ctx context.Context, tx pgx.Tx, order *entities.Order) error {
	declared, err := s.typeParamRepo.GetByOrderTypeID(ctx, tx, order.OrderTypeID)
	if err != nil {
		return err
	}
	values, err := s.paramValueRepo.GetByOrderID(ctx, tx, order.ID)
	if err != nil {
		return err
	}

	filled := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v.Value != "" {
			filled[v.OrderTypeParamID] = struct{}{}
		}
	}

	var missing []string
	for _, p := range declared {
		if !p.Required {
			continue
		}
		if _, ok := filled[p.ID]; !ok {
			missing = append(missing, p.Name)
		}
	}

	if len(missing) > 0 {
		violations := make([]string, 0, len(missing))
		for _, name := range missing {
			violations = append(violations, fmt.Sprintf("не заполнен обязательный параметр: %s", name))
		}
		return &apperrors.ValidationError{Violations: violations}
	}
	return nil
}

func (s *OrderWorkflowService) checkChildrenAccepted(ctx context.Context, tx pgx.Tx, order *entities.Order) error {
	children, err := s.orderRepo.GetChildren(ctx, tx, order.ID)
	if err != nil {
		return err
	}

	var violations []string
	for _, child := range children {
		if child.Status != entities.StatusAccepted {
			violations = append(violations,
				fmt.Sprintf("дочерний заказ %s ещё не принят (статус %s)", child.ID, child.Status))
		}
	}
	if len(violations) > 0 {
		return &apperrors.ValidationError{Violations: violations}
	}
	return nil
}

func (s *OrderWorkflowService) GetHistory(ctx context.Context, orderID string) ([]entities.OrderStatusUpdate, error) {
	if _, err := s.orderRepo.FindOrder(ctx, orderID); err != nil {
		return nil, err
	}
	return s.statusUpdateRepo.FindByOrderID(ctx, orderID)
}

// FinalizeExpiredRemovals — фоновая финализация: заказы, простоявшие в
// TO_REMOVE дольше льготного периода, переводятся в REMOVED через общую
// точку входа машины состояний. Возвращает число финализированных.
func (s *OrderWorkflowService) FinalizeExpiredRemovals(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.gracePeriod)
	ids, err := s.orderRepo.GetExpiredRemovals(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	actor := SystemActor()
	finalized := 0
	for _, id := range ids {
		if _, err := s.ChangeStatus(ctx, actor, id, entities.StatusRemoved); err != nil {
			// Заказ могли откатить параллельно; гонка не фатальна,
			// остальные кандидаты обрабатываются дальше.
			s.logger.Warn("не удалось финализировать заказ",
				zap.String("orderID", id), zap.Error(err))
			continue
		}
		finalized++
	}
	return finalized, nil
}
