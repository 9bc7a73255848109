package services

import (
	"context"

	"bathhouse-orders/internal/authz"
	"bathhouse-orders/internal/dto"
	"bathhouse-orders/internal/entities"
	"bathhouse-orders/internal/repositories"
	apperrors "bathhouse-orders/pkg/errors"
	"bathhouse-orders/pkg/types"

	"go.uber.org/zap"
)

type MaterialServiceInterface interface {
	Create(ctx context.Context, actor Actor, orderID string, payload dto.CreateMaterialDTO) (*entities.Material, error)
	GetByOrderID(ctx context.Context, orderID string, filter types.Filter) ([]entities.Material, uint64, error)
	FindByID(ctx context.Context, orderID, materialID string) (*entities.Material, error)
	Update(ctx context.Context, actor Actor, orderID, materialID string, payload dto.UpdateMaterialDTO) (*entities.Material, error)
	Delete(ctx context.Context, actor Actor, orderID, materialID string) error
}

// MaterialService ведёт учёт материалов заказа. Правки разрешены тем же
// ролям, что и работа с заказами данного типа; чтение доступно любому
// вошедшему сотруднику.
type MaterialService struct {
	materialRepo  repositories.MaterialRepositoryInterface
	orderRepo     repositories.OrderRepositoryInterface
	orderTypeRepo repositories.OrderTypeRepositoryInterface
	logger        *zap.Logger
}

func NewMaterialService(
	materialRepo repositories.MaterialRepositoryInterface,
	orderRepo repositories.OrderRepositoryInterface,
	orderTypeRepo repositories.OrderTypeRepositoryInterface,
	logger *zap.Logger,
) MaterialServiceInterface {
	return &MaterialService{
		materialRepo:  materialRepo,
		orderRepo:     orderRepo,
		orderTypeRepo: orderTypeRepo,
		logger:        logger,
	}
}

func (s *MaterialService) requireOrderTypeRoles(ctx context.Context, actor Actor, orderID string) (*entities.Order, error) {
	order, err := s.orderRepo.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	orderType, err := s.orderTypeRepo.FindByID(ctx, order.OrderTypeID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireAnyRole(actor.Roles, authz.RolesForOrderType(orderType.Name)); err != nil {
		s.logger.Warn("правка материалов запрещена по ролям",
			zap.String("orderID", orderID),
			zap.String("userID", actor.UserID),
			zap.String("orderType", orderType.Name),
		)
		return nil, err
	}
	return order, nil
}

// findInOrder отдаёт материал и проверяет, что он принадлежит заказу из
// пути запроса.
func (s *MaterialService) findInOrder(ctx context.Context, orderID, materialID string) (*entities.Material, error) {
	material, err := s.materialRepo.FindByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	if material.OrderID != orderID {
		return nil, apperrors.ErrNotFound
	}
	return material, nil
}

func (s *MaterialService) Create(ctx context.Context, actor Actor, orderID string, payload dto.CreateMaterialDTO) (*entities.Material, error) {
	order, err := s.requireOrderTypeRoles(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}

	material := &entities.Material{
		Name:        payload.Name,
		Amount:      payload.Amount,
		ValueType:   entities.MaterialValueType(payload.ValueType),
		ItemPrice:   payload.ItemPrice,
		UserCreator: actor.UserID,
		UserUpdator: actor.UserID,
		OrderID:     order.ID,
	}
	if err := s.materialRepo.Create(ctx, material); err != nil {
		return nil, err
	}

	s.logger.Info("материал добавлен к заказу",
		zap.String("orderID", order.ID),
		zap.String("materialID", material.ID),
		zap.String("userID", actor.UserID),
	)
	return material, nil
}

func (s *MaterialService) GetByOrderID(ctx context.Context, orderID string, filter types.Filter) ([]entities.Material, uint64, error) {
	if _, err := s.orderRepo.FindOrder(ctx, orderID); err != nil {
		return nil, 0, err
	}
	return s.materialRepo.GetByOrderID(ctx, orderID, filter)
}

func (s *MaterialService) FindByID(ctx context.Context, orderID, materialID string) (*entities.Material, error) {
	return s.findInOrder(ctx, orderID, materialID)
}

func (s *MaterialService) Update(ctx context.Context, actor Actor, orderID, materialID string, payload dto.UpdateMaterialDTO) (*entities.Material, error) {
	if _, err := s.requireOrderTypeRoles(ctx, actor, orderID); err != nil {
		return nil, err
	}
	material, err := s.findInOrder(ctx, orderID, materialID)
	if err != nil {
		return nil, err
	}

	// Автор записи сохраняется, правку фиксирует user_updator.
	material.Name = payload.Name
	material.Amount = payload.Amount
	material.ValueType = entities.MaterialValueType(payload.ValueType)
	material.ItemPrice = payload.ItemPrice
	material.UserUpdator = actor.UserID

	if err := s.materialRepo.Update(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

func (s *MaterialService) Delete(ctx context.Context, actor Actor, orderID, materialID string) error {
	if _, err := s.requireOrderTypeRoles(ctx, actor, orderID); err != nil {
		return err
	}
	material, err := s.findInOrder(ctx, orderID, materialID)
	if err != nil {
		return err
	}
	return s.materialRepo.Delete(ctx, material.ID)
}
