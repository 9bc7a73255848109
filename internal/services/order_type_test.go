package services

import (
	"context"
	"testing"

	"bathhouse-orders/internal/dto"
	"bathhouse-orders/internal/entities"
	apperrors "bathhouse-orders/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newOrderTypeService() (OrderTypeServiceInterface, *fakeOrderTypeRepo, *fakeTypeParamRepo) {
	typeRepo := newFakeOrderTypeRepo()
	paramRepo := newFakeTypeParamRepo()
	svc := NewOrderTypeService(&fakeTxManager{}, typeRepo, paramRepo, zap.NewNop())
	return svc, typeRepo, paramRepo
}

func TestCreateOrderTypeWithParams(t *testing.T) {
	svc, _, _ := newOrderTypeService()

	created, err := svc.CreateOrderType(context.Background(), dto.CreateOrderTypeDTO{
		Name:           "BATH_ORDER",
		DependencyKind: "MAIN",
		Params: []dto.CreateOrderTypeParamDTO{
			{Name: "Длина сруба", ValueType: "INT", Required: true},
			{Name: "Комментарий", ValueType: "TEXT", Required: false},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entities.DependencyMain, created.DependencyKind)
	require.Len(t, created.Params, 2)
	assert.Equal(t, created.ID, created.Params[0].OrderTypeID)

	loaded, err := svc.FindOrderType(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Params, 2)
}

func TestCreateOrderTypeDuplicateName(t *testing.T) {
	svc, _, _ := newOrderTypeService()

	_, err := svc.CreateOrderType(context.Background(), dto.CreateOrderTypeDTO{
		Name: "BATH_ORDER", DependencyKind: "MAIN",
	})
	require.NoError(t, err)

	_, err = svc.CreateOrderType(context.Background(), dto.CreateOrderTypeDTO{
		Name: "BATH_ORDER", DependencyKind: "MAIN",
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUpdateOrderTypeNameOnly(t *testing.T) {
	svc, typeRepo, _ := newOrderTypeService()
	ot := typeRepo.add("OLD_NAME", entities.DependencyMain)

	name := "NEW_NAME"
	updated, err := svc.UpdateOrderType(context.Background(), ot.ID, dto.UpdateOrderTypeDTO{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "NEW_NAME", updated.Name)
	assert.Equal(t, entities.DependencyMain, updated.DependencyKind)

	_, err = svc.UpdateOrderType(context.Background(), ot.ID, dto.UpdateOrderTypeDTO{})
	var inputErr *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestDeleteOrderTypeInUse(t *testing.T) {
	svc, typeRepo, _ := newOrderTypeService()
	ot := typeRepo.add("BATH_ORDER", entities.DependencyMain)
	typeRepo.used[ot.ID] = true

	err := svc.DeleteOrderType(context.Background(), ot.ID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	free := typeRepo.add("FREE_TYPE", entities.DependencyOptional)
	assert.NoError(t, svc.DeleteOrderType(context.Background(), free.ID))
}
