package services

import (
	"context"
	"testing"

	"bathhouse-orders/internal/dto"
	"bathhouse-orders/internal/entities"
	apperrors "bathhouse-orders/pkg/errors"
	"bathhouse-orders/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type materialFixture struct {
	materialRepo  *fakeMaterialRepo
	orderRepo     *fakeOrderRepo
	orderTypeRepo *fakeOrderTypeRepo
	service       MaterialServiceInterface

	bathType *entities.OrderType
	order    *entities.Order
}

func newMaterialFixture() *materialFixture {
	f := &materialFixture{
		materialRepo:  newFakeMaterialRepo(),
		orderRepo:     newFakeOrderRepo(),
		orderTypeRepo: newFakeOrderTypeRepo(),
	}
	f.service = NewMaterialService(f.materialRepo, f.orderRepo, f.orderTypeRepo, zap.NewNop())

	f.bathType = f.orderTypeRepo.add(entities.TypeBathOrder, entities.DependencyMain)
	f.order = f.orderRepo.add(&entities.Order{
		Status:          entities.StatusNew,
		UserCustomer:    "Клиент",
		UserImplementer: "Исполнитель",
		OrderTypeID:     f.bathType.ID,
	})
	return f
}

func sampleMaterial() dto.CreateMaterialDTO {
	return dto.CreateMaterialDTO{
		Name:      "Брус 150x150",
		Amount:    12,
		ValueType: string(entities.MaterialPiece),
		ItemPrice: 3500,
	}
}

func TestCreateMaterialRecordsAuthor(t *testing.T) {
	f := newMaterialFixture()

	material, err := f.service.Create(context.Background(), customerManager, f.order.ID, sampleMaterial())
	require.NoError(t, err)
	assert.NotEmpty(t, material.ID)
	assert.Equal(t, f.order.ID, material.OrderID)
	assert.Equal(t, customerManager.UserID, material.UserCreator)
	assert.Equal(t, customerManager.UserID, material.UserUpdator)
}

func TestCreateMaterialRoleGatedByOrderType(t *testing.T) {
	f := newMaterialFixture()

	// Плотник не работает с заказами типа BATH_ORDER.
	_, err := f.service.Create(context.Background(), axeman, f.order.ID, sampleMaterial())
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = f.service.Create(context.Background(), admin, f.order.ID, sampleMaterial())
	assert.NoError(t, err)
}

func TestCreateMaterialUnknownOrder(t *testing.T) {
	f := newMaterialFixture()
	_, err := f.service.Create(context.Background(), admin, "нет-такого", sampleMaterial())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateMaterialKeepsAuthor(t *testing.T) {
	f := newMaterialFixture()
	material, err := f.service.Create(context.Background(), customerManager, f.order.ID, sampleMaterial())
	require.NoError(t, err)

	updated, err := f.service.Update(context.Background(), admin, f.order.ID, material.ID, dto.UpdateMaterialDTO{
		Name:      "Брус 200x200",
		Amount:    8,
		ValueType: string(entities.MaterialPiece),
		ItemPrice: 5200,
	})
	require.NoError(t, err)
	assert.Equal(t, "Брус 200x200", updated.Name)
	assert.Equal(t, int64(8), updated.Amount)
	// Автор остаётся прежним, правку фиксирует user_updator.
	assert.Equal(t, customerManager.UserID, updated.UserCreator)
	assert.Equal(t, admin.UserID, updated.UserUpdator)
}

func TestMaterialFromAnotherOrderNotFound(t *testing.T) {
	f := newMaterialFixture()
	material, err := f.service.Create(context.Background(), customerManager, f.order.ID, sampleMaterial())
	require.NoError(t, err)

	other := f.orderRepo.add(&entities.Order{
		Status:          entities.StatusNew,
		UserCustomer:    "Клиент",
		UserImplementer: "Исполнитель",
		OrderTypeID:     f.bathType.ID,
	})

	_, err = f.service.FindByID(context.Background(), other.ID, material.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = f.service.Delete(context.Background(), admin, other.ID, material.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetMaterialsByOrder(t *testing.T) {
	f := newMaterialFixture()
	_, err := f.service.Create(context.Background(), customerManager, f.order.ID, sampleMaterial())
	require.NoError(t, err)

	second := sampleMaterial()
	second.Name = "Мох"
	second.ValueType = string(entities.MaterialVolume)
	_, err = f.service.Create(context.Background(), customerManager, f.order.ID, second)
	require.NoError(t, err)

	materials, total, err := f.service.GetByOrderID(context.Background(), f.order.ID, types.Filter{})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	assert.Len(t, materials, 2)

	_, _, err = f.service.GetByOrderID(context.Background(), "нет-такого", types.Filter{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteMaterial(t *testing.T) {
	f := newMaterialFixture()
	material, err := f.service.Create(context.Background(), customerManager, f.order.ID, sampleMaterial())
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(context.Background(), customerManager, f.order.ID, material.ID))

	_, err = f.service.FindByID(context.Background(), f.order.ID, material.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMaterialValueTypeValid(t *testing.T) {
	for _, vt := range []entities.MaterialValueType{entities.MaterialVolume, entities.MaterialPiece, entities.MaterialMass} {
		assert.True(t, vt.Valid(), vt)
	}
	assert.False(t, entities.MaterialValueType("BOGUS").Valid())
}
