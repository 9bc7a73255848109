package services

import (
	"context"
	"testing"
	"time"

	"bathhouse-orders/internal/authz"
	"bathhouse-orders/internal/dto"
	"bathhouse-orders/internal/entities"
	apperrors "bathhouse-orders/pkg/errors"
	"bathhouse-orders/pkg/types"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type orderFixture struct {
	orderRepo     *fakeOrderRepo
	orderTypeRepo *fakeOrderTypeRepo
	paramRepo     *fakeParamValueRepo
	statusRepo    *fakeStatusUpdateRepo
	service       OrderServiceInterface

	mainType   *entities.OrderType
	woodType   *entities.OrderType
	defectType *entities.OrderType
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		orderRepo:     newFakeOrderRepo(),
		orderTypeRepo: newFakeOrderTypeRepo(),
		paramRepo:     newFakeParamValueRepo(),
		statusRepo:    &fakeStatusUpdateRepo{},
	}
	typeParamRepo := newFakeTypeParamRepo()
	workflow := &OrderWorkflowService{
		txManager:        &fakeTxManager{},
		orderRepo:        f.orderRepo,
		typeParamRepo:    typeParamRepo,
		paramValueRepo:   f.paramRepo,
		statusUpdateRepo: f.statusRepo,
		logger:           zap.NewNop(),
		gracePeriod:      time.Minute,
		now:              time.Now,
	}
	f.service = NewOrderService(
		f.orderRepo, f.orderTypeRepo, f.paramRepo, f.statusRepo, workflow, zap.NewNop())

	f.mainType = f.orderTypeRepo.add(entities.TypeBathOrder, entities.DependencyMain)
	f.woodType = f.orderTypeRepo.add(entities.TypeWoodRequest, entities.DependencyDepend)
	f.defectType = f.orderTypeRepo.add(entities.TypeDefectRequest, entities.DependencyDefect)
	return f
}

func (f *orderFixture) createMain(t *testing.T) *entities.Order {
	t.Helper()
	order, err := f.service.CreateOrder(context.Background(), customerManager, dto.CreateOrderDTO{
		OrderTypeID:     f.mainType.ID,
		UserCustomer:    "Клиент",
		UserImplementer: "Исполнитель",
	})
	require.NoError(t, err)
	return order
}

func TestCreateOrderStartsInNewWithoutHistory(t *testing.T) {
	f := newOrderFixture()
	order := f.createMain(t)

	assert.Equal(t, entities.StatusNew, order.Status)
	assert.Nil(t, order.ParentOrderID)

	// Создание не пишет запись в журнал переходов.
	history, err := f.statusRepo.FindByOrderID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestCreateOrderRequiresParentForDependentTypes(t *testing.T) {
	f := newOrderFixture()

	_, err := f.service.CreateOrder(context.Background(), customerManager, dto.CreateOrderDTO{
		OrderTypeID:     f.woodType.ID,
		UserCustomer:    "Клиент",
		UserImplementer: "Исполнитель",
	})
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "Заполните родительский заказ")
}

func TestCreateOrderRejectsDuplicateChildType(t *testing.T) {
	f := newOrderFixture()
	parent := f.createMain(t)

	create := dto.CreateOrderDTO{
		OrderTypeID:     f.woodType.ID,
		UserCustomer:    "Клиент",
		UserImplementer: "Исполнитель",
		ParentOrderID:   null.StringFrom(parent.ID),
	}

	first, err := f.service.CreateOrder(context.Background(), customerManager, create)
	require.NoError(t, err)
	require.NotNil(t, first.ParentOrderID)
	assert.Equal(t, parent.ID, *first.ParentOrderID)

	_, err = f.service.CreateOrder(context.Background(), customerManager, create)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "Заявка с таким типом уже была создана")

	// Дочерний заказ другого типа у того же родителя допустим.
	_, err = f.service.CreateOrder(context.Background(), axeman, dto.CreateOrderDTO{
		OrderTypeID:     f.defectType.ID,
		UserCustomer:    "Клиент",
		UserImplementer: "Исполнитель",
		ParentOrderID:   null.StringFrom(parent.ID),
	})
	assert.NoError(t, err)
}

// Уникальный индекс по (parent_order_id, order_type_id) страхует
// проверку сервиса при конкурентных созданиях: повторная вставка в
// обход неё отклоняется самим хранилищем.
func TestCreateOrderDuplicateChildTypeRejectedByStorage(t *testing.T) {
	f := newOrderFixture()
	parent := f.createMain(t)

	child := &entities.Order{
		Status:          entities.StatusNew,
		UserCustomer:    "Клиент",
		UserImplementer: "Исполнитель",
		OrderTypeID:     f.woodType.ID,
		ParentOrderID:   &parent.ID,
	}
	require.NoError(t, f.orderRepo.CreateOrder(context.Background(), child))

	dup := &entities.Order{
		Status:          entities.StatusNew,
		UserCustomer:    "Клиент",
		UserImplementer: "Исполнитель",
		OrderTypeID:     f.woodType.ID,
		ParentOrderID:   &parent.ID,
	}
	err := f.orderRepo.CreateOrder(context.Background(), dup)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "Заявка с таким типом уже была создана")
}

func TestCreateOrderUnknownParent(t *testing.T) {
	f := newOrderFixture()
	_, err := f.service.CreateOrder(context.Background(), customerManager, dto.CreateOrderDTO{
		OrderTypeID:     f.woodType.ID,
		UserCustomer:    "Клиент",
		UserImplementer: "Исполнитель",
		ParentOrderID:   null.StringFrom("нет-такого"),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateOrderUnknownType(t *testing.T) {
	f := newOrderFixture()
	_, err := f.service.CreateOrder(context.Background(), customerManager, dto.CreateOrderDTO{
		OrderTypeID:     "нет-такого",
		UserCustomer:    "Клиент",
		UserImplementer: "Исполнитель",
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateOrderRoleGatedByType(t *testing.T) {
	f := newOrderFixture()

	// Плотник не создаёт заказ на баню.
	_, err := f.service.CreateOrder(context.Background(), axeman, dto.CreateOrderDTO{
		OrderTypeID:     f.mainType.ID,
		UserCustomer:    "Клиент",
		UserImplementer: "Исполнитель",
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// Для типа вне карты прав действует общий набор STAFF.
	customType := f.orderTypeRepo.add("CUSTOM_TYPE", entities.DependencyOptional)
	parent := f.createMain(t)
	staff := Actor{UserID: "u-staff", Roles: []string{authz.RoleStaff}}
	_, err = f.service.CreateOrder(context.Background(), staff, dto.CreateOrderDTO{
		OrderTypeID:     customType.ID,
		UserCustomer:    "Клиент",
		UserImplementer: "Исполнитель",
		ParentOrderID:   null.StringFrom(parent.ID),
	})
	assert.NoError(t, err)
}

func TestUpdateOrderChangesParticipantsOnly(t *testing.T) {
	f := newOrderFixture()
	order := f.createMain(t)

	newImplementer := "Новый исполнитель"
	updated, err := f.service.UpdateOrder(context.Background(), order.ID, dto.UpdateOrderDTO{
		UserImplementer: &newImplementer,
	})
	require.NoError(t, err)
	assert.Equal(t, newImplementer, updated.UserImplementer)
	assert.Equal(t, order.UserCustomer, updated.UserCustomer)
	assert.Equal(t, entities.StatusNew, updated.Status)

	_, err = f.service.UpdateOrder(context.Background(), order.ID, dto.UpdateOrderDTO{})
	var inputErr *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestRequestRemovalMarksOrder(t *testing.T) {
	f := newOrderFixture()
	order := f.createMain(t)

	updated, err := f.service.RequestRemoval(context.Background(), customerManager, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusToRemove, updated.Status)

	// Удаление мягкое: заказ остаётся читаемым.
	stored, err := f.service.FindOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusToRemove, stored.Status)

	// Плотнику пометка на удаление недоступна.
	other := f.createMain(t)
	_, err = f.service.RequestRemoval(context.Background(), axeman, other.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestGetOrdersRejectsUnknownFilterField(t *testing.T) {
	f := newOrderFixture()
	filter := types.Filter{Filters: map[string][]string{"nonsense": {"x"}}}
	_, _, err := f.service.GetOrders(context.Background(), filter)
	var inputErr *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &inputErr)
}
