package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"bathhouse-orders/internal/entities"
	"bathhouse-orders/internal/repositories"
	apperrors "bathhouse-orders/pkg/errors"
	"bathhouse-orders/pkg/types"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Фейки хранят данные в памяти; читающие методы принимают nil вместо
// транзакции, поэтому RunInTransaction просто вызывает fn(nil).

type fakeTxManager struct{}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*entities.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entities.Order)}
}

func (r *fakeOrderRepo) add(order *entities.Order) *entities.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
		order.UpdatedAt = order.CreatedAt
	}
	r.orders[order.ID] = order
	return order
}

func (r *fakeOrderRepo) GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]entities.Order, 0, len(r.orders))
	for _, o := range r.orders {
		result = append(result, *o)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, uint64(len(result)), nil
}

func (r *fakeOrderRepo) FindOrder(ctx context.Context, id string) (*entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *order
	return &cp, nil
}

func (r *fakeOrderRepo) FindOrderForUpdate(ctx context.Context, tx pgx.Tx, id string) (*entities.Order, error) {
	return r.FindOrder(ctx, id)
}

func (r *fakeOrderRepo) CreateOrder(ctx context.Context, order *entities.Order) error {
	r.mu.Lock()
	for _, o := range r.orders {
		if order.ParentOrderID != nil && o.ParentOrderID != nil &&
			*o.ParentOrderID == *order.ParentOrderID && o.OrderTypeID == order.OrderTypeID {
			r.mu.Unlock()
			return &apperrors.ValidationError{Violations: []string{"Заявка с таким типом уже была создана"}}
		}
	}
	r.mu.Unlock()
	r.add(order)
	return nil
}

func (r *fakeOrderRepo) UpdateOrder(ctx context.Context, id string, userCustomer, userImplementer *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	if userCustomer != nil {
		order.UserCustomer = *userCustomer
	}
	if userImplementer != nil {
		order.UserImplementer = *userImplementer
	}
	order.UpdatedAt = time.Now()
	return nil
}

func (r *fakeOrderRepo) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id string, status entities.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	return nil
}

func (r *fakeOrderRepo) GetChildren(ctx context.Context, q repositories.Querier, parentID string) ([]entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	children := make([]entities.Order, 0)
	for _, o := range r.orders {
		if o.ParentOrderID != nil && *o.ParentOrderID == parentID {
			children = append(children, *o)
		}
	}
	return children, nil
}

func (r *fakeOrderRepo) ExistsChildOfType(ctx context.Context, parentID, orderTypeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ParentOrderID != nil && *o.ParentOrderID == parentID && o.OrderTypeID == orderTypeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeOrderRepo) GetExpiredRemovals(ctx context.Context, olderThan time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0)
	for _, o := range r.orders {
		if o.Status == entities.StatusToRemove && o.UpdatedAt.Before(olderThan) {
			ids = append(ids, o.ID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

type fakeOrderTypeRepo struct {
	types map[string]*entities.OrderType
	used  map[string]bool
}

func newFakeOrderTypeRepo() *fakeOrderTypeRepo {
	return &fakeOrderTypeRepo{
		types: make(map[string]*entities.OrderType),
		used:  make(map[string]bool),
	}
}

func (r *fakeOrderTypeRepo) add(name string, kind entities.DependencyKind) *entities.OrderType {
	ot := &entities.OrderType{ID: uuid.NewString(), Name: name, DependencyKind: kind}
	r.types[ot.ID] = ot
	return ot
}

func (r *fakeOrderTypeRepo) Create(ctx context.Context, tx pgx.Tx, orderType *entities.OrderType) error {
	for _, ot := range r.types {
		if ot.Name == orderType.Name {
			return apperrors.ErrConflict
		}
	}
	if orderType.ID == "" {
		orderType.ID = uuid.NewString()
	}
	cp := *orderType
	r.types[orderType.ID] = &cp
	return nil
}

func (r *fakeOrderTypeRepo) UpdateName(ctx context.Context, id string, name string) error {
	ot, ok := r.types[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	ot.Name = name
	return nil
}

func (r *fakeOrderTypeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.types[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.types, id)
	return nil
}

func (r *fakeOrderTypeRepo) FindByID(ctx context.Context, id string) (*entities.OrderType, error) {
	ot, ok := r.types[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *ot
	return &cp, nil
}

func (r *fakeOrderTypeRepo) GetAll(ctx context.Context, filter types.Filter) ([]entities.OrderType, uint64, error) {
	result := make([]entities.OrderType, 0, len(r.types))
	for _, ot := range r.types {
		result = append(result, *ot)
	}
	return result, uint64(len(result)), nil
}

func (r *fakeOrderTypeRepo) HasOrders(ctx context.Context, id string) (bool, error) {
	return r.used[id], nil
}

type fakeTypeParamRepo struct {
	params map[string]*entities.OrderTypeParam
}

func newFakeTypeParamRepo() *fakeTypeParamRepo {
	return &fakeTypeParamRepo{params: make(map[string]*entities.OrderTypeParam)}
}

func (r *fakeTypeParamRepo) add(orderTypeID, name string, required bool) *entities.OrderTypeParam {
	p := &entities.OrderTypeParam{
		ID:          uuid.NewString(),
		Name:        name,
		ValueType:   entities.ValueTypeString,
		Required:    required,
		OrderTypeID: orderTypeID,
	}
	r.params[p.ID] = p
	return p
}

func (r *fakeTypeParamRepo) CreateInTx(ctx context.Context, tx pgx.Tx, param *entities.OrderTypeParam) error {
	if param.ID == "" {
		param.ID = uuid.NewString()
	}
	cp := *param
	r.params[param.ID] = &cp
	return nil
}

func (r *fakeTypeParamRepo) FindByID(ctx context.Context, id string) (*entities.OrderTypeParam, error) {
	p, ok := r.params[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeTypeParamRepo) GetByOrderTypeID(ctx context.Context, q repositories.Querier, orderTypeID string) ([]entities.OrderTypeParam, error) {
	result := make([]entities.OrderTypeParam, 0)
	for _, p := range r.params {
		if p.OrderTypeID == orderTypeID {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakeTypeParamRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.params[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.params, id)
	return nil
}

type fakeParamValueRepo struct {
	values map[string]*entities.OrderParamValue
}

func newFakeParamValueRepo() *fakeParamValueRepo {
	return &fakeParamValueRepo{values: make(map[string]*entities.OrderParamValue)}
}

func (r *fakeParamValueRepo) Upsert(ctx context.Context, value *entities.OrderParamValue) error {
	for _, v := range r.values {
		if v.OrderID == value.OrderID && v.OrderTypeParamID == value.OrderTypeParamID {
			v.Value = value.Value
			value.ID = v.ID
			return nil
		}
	}
	if value.ID == "" {
		value.ID = uuid.NewString()
	}
	cp := *value
	r.values[value.ID] = &cp
	return nil
}

func (r *fakeParamValueRepo) GetByOrderID(ctx context.Context, q repositories.Querier, orderID string) ([]entities.OrderParamValue, error) {
	result := make([]entities.OrderParamValue, 0)
	for _, v := range r.values {
		if v.OrderID == orderID {
			result = append(result, *v)
		}
	}
	return result, nil
}

func (r *fakeParamValueRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.values[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.values, id)
	return nil
}

type fakeMaterialRepo struct {
	mu        sync.Mutex
	materials map[string]*entities.Material
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{materials: make(map[string]*entities.Material)}
}

func (r *fakeMaterialRepo) Create(ctx context.Context, material *entities.Material) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if material.ID == "" {
		material.ID = uuid.NewString()
	}
	material.CreatedAt = time.Now()
	material.UpdatedAt = material.CreatedAt
	cp := *material
	r.materials[material.ID] = &cp
	return nil
}

func (r *fakeMaterialRepo) FindByID(ctx context.Context, id string) (*entities.Material, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.materials[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMaterialRepo) GetByOrderID(ctx context.Context, orderID string, filter types.Filter) ([]entities.Material, uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]entities.Material, 0)
	for _, m := range r.materials {
		if m.OrderID == orderID {
			result = append(result, *m)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, uint64(len(result)), nil
}

func (r *fakeMaterialRepo) Update(ctx context.Context, material *entities.Material) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.materials[material.ID]
	if !ok {
		return apperrors.ErrNotFound
	}
	material.CreatedAt = stored.CreatedAt
	material.UpdatedAt = time.Now()
	cp := *material
	r.materials[material.ID] = &cp
	return nil
}

func (r *fakeMaterialRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.materials[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.materials, id)
	return nil
}

type fakeStatusUpdateRepo struct {
	mu      sync.Mutex
	updates []entities.OrderStatusUpdate
}

func (r *fakeStatusUpdateRepo) CreateInTx(ctx context.Context, tx pgx.Tx, update *entities.OrderStatusUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if update.ID == "" {
		update.ID = uuid.NewString()
	}
	update.CreatedAt = time.Now()
	r.updates = append(r.updates, *update)
	return nil
}

func (r *fakeStatusUpdateRepo) FindByOrderID(ctx context.Context, orderID string) ([]entities.OrderStatusUpdate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]entities.OrderStatusUpdate, 0)
	for _, u := range r.updates {
		if u.OrderID == orderID {
			result = append(result, u)
		}
	}
	return result, nil
}
