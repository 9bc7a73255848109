package authz

import "bathhouse-orders/internal/entities"

// Роли пользователей. RoleSystem — виртуальная роль фоновой финализации,
// она не назначается живым пользователям.
const (
	RoleAdmin           = "ADMIN"
	RoleStaff           = "STAFF"
	RoleCustomerManager = "STAFF_CUSTOMER_MANAGER"
	RoleAxeman          = "STAFF_AXEMAN"
	RoleOrderManager    = "STAFF_ORDER_MANAGER"
	RoleSystem          = "SYSTEM"
)

// OrderStatusRequisites — кто имеет право перевести заказ В данный статус.
// Проверяется всегда по целевому статусу, а не по исходному.
var OrderStatusRequisites = map[entities.OrderStatus][]string{
	entities.StatusNew:        {RoleCustomerManager, RoleAdmin},
	entities.StatusReady:      {RoleCustomerManager, RoleAdmin},
	entities.StatusInProgress: {RoleAxeman, RoleAdmin},
	entities.StatusDone:       {RoleAxeman, RoleAdmin},
	entities.StatusAccepted:   {RoleOrderManager, RoleAdmin},
	entities.StatusToRemove:   {RoleCustomerManager, RoleOrderManager, RoleAdmin},
	entities.StatusRemoved:    {RoleSystem, RoleAdmin},
}

// OrderTypeRequisites — кто может создавать/изменять/удалять заказы
// данного типа.
var OrderTypeRequisites = map[string][]string{
	entities.TypeBathOrder:       {RoleCustomerManager, RoleAdmin},
	entities.TypeWoodRequest:     {RoleCustomerManager, RoleAxeman, RoleAdmin},
	entities.TypeDefectRequest:   {RoleAxeman, RoleOrderManager, RoleAdmin},
	entities.TypeDeliveryRequest: {RoleOrderManager, RoleAdmin},
}

// RolesForOrderType возвращает набор ролей для типа заказа. Для типов,
// заведённых администратором позже и не попавших в карту, действует
// общий набор STAFF.
func RolesForOrderType(typeName string) []string {
	if roles, ok := OrderTypeRequisites[typeName]; ok {
		return roles
	}
	return []string{RoleStaff, RoleAdmin}
}
