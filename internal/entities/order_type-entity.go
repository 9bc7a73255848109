package entities

import "bathhouse-orders/pkg/types"

// DependencyKind определяет место типа заказа в дереве: MAIN создаётся
// без родителя, все остальные обязаны ссылаться на родительский заказ.
type DependencyKind string

const (
	DependencyMain     DependencyKind = "MAIN"
	DependencyDepend   DependencyKind = "DEPEND"
	DependencyDefect   DependencyKind = "DEFECT"
	DependencyDelivery DependencyKind = "DELIVERY"
	DependencyOptional DependencyKind = "OPTIONAL"
)

func (k DependencyKind) Valid() bool {
	switch k {
	case DependencyMain, DependencyDepend, DependencyDefect, DependencyDelivery, DependencyOptional:
		return true
	}
	return false
}

// Известные имена типов заказов; по ним строится карта прав доступа.
const (
	TypeBathOrder       = "BATH_ORDER"
	TypeWoodRequest     = "WOOD_REQUEST"
	TypeDefectRequest   = "DEFECT_REQUEST"
	TypeDeliveryRequest = "DELIVERY_REQUEST"
)

type OrderType struct {
	ID             string           `json:"id" db:"id"`
	Name           string           `json:"name" db:"name"`
	DependencyKind DependencyKind   `json:"dependency_kind" db:"dependency_kind"`
	Params         []OrderTypeParam `json:"params,omitempty"`

	types.BaseEntity
}
