package entities

import "bathhouse-orders/pkg/types"

// Order — заказ клиента. parent_order_id заполнен для всех заказов,
// чей тип не является MAIN.
type Order struct {
	ID              string      `json:"id" db:"id"`
	Status          OrderStatus `json:"status" db:"status"`
	UserCustomer    string      `json:"user_customer" db:"user_customer"`
	UserImplementer string      `json:"user_implementer" db:"user_implementer"`
	OrderTypeID     string      `json:"order_type_id" db:"order_type_id"`
	ParentOrderID   *string     `json:"parent_order_id" db:"parent_order_id"`

	Params  []OrderParamValue   `json:"params,omitempty"`
	History []OrderStatusUpdate `json:"history,omitempty"`

	types.BaseEntity
}
