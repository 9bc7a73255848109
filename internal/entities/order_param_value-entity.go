package entities

import "bathhouse-orders/pkg/types"

type OrderParamValue struct {
	ID               string `json:"id" db:"id"`
	OrderID          string `json:"order_id" db:"order_id"`
	OrderTypeParamID string `json:"order_type_param_id" db:"order_type_param_id"`
	Value            string `json:"value" db:"value"`

	types.BaseEntity
}
