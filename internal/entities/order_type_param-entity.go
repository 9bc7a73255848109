package entities

import "bathhouse-orders/pkg/types"

// ValueType — тип значения параметра заказа.
type ValueType string

const (
	ValueTypeInt    ValueType = "INT"
	ValueTypeString ValueType = "STRING"
	ValueTypeText   ValueType = "TEXT"
	ValueTypeDate   ValueType = "DATE"
)

func (t ValueType) Valid() bool {
	switch t {
	case ValueTypeInt, ValueTypeString, ValueTypeText, ValueTypeDate:
		return true
	}
	return false
}

type OrderTypeParam struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	ValueType   ValueType `json:"value_type" db:"value_type"`
	Required    bool      `json:"required" db:"required"`
	OrderTypeID string    `json:"order_type_id" db:"order_type_id"`

	types.BaseEntity
}
