package entities

import "bathhouse-orders/pkg/types"

// MaterialValueType — единица учёта материала.
type MaterialValueType string

const (
	MaterialVolume MaterialValueType = "VOLUME"
	MaterialPiece  MaterialValueType = "PIECE"
	MaterialMass   MaterialValueType = "MASS"
)

func (t MaterialValueType) Valid() bool {
	switch t {
	case MaterialVolume, MaterialPiece, MaterialMass:
		return true
	}
	return false
}

// Material — материал, списанный на заказ. user_creator фиксируется при
// создании и больше не меняется; user_updator обновляется каждой правкой.
type Material struct {
	ID          string            `json:"id" db:"id"`
	Name        string            `json:"name" db:"name"`
	Amount      int64             `json:"amount" db:"amount"`
	ValueType   MaterialValueType `json:"value_type" db:"value_type"`
	ItemPrice   int64             `json:"item_price" db:"item_price"`
	UserCreator string            `json:"user_creator" db:"user_creator"`
	UserUpdator string            `json:"user_updator" db:"user_updator"`
	OrderID     string            `json:"order_id" db:"order_id"`

	types.BaseEntity
}
