package dto

import "bathhouse-orders/internal/entities"

// CreateMaterialDTO добавляет материал к заказу.
type CreateMaterialDTO struct {
	Name      string `json:"name" validate:"required,min=1"`
	Amount    int64  `json:"amount" validate:"required,gt=0"`
	ValueType string `json:"value_type" validate:"required,oneof=VOLUME PIECE MASS"`
	ItemPrice int64  `json:"item_price" validate:"required,gte=0"`
}

// UpdateMaterialDTO повторяет форму создания: материал правится целиком,
// автор записи при этом не меняется.
type UpdateMaterialDTO struct {
	Name      string `json:"name" validate:"required,min=1"`
	Amount    int64  `json:"amount" validate:"required,gt=0"`
	ValueType string `json:"value_type" validate:"required,oneof=VOLUME PIECE MASS"`
	ItemPrice int64  `json:"item_price" validate:"required,gte=0"`
}

type MaterialResponseDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Amount      int64  `json:"amount"`
	ValueType   string `json:"value_type"`
	ItemPrice   int64  `json:"item_price"`
	UserCreator string `json:"user_creator"`
	UserUpdator string `json:"user_updator"`
	OrderID     string `json:"order_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func MaterialToResponseDTO(material *entities.Material) MaterialResponseDTO {
	return MaterialResponseDTO{
		ID:          material.ID,
		Name:        material.Name,
		Amount:      material.Amount,
		ValueType:   string(material.ValueType),
		ItemPrice:   material.ItemPrice,
		UserCreator: material.UserCreator,
		UserUpdator: material.UserUpdator,
		OrderID:     material.OrderID,
		CreatedAt:   material.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   material.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
