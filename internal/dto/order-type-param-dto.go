package dto

import "bathhouse-orders/internal/entities"

type CreateOrderTypeParamDTO struct {
	Name      string `json:"name" validate:"required,min=1"`
	ValueType string `json:"value_type" validate:"required,oneof=INT STRING TEXT DATE"`
	Required  bool   `json:"required"`
}

type OrderTypeParamResponseDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ValueType   string `json:"value_type"`
	Required    bool   `json:"required"`
	OrderTypeID string `json:"order_type_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func OrderTypeParamToResponseDTO(param *entities.OrderTypeParam) OrderTypeParamResponseDTO {
	return OrderTypeParamResponseDTO{
		ID:          param.ID,
		Name:        param.Name,
		ValueType:   string(param.ValueType),
		Required:    param.Required,
		OrderTypeID: param.OrderTypeID,
		CreatedAt:   param.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   param.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
