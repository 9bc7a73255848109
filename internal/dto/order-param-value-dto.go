package dto

import "bathhouse-orders/internal/entities"

// SetOrderParamValueDTO выставляет значение объявленного параметра.
// Повторная запись того же параметра перезаписывает значение.
type SetOrderParamValueDTO struct {
	OrderTypeParamID string `json:"order_type_param_id" validate:"required,uuid4"`
	Value            string `json:"value" validate:"required"`
}

type OrderParamValueDTO struct {
	ID               string `json:"id"`
	OrderID          string `json:"order_id"`
	OrderTypeParamID string `json:"order_type_param_id"`
	Value            string `json:"value"`
	CreatedAt        string `json:"created_at"`
}

func OrderParamValueToResponseDTO(value *entities.OrderParamValue) OrderParamValueDTO {
	return OrderParamValueDTO{
		ID:               value.ID,
		OrderID:          value.OrderID,
		OrderTypeParamID: value.OrderTypeParamID,
		Value:            value.Value,
		CreatedAt:        value.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
