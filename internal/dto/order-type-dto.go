package dto

import "bathhouse-orders/internal/entities"

// CreateOrderTypeDTO используется администратором для заведения нового
// типа заказа вместе с объявлением его параметров.
type CreateOrderTypeDTO struct {
	Name           string                    `json:"name" validate:"required,min=2"`
	DependencyKind string                    `json:"dependency_kind" validate:"required,oneof=MAIN DEPEND DEFECT DELIVERY OPTIONAL"`
	Params         []CreateOrderTypeParamDTO `json:"params" validate:"omitempty,dive"`
}

// UpdateOrderTypeDTO: у типа, на который уже ссылаются заказы, меняется
// только имя.
type UpdateOrderTypeDTO struct {
	Name *string `json:"name" validate:"omitempty,min=2"`
}

type OrderTypeResponseDTO struct {
	ID             string                      `json:"id"`
	Name           string                      `json:"name"`
	DependencyKind string                      `json:"dependency_kind"`
	Params         []OrderTypeParamResponseDTO `json:"params,omitempty"`
	CreatedAt      string                      `json:"created_at"`
	UpdatedAt      string                      `json:"updated_at"`
}

func OrderTypeToResponseDTO(orderType *entities.OrderType) OrderTypeResponseDTO {
	resp := OrderTypeResponseDTO{
		ID:             orderType.ID,
		Name:           orderType.Name,
		DependencyKind: string(orderType.DependencyKind),
		CreatedAt:      orderType.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:      orderType.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	for i := range orderType.Params {
		resp.Params = append(resp.Params, OrderTypeParamToResponseDTO(&orderType.Params[i]))
	}
	return resp
}
