package dto

import (
	"github.com/aarondl/null/v8"

	"bathhouse-orders/internal/entities"
)

// CreateOrderDTO используется для создания заказа. parent_order_id
// обязателен для всех типов, кроме MAIN.
type CreateOrderDTO struct {
	OrderTypeID     string      `json:"order_type_id" validate:"required,uuid4"`
	UserCustomer    string      `json:"user_customer" validate:"required"`
	UserImplementer string      `json:"user_implementer" validate:"required"`
	ParentOrderID   null.String `json:"parent_order_id" validate:"omitempty,uuid4"`
}

// UpdateOrderDTO обновляет заказчика/исполнителя; статус заказа меняется
// только через эндпоинт переходов.
type UpdateOrderDTO struct {
	UserCustomer    *string `json:"user_customer" validate:"omitempty,min=1"`
	UserImplementer *string `json:"user_implementer" validate:"omitempty,min=1"`
}

type OrderResponseDTO struct {
	ID              string                 `json:"id"`
	Status          string                 `json:"status"`
	UserCustomer    string                 `json:"user_customer"`
	UserImplementer string                 `json:"user_implementer"`
	OrderTypeID     string                 `json:"order_type_id"`
	ParentOrderID   null.String            `json:"parent_order_id"`
	Params          []OrderParamValueDTO   `json:"params,omitempty"`
	History         []OrderStatusUpdateDTO `json:"history,omitempty"`
	CreatedAt       string                 `json:"created_at"`
	UpdatedAt       string                 `json:"updated_at"`
}

// OrderToResponseDTO — единственная точка преобразования сущности во
// внешнее представление.
func OrderToResponseDTO(order *entities.Order) OrderResponseDTO {
	resp := OrderResponseDTO{
		ID:              order.ID,
		Status:          order.Status.String(),
		UserCustomer:    order.UserCustomer,
		UserImplementer: order.UserImplementer,
		OrderTypeID:     order.OrderTypeID,
		ParentOrderID:   null.StringFromPtr(order.ParentOrderID),
		CreatedAt:       order.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       order.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	for i := range order.Params {
		resp.Params = append(resp.Params, OrderParamValueToResponseDTO(&order.Params[i]))
	}
	for i := range order.History {
		resp.History = append(resp.History, OrderStatusUpdateToResponseDTO(&order.History[i]))
	}
	return resp
}
