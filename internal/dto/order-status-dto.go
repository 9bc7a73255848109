package dto

import "bathhouse-orders/internal/entities"

// ChangeOrderStatusDTO — запрос на переход заказа в новый статус.
type ChangeOrderStatusDTO struct {
	NewStatus string `json:"new_status" validate:"required,oneof=NEW READY IN_PROGRESS DONE ACCEPTED TO_REMOVE REMOVED"`
}

type OrderStatusUpdateDTO struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	User      string `json:"user"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
	CreatedAt string `json:"created_at"`
}

func OrderStatusUpdateToResponseDTO(update *entities.OrderStatusUpdate) OrderStatusUpdateDTO {
	return OrderStatusUpdateDTO{
		ID:        update.ID,
		OrderID:   update.OrderID,
		User:      update.User,
		OldStatus: update.OldStatus.String(),
		NewStatus: update.NewStatus.String(),
		CreatedAt: update.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
