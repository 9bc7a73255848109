package entities

import "time"

// OrderStatusUpdate — запись журнала переходов. Журнал только
// дописывается; порядок по created_at определяет историю заказа.
type OrderStatusUpdate struct {
	ID        string      `json:"id" db:"id"`
	OrderID   string      `json:"order_id" db:"order_id"`
	User      string      `json:"user" db:"user_id"`
	OldStatus OrderStatus `json:"old_status" db:"old_status"`
	NewStatus OrderStatus `json:"new_status" db:"new_status"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}
