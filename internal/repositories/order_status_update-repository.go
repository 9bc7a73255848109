package repositories

import (
	"context"
	"fmt"

	"bathhouse-orders/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	orderStatusUpdateTable  = "order_status_updates"
	orderStatusUpdateFields = "id, order_id, user_id, old_status, new_status, created_at"
)

// Журнал переходов только дописывается: ни UPDATE, ни DELETE здесь нет.
type OrderStatusUpdateRepositoryInterface interface {
	CreateInTx(ctx context.Context, tx pgx.Tx, update *entities.OrderStatusUpdate) error
	FindByOrderID(ctx context.Context, orderID string) ([]entities.OrderStatusUpdate, error)
}

type orderStatusUpdateRepository struct {
	storage *pgxpool.Pool
}

func NewOrderStatusUpdateRepository(storage *pgxpool.Pool) OrderStatusUpdateRepositoryInterface {
	return &orderStatusUpdateRepository{storage: storage}
}

func (r *orderStatusUpdateRepository) CreateInTx(ctx context.Context, tx pgx.Tx, update *entities.OrderStatusUpdate) error {
	if update.ID == "" {
		update.ID = uuid.NewString()
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, order_id, user_id, old_status, new_status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at`, orderStatusUpdateTable)

	err := tx.QueryRow(ctx, query,
		update.ID, update.OrderID, update.User, update.OldStatus, update.NewStatus,
	).Scan(&update.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка записи журнала переходов: %w", err)
	}
	return nil
}

func (r *orderStatusUpdateRepository) FindByOrderID(ctx context.Context, orderID string) ([]entities.OrderStatusUpdate, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE order_id = $1 ORDER BY created_at ASC, id ASC`,
		orderStatusUpdateFields, orderStatusUpdateTable)

	rows, err := r.storage.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения истории заказа: %w", err)
	}
	defer rows.Close()

	history := make([]entities.OrderStatusUpdate, 0)
	for rows.Next() {
		var u entities.OrderStatusUpdate
		if err := rows.Scan(&u.ID, &u.OrderID, &u.User, &u.OldStatus, &u.NewStatus, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования записи истории: %w", err)
		}
		history = append(history, u)
	}
	return history, rows.Err()
}
