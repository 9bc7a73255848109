package repositories

import (
	"context"
	"errors"
	"fmt"

	"bathhouse-orders/internal/entities"
	apperrors "bathhouse-orders/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	orderParamValueTable  = "order_param_values"
	orderParamValueFields = "id, order_id, order_type_param_id, value, created_at, updated_at"
)

type OrderParamValueRepositoryInterface interface {
	Upsert(ctx context.Context, value *entities.OrderParamValue) error
	GetByOrderID(ctx context.Context, q Querier, orderID string) ([]entities.OrderParamValue, error)
	Delete(ctx context.Context, id string) error
}

type orderParamValueRepository struct {
	storage *pgxpool.Pool
}

func NewOrderParamValueRepository(storage *pgxpool.Pool) OrderParamValueRepositoryInterface {
	return &orderParamValueRepository{storage: storage}
}

// Upsert пишет значение параметра. Уникальность пары
// (order_id, order_type_param_id) закреплена индексом в схеме: повторная
// запись того же параметра перезаписывает значение вместо дубля.
func (r *orderParamValueRepository) Upsert(ctx context.Context, value *entities.OrderParamValue) error {
	if value.ID == "" {
		value.ID = uuid.NewString()
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, order_id, order_type_param_id, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (order_id, order_type_param_id)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING id, created_at, updated_at`, orderParamValueTable)

	err := r.storage.QueryRow(ctx, query,
		value.ID, value.OrderID, value.OrderTypeParamID, value.Value,
	).Scan(&value.ID, &value.CreatedAt, &value.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ошибка записи значения параметра заказа: %w", err)
	}
	return nil
}

func (r *orderParamValueRepository) GetByOrderID(ctx context.Context, q Querier, orderID string) ([]entities.OrderParamValue, error) {
	if q == nil {
		q = r.storage
	}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE order_id = $1 ORDER BY created_at`,
		orderParamValueFields, orderParamValueTable)

	rows, err := q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения значений параметров заказа: %w", err)
	}
	defer rows.Close()

	values := make([]entities.OrderParamValue, 0)
	for rows.Next() {
		var v entities.OrderParamValue
		if err := rows.Scan(&v.ID, &v.OrderID, &v.OrderTypeParamID, &v.Value, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования значения параметра: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func (r *orderParamValueRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, orderParamValueTable), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("ошибка удаления значения параметра: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
