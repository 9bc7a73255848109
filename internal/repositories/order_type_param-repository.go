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
	orderTypeParamTable  = "order_type_params"
	orderTypeParamFields = "id, name, value_type, required, order_type_id, created_at, updated_at"
)

type OrderTypeParamRepositoryInterface interface {
	CreateInTx(ctx context.Context, tx pgx.Tx, param *entities.OrderTypeParam) error
	FindByID(ctx context.Context, id string) (*entities.OrderTypeParam, error)
	GetByOrderTypeID(ctx context.Context, q Querier, orderTypeID string) ([]entities.OrderTypeParam, error)
	Delete(ctx context.Context, id string) error
}

type orderTypeParamRepository struct {
	storage *pgxpool.Pool
}

func NewOrderTypeParamRepository(storage *pgxpool.Pool) OrderTypeParamRepositoryInterface {
	return &orderTypeParamRepository{storage: storage}
}

func (r *orderTypeParamRepository) CreateInTx(ctx context.Context, tx pgx.Tx, param *entities.OrderTypeParam) error {
	if param.ID == "" {
		param.ID = uuid.NewString()
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, value_type, required, order_type_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at`, orderTypeParamTable)

	err := tx.QueryRow(ctx, query,
		param.ID, param.Name, param.ValueType, param.Required, param.OrderTypeID,
	).Scan(&param.CreatedAt, &param.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ошибка создания параметра типа заказа: %w", err)
	}
	return nil
}

func (r *orderTypeParamRepository) FindByID(ctx context.Context, id string) (*entities.OrderTypeParam, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, orderTypeParamFields, orderTypeParamTable)

	var p entities.OrderTypeParam
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.ValueType, &p.Required, &p.OrderTypeID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования параметра типа заказа: %w", err)
	}
	return &p, nil
}

// GetByOrderTypeID сохраняет порядок объявления параметров (по времени
// создания); из транзакции перехода вызывается с tx.
func (r *orderTypeParamRepository) GetByOrderTypeID(ctx context.Context, q Querier, orderTypeID string) ([]entities.OrderTypeParam, error) {
	if q == nil {
		q = r.storage
	}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE order_type_id = $1 ORDER BY created_at`,
		orderTypeParamFields, orderTypeParamTable)

	rows, err := q.Query(ctx, query, orderTypeID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения параметров типа заказа: %w", err)
	}
	defer rows.Close()

	params := make([]entities.OrderTypeParam, 0)
	for rows.Next() {
		var p entities.OrderTypeParam
		if err := rows.Scan(&p.ID, &p.Name, &p.ValueType, &p.Required, &p.OrderTypeID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования параметра типа заказа: %w", err)
		}
		params = append(params, p)
	}
	return params, rows.Err()
}

func (r *orderTypeParamRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, orderTypeParamTable), id)
	if err != nil {
		return fmt.Errorf("ошибка удаления параметра типа заказа: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
