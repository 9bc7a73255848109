package repositories

import (
	"context"
	"errors"
	"fmt"

	"bathhouse-orders/internal/entities"
	apperrors "bathhouse-orders/pkg/errors"
	"bathhouse-orders/pkg/types"
	"bathhouse-orders/pkg/utils"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	orderTypeTable  = "order_types"
	orderTypeFields = "id, name, dependency_kind, created_at, updated_at"
)

var OrderTypeSortingFields = utils.SortingFields("name", "dependency_kind")

type OrderTypeRepositoryInterface interface {
	Create(ctx context.Context, tx pgx.Tx, orderType *entities.OrderType) error
	UpdateName(ctx context.Context, id string, name string) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*entities.OrderType, error)
	GetAll(ctx context.Context, filter types.Filter) ([]entities.OrderType, uint64, error)
	HasOrders(ctx context.Context, id string) (bool, error)
}

type orderTypeRepository struct {
	storage *pgxpool.Pool
}

func NewOrderTypeRepository(storage *pgxpool.Pool) OrderTypeRepositoryInterface {
	return &orderTypeRepository{storage: storage}
}

func (r *orderTypeRepository) scanRow(row pgx.Row) (*entities.OrderType, error) {
	var ot entities.OrderType
	err := row.Scan(&ot.ID, &ot.Name, &ot.DependencyKind, &ot.CreatedAt, &ot.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования строки order_type: %w", err)
	}
	return &ot, nil
}

// Create заводит тип заказа в транзакции; параметры типа пишутся той же
// транзакцией через OrderTypeParamRepository.
func (r *orderTypeRepository) Create(ctx context.Context, tx pgx.Tx, orderType *entities.OrderType) error {
	if orderType.ID == "" {
		orderType.ID = uuid.NewString()
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, dependency_kind, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at`, orderTypeTable)

	err := tx.QueryRow(ctx, query, orderType.ID, orderType.Name, orderType.DependencyKind).
		Scan(&orderType.CreatedAt, &orderType.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("тип заказа с таким именем уже существует: %w", apperrors.ErrConflict)
		}
		return fmt.Errorf("ошибка создания order_type: %w", err)
	}
	return nil
}

func (r *orderTypeRepository) UpdateName(ctx context.Context, id string, name string) error {
	tag, err := r.storage.Exec(ctx,
		fmt.Sprintf(`UPDATE %s SET name = $1, updated_at = NOW() WHERE id = $2`, orderTypeTable),
		name, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("тип заказа с таким именем уже существует: %w", apperrors.ErrConflict)
		}
		return fmt.Errorf("ошибка обновления order_type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *orderTypeRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, orderTypeTable), id)
	if err != nil {
		return fmt.Errorf("ошибка удаления order_type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *orderTypeRepository) FindByID(ctx context.Context, id string) (*entities.OrderType, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, orderTypeFields, orderTypeTable)
	return r.scanRow(r.storage.QueryRow(ctx, query, id))
}

func (r *orderTypeRepository) GetAll(ctx context.Context, filter types.Filter) ([]entities.OrderType, uint64, error) {
	builder := sq.Select(orderTypeFields).
		From(orderTypeTable).
		PlaceholderFormat(sq.Dollar)
	countBuilder := sq.Select("COUNT(*)").
		From(orderTypeTable).
		PlaceholderFormat(sq.Dollar)

	for field, values := range filter.Filters {
		builder = builder.Where(sq.Eq{field: values})
		countBuilder = countBuilder.Where(sq.Eq{field: values})
	}

	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("created_at")
	}
	for _, s := range filter.Sort {
		direction := "ASC"
		if s.Desc {
			direction = "DESC"
		}
		builder = builder.OrderBy(fmt.Sprintf("%s %s", s.Field, direction))
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка построения запроса подсчёта типов заказов: %w", err)
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчёта типов заказов: %w", err)
	}

	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit).Offset(filter.Offset)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка построения запроса типов заказов: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения типов заказов: %w", err)
	}
	defer rows.Close()

	orderTypes := make([]entities.OrderType, 0)
	for rows.Next() {
		var ot entities.OrderType
		if err := rows.Scan(&ot.ID, &ot.Name, &ot.DependencyKind, &ot.CreatedAt, &ot.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования типа заказа: %w", err)
		}
		orderTypes = append(orderTypes, ot)
	}
	return orderTypes, total, rows.Err()
}

// HasOrders отвечает, ссылаются ли на тип существующие заказы. Такой тип
// неизменяем, кроме имени.
func (r *orderTypeRepository) HasOrders(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM orders WHERE order_type_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("ошибка проверки заказов типа: %w", err)
	}
	return exists, nil
}
