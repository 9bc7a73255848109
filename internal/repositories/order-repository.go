package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

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
	orderTable  = "orders"
	orderFields = "o.id, o.status, o.user_customer, o.user_implementer, o.order_type_id, o.parent_order_id, o.created_at, o.updated_at"
)

// OrderSortingFields — допустимые поля сортировки списка заказов.
var OrderSortingFields = utils.SortingFields("status", "order_type_id", "user_customer", "user_implementer")

// OrderFilterFields — допустимые поля фильтрации; dependency_kind
// раскрывается через связанный тип заказа.
var OrderFilterFields = map[string]struct{}{
	"id":               {},
	"parent_order_id":  {},
	"user_customer":    {},
	"user_implementer": {},
	"status":           {},
	"order_type_id":    {},
	"dependency_kind":  {},
}

type OrderRepositoryInterface interface {
	GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, uint64, error)
	FindOrder(ctx context.Context, id string) (*entities.Order, error)
	FindOrderForUpdate(ctx context.Context, tx pgx.Tx, id string) (*entities.Order, error)
	CreateOrder(ctx context.Context, order *entities.Order) error
	UpdateOrder(ctx context.Context, id string, userCustomer, userImplementer *string) error
	UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id string, status entities.OrderStatus) error
	GetChildren(ctx context.Context, q Querier, parentID string) ([]entities.Order, error)
	ExistsChildOfType(ctx context.Context, parentID, orderTypeID string) (bool, error)
	GetExpiredRemovals(ctx context.Context, olderThan time.Time) ([]string, error)
}

type OrderRepository struct {
	storage *pgxpool.Pool
}

func NewOrderRepository(storage *pgxpool.Pool) OrderRepositoryInterface {
	return &OrderRepository{storage: storage}
}

func scanOrder(row pgx.Row) (*entities.Order, error) {
	var order entities.Order
	err := row.Scan(
		&order.ID, &order.Status, &order.UserCustomer, &order.UserImplementer,
		&order.OrderTypeID, &order.ParentOrderID, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования заказа: %w", err)
	}
	return &order, nil
}

// GetOrders отдаёт отфильтрованный, отсортированный и постраничный список.
// Фильтры комбинируются по AND; значения через запятую — вхождение в список.
func (r *OrderRepository) GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, uint64, error) {
	builder := sq.Select(orderFields).
		From(orderTable + " o").
		PlaceholderFormat(sq.Dollar)

	countBuilder := sq.Select("COUNT(*)").
		From(orderTable + " o").
		PlaceholderFormat(sq.Dollar)

	needTypeJoin := false
	for field, values := range filter.Filters {
		var cond sq.Sqlizer
		if field == "dependency_kind" {
			needTypeJoin = true
			cond = sq.Eq{"t.dependency_kind": values}
		} else {
			cond = sq.Eq{"o." + field: values}
		}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}
	if needTypeJoin {
		builder = builder.Join("order_types t ON t.id = o.order_type_id")
		countBuilder = countBuilder.Join("order_types t ON t.id = o.order_type_id")
	}

	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("o.created_at DESC")
	}
	for _, s := range filter.Sort {
		direction := "ASC"
		if s.Desc {
			direction = "DESC"
		}
		builder = builder.OrderBy(fmt.Sprintf("o.%s %s", s.Field, direction))
	}

	// Нулевой лимит означает выгрузку без пагинации.
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit).Offset(filter.Offset)
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка построения запроса подсчёта заказов: %w", err)
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчёта заказов: %w", err)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка построения запроса списка заказов: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка заказов: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		var order entities.Order
		if err := rows.Scan(
			&order.ID, &order.Status, &order.UserCustomer, &order.UserImplementer,
			&order.OrderTypeID, &order.ParentOrderID, &order.CreatedAt, &order.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования заказа в списке: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, total, rows.Err()
}

func (r *OrderRepository) FindOrder(ctx context.Context, id string) (*entities.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s o WHERE o.id = $1`, orderFields, orderTable)
	return scanOrder(r.storage.QueryRow(ctx, query, id))
}

// FindOrderForUpdate перечитывает заказ под блокировкой строки: два
// конкурентных перехода по одному заказу сериализуются, решение
// принимается только по актуальному статусу.
func (r *OrderRepository) FindOrderForUpdate(ctx context.Context, tx pgx.Tx, id string) (*entities.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s o WHERE o.id = $1 FOR UPDATE`, orderFields, orderTable)
	return scanOrder(tx.QueryRow(ctx, query, id))
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, status, user_customer, user_implementer, order_type_id, parent_order_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at`, orderTable)

	err := r.storage.QueryRow(ctx, query,
		order.ID, order.Status, order.UserCustomer, order.UserImplementer,
		order.OrderTypeID, order.ParentOrderID,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // uq_orders_parent_type
			return &apperrors.ValidationError{Violations: []string{"Заявка с таким типом уже была создана"}}
		}
		return fmt.Errorf("ошибка создания заказа: %w", err)
	}
	return nil
}

func (r *OrderRepository) UpdateOrder(ctx context.Context, id string, userCustomer, userImplementer *string) error {
	query := "UPDATE " + orderTable + " SET updated_at = NOW()"
	args := []interface{}{}
	argCounter := 1

	if userCustomer != nil {
		query += fmt.Sprintf(", user_customer = $%d", argCounter)
		args = append(args, *userCustomer)
		argCounter++
	}
	if userImplementer != nil {
		query += fmt.Sprintf(", user_implementer = $%d", argCounter)
		args = append(args, *userImplementer)
		argCounter++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argCounter)
	args = append(args, id)

	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления заказа: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateStatusInTx пишет новый статус в той же транзакции, что и запись
// журнала переходов.
func (r *OrderRepository) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id string, status entities.OrderStatus) error {
	tag, err := tx.Exec(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("ошибка обновления статуса заказа: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) GetChildren(ctx context.Context, q Querier, parentID string) ([]entities.Order, error) {
	if q == nil {
		q = r.storage
	}
	query := fmt.Sprintf(`SELECT %s FROM %s o WHERE o.parent_order_id = $1 ORDER BY o.created_at`, orderFields, orderTable)

	rows, err := q.Query(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения дочерних заказов: %w", err)
	}
	defer rows.Close()

	children := make([]entities.Order, 0)
	for rows.Next() {
		var order entities.Order
		if err := rows.Scan(
			&order.ID, &order.Status, &order.UserCustomer, &order.UserImplementer,
			&order.OrderTypeID, &order.ParentOrderID, &order.CreatedAt, &order.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования дочернего заказа: %w", err)
		}
		children = append(children, order)
	}
	return children, rows.Err()
}

func (r *OrderRepository) ExistsChildOfType(ctx context.Context, parentID, orderTypeID string) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM orders WHERE parent_order_id = $1 AND order_type_id = $2)`,
		parentID, orderTypeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("ошибка проверки дочернего заказа: %w", err)
	}
	return exists, nil
}

// GetExpiredRemovals находит заказы в TO_REMOVE, чья последняя запись
// журнала старше отсечки. Заказы, уже переведённые в REMOVED, под фильтр
// не попадают — повторный проход ничего не делает.
func (r *OrderRepository) GetExpiredRemovals(ctx context.Context, olderThan time.Time) ([]string, error) {
	query := `
		SELECT o.id
		FROM orders o
		WHERE o.status = $1
		  AND COALESCE(
			(SELECT MAX(u.created_at) FROM order_status_updates u WHERE u.order_id = o.id),
			o.updated_at
		  ) < $2
		ORDER BY o.updated_at`

	rows, err := r.storage.Query(ctx, query, entities.StatusToRemove, olderThan)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска заказов для финализации: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("ошибка сканирования id заказа: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
