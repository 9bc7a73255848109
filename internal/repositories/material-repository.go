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
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	materialTable  = "materials"
	materialFields = "id, name, amount, value_type, item_price, user_creator, user_updator, order_id, created_at, updated_at"
)

var MaterialSortingFields = utils.SortingFields("name", "amount", "value_type", "item_price")

type MaterialRepositoryInterface interface {
	Create(ctx context.Context, material *entities.Material) error
	FindByID(ctx context.Context, id string) (*entities.Material, error)
	GetByOrderID(ctx context.Context, orderID string, filter types.Filter) ([]entities.Material, uint64, error)
	Update(ctx context.Context, material *entities.Material) error
	Delete(ctx context.Context, id string) error
}

type materialRepository struct {
	storage *pgxpool.Pool
}

func NewMaterialRepository(storage *pgxpool.Pool) MaterialRepositoryInterface {
	return &materialRepository{storage: storage}
}

func (r *materialRepository) scanRow(row pgx.Row) (*entities.Material, error) {
	var m entities.Material
	err := row.Scan(
		&m.ID, &m.Name, &m.Amount, &m.ValueType, &m.ItemPrice,
		&m.UserCreator, &m.UserUpdator, &m.OrderID, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования материала: %w", err)
	}
	return &m, nil
}

func (r *materialRepository) Create(ctx context.Context, material *entities.Material) error {
	if material.ID == "" {
		material.ID = uuid.NewString()
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, amount, value_type, item_price, user_creator, user_updator, order_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at`, materialTable)

	err := r.storage.QueryRow(ctx, query,
		material.ID, material.Name, material.Amount, material.ValueType,
		material.ItemPrice, material.UserCreator, material.UserUpdator, material.OrderID,
	).Scan(&material.CreatedAt, &material.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ошибка создания материала: %w", err)
	}
	return nil
}

func (r *materialRepository) FindByID(ctx context.Context, id string) (*entities.Material, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, materialFields, materialTable)
	return r.scanRow(r.storage.QueryRow(ctx, query, id))
}

func (r *materialRepository) GetByOrderID(ctx context.Context, orderID string, filter types.Filter) ([]entities.Material, uint64, error) {
	builder := sq.Select(materialFields).
		From(materialTable).
		Where(sq.Eq{"order_id": orderID}).
		PlaceholderFormat(sq.Dollar)
	countBuilder := sq.Select("COUNT(*)").
		From(materialTable).
		Where(sq.Eq{"order_id": orderID}).
		PlaceholderFormat(sq.Dollar)

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
		return nil, 0, fmt.Errorf("ошибка построения запроса подсчёта материалов: %w", err)
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчёта материалов: %w", err)
	}

	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit).Offset(filter.Offset)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка построения запроса материалов: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения материалов заказа: %w", err)
	}
	defer rows.Close()

	materials := make([]entities.Material, 0)
	for rows.Next() {
		var m entities.Material
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Amount, &m.ValueType, &m.ItemPrice,
			&m.UserCreator, &m.UserUpdator, &m.OrderID, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования материала в списке: %w", err)
		}
		materials = append(materials, m)
	}
	return materials, total, rows.Err()
}

// Update перезаписывает содержимое материала; user_creator не трогается.
func (r *materialRepository) Update(ctx context.Context, material *entities.Material) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, amount = $2, value_type = $3, item_price = $4, user_updator = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`, materialTable)

	err := r.storage.QueryRow(ctx, query,
		material.Name, material.Amount, material.ValueType,
		material.ItemPrice, material.UserUpdator, material.ID,
	).Scan(&material.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("ошибка обновления материала: %w", err)
	}
	return nil
}

func (r *materialRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, materialTable), id)
	if err != nil {
		return fmt.Errorf("ошибка удаления материала: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
