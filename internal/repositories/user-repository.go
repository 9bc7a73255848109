package repositories

import (
	"context"
	"errors"
	"fmt"

	"bathhouse-orders/internal/entities"
	apperrors "bathhouse-orders/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByLogin(ctx context.Context, login string) (*entities.User, error)
	GetUserRoles(ctx context.Context, userID string) ([]string, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &UserRepository{storage: storage}
}

func (r *UserRepository) scanRow(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Login, &u.Fio, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования пользователя: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return r.scanRow(r.storage.QueryRow(ctx,
		`SELECT id, login, fio, password_hash, created_at, updated_at FROM users WHERE id = $1`, id))
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*entities.User, error) {
	return r.scanRow(r.storage.QueryRow(ctx,
		`SELECT id, login, fio, password_hash, created_at, updated_at FROM users WHERE login = $1`, login))
}

func (r *UserRepository) GetUserRoles(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT role FROM user_roles WHERE user_id = $1 ORDER BY role`, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения ролей пользователя: %w", err)
	}
	defer rows.Close()

	roles := make([]string, 0)
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("ошибка сканирования роли: %w", err)
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}
