package seeders

import (
	"context"
	"log"
	"os"

	"bathhouse-orders/internal/authz"
	"bathhouse-orders/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userSeed struct {
	Login    string
	Fio      string
	Password string
	Roles    []string
}

var usersData = []userSeed{
	{
		Login:    "customer_manager",
		Fio:      "Менеджер по работе с клиентами",
		Password: "customer_manager",
		Roles:    []string{authz.RoleStaff, authz.RoleCustomerManager},
	},
	{
		Login:    "axeman",
		Fio:      "Плотник",
		Password: "axeman",
		Roles:    []string{authz.RoleStaff, authz.RoleAxeman},
	},
	{
		Login:    "order_manager",
		Fio:      "Менеджер заказов",
		Password: "order_manager",
		Roles:    []string{authz.RoleStaff, authz.RoleOrderManager},
	},
}

func seedUser(ctx context.Context, db *pgxpool.Pool, u userSeed) error {
	hash, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var userID string
	err = tx.QueryRow(ctx, `
		INSERT INTO users (id, login, fio, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (login) DO UPDATE SET fio = EXCLUDED.fio
		RETURNING id`,
		uuid.NewString(), u.Login, u.Fio, hash,
	).Scan(&userID)
	if err != nil {
		return err
	}

	for _, role := range u.Roles {
		_, err := tx.Exec(ctx, `
			INSERT INTO user_roles (user_id, role)
			VALUES ($1, $2)
			ON CONFLICT (user_id, role) DO NOTHING`, userID, role)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func seedStaffUsers(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'users'...")
	for _, u := range usersData {
		if err := seedUser(ctx, db, u); err != nil {
			return err
		}
	}
	return nil
}

// seedAdmin создаёт администратора. Пароль берётся из ADMIN_PASSWORD,
// чтобы не хранить его в коде.
func seedAdmin(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Создание администратора...")
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
		log.Println("    ADMIN_PASSWORD не задан, используется пароль по умолчанию.")
	}
	return seedUser(ctx, db, userSeed{
		Login:    "admin",
		Fio:      "Администратор",
		Password: password,
		Roles:    []string{authz.RoleAdmin, authz.RoleStaff},
	})
}
