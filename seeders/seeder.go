package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDictionaries наполняет справочник типов заказов с объявлением
// их параметров.
func SeedDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("Запуск наполнения справочников...")

	if err := seedOrderTypes(ctx, db); err != nil {
		log.Fatalf("Ошибка наполнения типов заказов: %v", err)
	}
	log.Println("Наполнение справочников завершено.")
}

// SeedUsers создаёт администратора и базовых сотрудников с ролями.
func SeedUsers(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("Запуск наполнения пользователей...")

	if err := seedAdmin(ctx, db); err != nil {
		log.Fatalf("Ошибка создания администратора: %v", err)
	}
	if err := seedStaffUsers(ctx, db); err != nil {
		log.Fatalf("Ошибка наполнения пользователей: %v", err)
	}
	log.Println("Наполнение пользователей завершено.")
}
