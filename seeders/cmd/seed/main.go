package main

import (
	"flag"

	"bathhouse-orders/pkg/config"
	"bathhouse-orders/pkg/database/postgresql"
	"bathhouse-orders/seeders"
)

// Наполнение базы стартовыми данными:
//
//	go run ./seeders/cmd/seed              # справочники и пользователи
//	go run ./seeders/cmd/seed -users=false # только справочники
func main() {
	withDicts := flag.Bool("dictionaries", true, "наполнить справочник типов заказов")
	withUsers := flag.Bool("users", true, "создать администратора и сотрудников")
	flag.Parse()

	cfg := config.New()
	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	if *withDicts {
		seeders.SeedDictionaries(db)
	}
	if *withUsers {
		seeders.SeedUsers(db)
	}
}
