package main

import (
	"flag"
	"log"

	"bathhouse-orders/pkg/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Применение миграций схемы: go run ./app/migrate [-dir migrations] [command]
// По умолчанию выполняется up.
func main() {
	dir := flag.String("dir", "migrations", "каталог с миграциями")
	flag.Parse()

	command := "up"
	var rest []string
	if args := flag.Args(); len(args) > 0 {
		command = args[0]
		rest = args[1:]
	}

	cfg := config.New()

	db, err := goose.OpenDBWithDriver("pgx", cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("не удалось открыть соединение с базой: %v", err)
	}
	defer db.Close()

	if err := goose.Run(command, db, *dir, rest...); err != nil {
		log.Fatalf("миграция завершилась ошибкой: %v", err)
	}
}
