package seeders

import (
	"context"
	"log"

	"bathhouse-orders/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type paramSeed struct {
	Name      string
	ValueType entities.ValueType
	Required  bool
}

type orderTypeSeed struct {
	Name           string
	DependencyKind entities.DependencyKind
	Params         []paramSeed
}

var orderTypesData = []orderTypeSeed{
	{
		Name:           entities.TypeBathOrder,
		DependencyKind: entities.DependencyMain,
		Params: []paramSeed{
			{Name: "Длина сруба", ValueType: entities.ValueTypeInt, Required: true},
			{Name: "Ширина сруба", ValueType: entities.ValueTypeInt, Required: true},
			{Name: "Порода дерева", ValueType: entities.ValueTypeString, Required: true},
			{Name: "Дата сдачи", ValueType: entities.ValueTypeDate, Required: true},
			{Name: "Комментарий", ValueType: entities.ValueTypeText, Required: false},
		},
	},
	{
		Name:           entities.TypeWoodRequest,
		DependencyKind: entities.DependencyDepend,
		Params: []paramSeed{
			{Name: "Объем леса", ValueType: entities.ValueTypeInt, Required: true},
			{Name: "Порода дерева", ValueType: entities.ValueTypeString, Required: true},
		},
	},
	{
		Name:           entities.TypeDefectRequest,
		DependencyKind: entities.DependencyDefect,
		Params: []paramSeed{
			{Name: "Описание брака", ValueType: entities.ValueTypeText, Required: true},
		},
	},
	{
		Name:           entities.TypeDeliveryRequest,
		DependencyKind: entities.DependencyDelivery,
		Params: []paramSeed{
			{Name: "Адрес доставки", ValueType: entities.ValueTypeString, Required: true},
			{Name: "Дата доставки", ValueType: entities.ValueTypeDate, Required: false},
		},
	},
}

func seedOrderTypes(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'order_types'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, ot := range orderTypesData {
		var typeID string
		err := tx.QueryRow(ctx, `
			INSERT INTO order_types (id, name, dependency_kind, created_at, updated_at)
			VALUES ($1, $2, $3, NOW(), NOW())
			ON CONFLICT (name) DO UPDATE SET dependency_kind = EXCLUDED.dependency_kind
			RETURNING id`,
			uuid.NewString(), ot.Name, ot.DependencyKind,
		).Scan(&typeID)
		if err != nil {
			return err
		}

		for _, p := range ot.Params {
			_, err := tx.Exec(ctx, `
				INSERT INTO order_type_params (id, name, value_type, required, order_type_id, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
				ON CONFLICT (order_type_id, name) DO UPDATE SET
					value_type = EXCLUDED.value_type,
					required = EXCLUDED.required`,
				uuid.NewString(), p.Name, p.ValueType, p.Required, typeID)
			if err != nil {
				return err
			}
		}
	}
	return tx.Commit(ctx)
}
