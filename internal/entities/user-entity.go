package entities

import "bathhouse-orders/pkg/types"

type User struct {
	ID           string   `json:"id" db:"id"`
	Login        string   `json:"login" db:"login"`
	Fio          string   `json:"fio" db:"fio"`
	PasswordHash string   `json:"-" db:"password_hash"`
	Roles        []string `json:"roles"`

	types.BaseEntity
}
