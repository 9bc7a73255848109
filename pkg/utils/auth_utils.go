package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword возвращает bcrypt-хеш пароля со стоимостью по умолчанию.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("не удалось хешировать пароль: %w", err)
	}
	return string(hash), nil
}

// CheckPassword сверяет открытый пароль с хешем из базы.
func CheckPassword(passwordHash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(plain))
}

// RequestValidator подключает go-playground/validator к echo:
// контроллеры вызывают ctx.Validate над привязанным DTO.
type RequestValidator struct {
	validate *validator.Validate
}

func NewValidator(v *validator.Validate) *RequestValidator {
	return &RequestValidator{validate: v}
}

func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.validate.Struct(i)
}
