package errors

import (
	"fmt"
	"strings"
)

var (
	// JWT и токены
	ErrInvalidSigningMethod = fmt.Errorf("неверный метод подписи токена")
	ErrInvalidToken         = fmt.Errorf("недопустимый токен")
	ErrTokenExpired         = fmt.Errorf("срок действия токена истёк")
	ErrTokenIsNotRefresh    = fmt.Errorf("токен не является refresh-токеном")
	ErrTokenIsNotAccess     = fmt.Errorf("токен не является access-токеном")

	// Авторизация
	ErrEmptyAuthHeader    = fmt.Errorf("заголовок авторизации отсутствует")
	ErrInvalidAuthHeader  = fmt.Errorf("неверный формат заголовка авторизации")
	ErrInvalidCredentials = fmt.Errorf("неверные учётные данные")
	ErrUnauthorized       = fmt.Errorf("неавторизован")
	ErrForbidden          = fmt.Errorf("доступ запрещён")

	// Контекст
	ErrUserNotFoundInContext = fmt.Errorf("пользователь не найден в контексте запроса")

	// Общие
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrBadRequest = fmt.Errorf("неверный запрос")
	ErrConflict   = fmt.Errorf("конфликт данных")
)

// HttpError несёт HTTP-код вместе с сообщением для клиента.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

// ValidationError собирает ПОЛНЫЙ список нарушений, а не только первое.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

func NewValidationError(violations ...string) error {
	return &ValidationError{Violations: violations}
}

// InvalidTransitionError возникает, когда запрошенный статус недостижим
// из текущего по таблице переходов.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("переход статуса %s -> %s недопустим", e.From, e.To)
}

func NewInvalidTransitionError(from, to string) error {
	return &InvalidTransitionError{From: from, To: to}
}

// IncorrectSortingError возвращается при неизвестных или повторяющихся
// полях сортировки.
type IncorrectSortingError struct {
	Fields    []string
	Available []string
}

func (e *IncorrectSortingError) Error() string {
	return fmt.Sprintf(
		"некорректная сортировка по полям [%s], доступные поля: [%s]",
		strings.Join(e.Fields, ", "), strings.Join(e.Available, ", "),
	)
}

func NewIncorrectSortingError(fields, available []string) error {
	return &IncorrectSortingError{Fields: fields, Available: available}
}

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
