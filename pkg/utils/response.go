package utils

import (
	"errors"
	"net/http"

	apperrors "bathhouse-orders/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
	Total   *uint64     `json:"total_count,omitempty"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int, totalCount ...uint64) error {
	response := &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	}
	if len(totalCount) > 0 {
		response.Total = &totalCount[0]
	}
	return ctx.JSON(code, response)
}

var errorStatusList = map[error]int{
	apperrors.ErrNotFound:            http.StatusNotFound,
	apperrors.ErrBadRequest:          http.StatusBadRequest,
	apperrors.ErrForbidden:           http.StatusForbidden,
	apperrors.ErrUnauthorized:        http.StatusUnauthorized,
	apperrors.ErrInvalidToken:        http.StatusUnauthorized,
	apperrors.ErrTokenExpired:        http.StatusUnauthorized,
	apperrors.ErrEmptyAuthHeader:     http.StatusUnauthorized,
	apperrors.ErrInvalidAuthHeader:   http.StatusUnauthorized,
	apperrors.ErrTokenIsNotAccess:    http.StatusUnauthorized,
	apperrors.ErrTokenIsNotRefresh:   http.StatusUnauthorized,
	apperrors.ErrInvalidCredentials:  http.StatusUnauthorized,
	apperrors.ErrConflict:            http.StatusConflict,
	apperrors.ErrUserNotFoundInContext: http.StatusUnauthorized,
}

// ErrorResponse переводит ошибку доменного слоя в HTTP-ответ.
// Коды подбираются по таксономии ошибок; всё неизвестное — 500.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	message := "Внутренняя ошибка сервера"

	var (
		httpErr       *apperrors.HttpError
		validationErr *apperrors.ValidationError
		transitionErr *apperrors.InvalidTransitionError
		sortingErr    *apperrors.IncorrectSortingError
		inputErr      *apperrors.InvalidInputError
		fieldErrs     validator.ValidationErrors
	)

	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = httpErr.Message
	case errors.As(err, &validationErr):
		code = http.StatusBadRequest
		message = validationErr.Error()
	case errors.As(err, &transitionErr):
		code = http.StatusConflict
		message = transitionErr.Error()
	case errors.As(err, &sortingErr):
		code = http.StatusBadRequest
		message = sortingErr.Error()
	case errors.As(err, &inputErr):
		code = http.StatusBadRequest
		message = inputErr.Message
	case errors.As(err, &fieldErrs):
		code = http.StatusBadRequest
		message = "Ошибка валидации запроса: " + fieldErrs.Error()
	default:
		for sentinel, statusCode := range errorStatusList {
			if errors.Is(err, sentinel) {
				code = statusCode
				message = sentinel.Error()
				break
			}
		}
	}

	if code == http.StatusInternalServerError {
		logger.Error("необработанная ошибка запроса",
			zap.String("uri", ctx.Request().RequestURI),
			zap.Error(err),
		)
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Body:    struct{}{},
		Message: message,
	})
}
