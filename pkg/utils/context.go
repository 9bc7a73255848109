package utils

import (
	"context"

	"bathhouse-orders/pkg/contextkeys"
	apperrors "bathhouse-orders/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(string)
	if !ok || userID == "" {
		return "", apperrors.ErrUserNotFoundInContext
	}
	return userID, nil
}

func GetUserRolesFromCtx(ctx context.Context) ([]string, error) {
	roles, ok := ctx.Value(contextkeys.UserRolesKey).([]string)
	if !ok {
		return nil, apperrors.ErrUserNotFoundInContext
	}
	return roles, nil
}
