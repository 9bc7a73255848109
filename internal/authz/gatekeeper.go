package authz

import apperrors "bathhouse-orders/pkg/errors"

// RequireAnyRole пропускает, если у пользователя есть хотя бы одна из
// требуемых ролей. Чистый предикат без побочных эффектов.
func RequireAnyRole(userRoles []string, required []string) error {
	have := make(map[string]struct{}, len(userRoles))
	for _, r := range userRoles {
		have[r] = struct{}{}
	}
	for _, r := range required {
		if _, ok := have[r]; ok {
			return nil
		}
	}
	return apperrors.ErrForbidden
}

// RequireAllRoles пропускает, только если пользователь держит ВСЕ
// требуемые роли. Используется диагностическим эндпоинтом.
func RequireAllRoles(userRoles []string, required []string) error {
	have := make(map[string]struct{}, len(userRoles))
	for _, r := range userRoles {
		have[r] = struct{}{}
	}
	for _, r := range required {
		if _, ok := have[r]; !ok {
			return apperrors.ErrForbidden
		}
	}
	return nil
}
