package dto

type LoginDTO struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenPairDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// CheckRolesDTO — диагностическая проверка: держит ли текущий
// пользователь ВСЕ перечисленные роли.
type CheckRolesDTO struct {
	Roles []string `json:"roles" validate:"required,min=1"`
}
