package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bathhouse-orders/internal/dto"
	"bathhouse-orders/internal/entities"
	"bathhouse-orders/internal/repositories"
	apperrors "bathhouse-orders/pkg/errors"
	"bathhouse-orders/pkg/service"
	"bathhouse-orders/pkg/utils"

	"go.uber.org/zap"
)

const userRolesCachePrefix = "user_roles:"

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error)
	GetUserRoles(ctx context.Context, userID string) ([]string, error)
	Me(ctx context.Context, userID string) (*entities.User, error)
	InvalidateRolesCache(ctx context.Context, userID string) error
}

// AuthService отвечает за вход по логину/паролю, обновление пары токенов
// и выдачу ролей пользователя. Роли кешируются в Redis, чтобы не ходить
// в базу на каждый запрос.
type AuthService struct {
	userRepo   repositories.UserRepositoryInterface
	cacheRepo  repositories.CacheRepositoryInterface
	jwtService service.JWTService
	rolesTTL   time.Duration
	logger     *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	rolesTTL time.Duration,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:   userRepo,
		cacheRepo:  cacheRepo,
		jwtService: jwtService,
		rolesTTL:   rolesTTL,
		logger:     logger,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error) {
	user, err := s.userRepo.FindByLogin(ctx, payload.Login)
	if err != nil {
		// Не раскрываем, существует ли логин.
		return nil, apperrors.ErrUnauthorized
	}

	if err := utils.CheckPassword(user.PasswordHash, payload.Password); err != nil {
		s.logger.Warn("неуспешная попытка входа", zap.String("login", payload.Login))
		return nil, apperrors.ErrUnauthorized
	}

	access, refresh, err := s.jwtService.GenerateTokens(user.ID)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации токенов: %w", err)
	}

	s.logger.Info("пользователь вошёл в систему", zap.String("userID", user.ID))
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrInvalidToken
	}

	if _, err := s.userRepo.FindByID(ctx, claims.UserID); err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	access, refresh, err := s.jwtService.GenerateTokens(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации токенов: %w", err)
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

// GetUserRoles реализует middleware.RoleProvider: сперва кеш, при промахе
// база с записью в кеш.
func (s *AuthService) GetUserRoles(ctx context.Context, userID string) ([]string, error) {
	cacheKey := userRolesCachePrefix + userID

	if cached, err := s.cacheRepo.Get(ctx, cacheKey); err == nil {
		var roles []string
		if err := json.Unmarshal([]byte(cached), &roles); err == nil {
			return roles, nil
		}
	}

	roles, err := s.userRepo.GetUserRoles(ctx, userID)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(roles); err == nil {
		if err := s.cacheRepo.Set(ctx, cacheKey, encoded, s.rolesTTL); err != nil {
			s.logger.Warn("не удалось закешировать роли пользователя",
				zap.String("userID", userID), zap.Error(err))
		}
	}
	return roles, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	roles, err := s.GetUserRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Roles = roles
	return user, nil
}

func (s *AuthService) InvalidateRolesCache(ctx context.Context, userID string) error {
	return s.cacheRepo.Del(ctx, userRolesCachePrefix+userID)
}
