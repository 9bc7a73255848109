package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"bathhouse-orders/internal/repositories"
	"bathhouse-orders/internal/services"
	"bathhouse-orders/pkg/config"
	"bathhouse-orders/pkg/middleware"
	"bathhouse-orders/pkg/service"
)

// InitRouter собирает весь граф зависимостей и развешивает маршруты.
// Возвращает сервис машины состояний: он же выполняет фоновую
// финализацию удалённых заказов.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	cfg *config.Config,
) services.OrderWorkflowServiceInterface {
	api := e.Group("/api")
	txManager := repositories.NewTxManager(dbConn)

	// Репозитории.
	userRepo := repositories.NewUserRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	orderRepo := repositories.NewOrderRepository(dbConn)
	orderTypeRepo := repositories.NewOrderTypeRepository(dbConn)
	typeParamRepo := repositories.NewOrderTypeParamRepository(dbConn)
	paramValueRepo := repositories.NewOrderParamValueRepository(dbConn)
	statusUpdateRepo := repositories.NewOrderStatusUpdateRepository(dbConn)
	materialRepo := repositories.NewMaterialRepository(dbConn)

	// Сервисы.
	authService := services.NewAuthService(userRepo, cacheRepo, jwtSvc, cfg.Sweep.RolesTTL, logger)
	workflowService := services.NewOrderWorkflowService(
		txManager, orderRepo, typeParamRepo, paramValueRepo, statusUpdateRepo,
		logger, cfg.Sweep.GracePeriod,
	)
	orderService := services.NewOrderService(
		orderRepo, orderTypeRepo, paramValueRepo, statusUpdateRepo, workflowService, logger,
	)
	orderTypeService := services.NewOrderTypeService(txManager, orderTypeRepo, typeParamRepo, logger)
	paramValueService := services.NewOrderParamValueService(orderRepo, typeParamRepo, paramValueRepo, logger)
	reportService := services.NewReportService(orderRepo, orderTypeRepo, logger)
	materialService := services.NewMaterialService(materialRepo, orderRepo, orderTypeRepo, logger)

	authMW := middleware.NewAuthMiddleware(jwtSvc, authService, logger)
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authService, logger, authMW)
	runOrderRouter(secureGroup, orderService, paramValueService, workflowService, materialService, logger)
	runOrderTypeRouter(secureGroup, orderTypeService, logger)
	runReportRouter(secureGroup, reportService, logger)

	logger.Info("маршруты инициализированы")
	return workflowService
}
