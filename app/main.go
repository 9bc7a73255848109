package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bathhouse-orders/internal/jobs"
	"bathhouse-orders/internal/routes"
	"bathhouse-orders/pkg/config"
	"bathhouse-orders/pkg/database/postgresql"
	apperrors "bathhouse-orders/pkg/errors"
	applogger "bathhouse-orders/pkg/logger"
	"bathhouse-orders/pkg/service"
	"bathhouse-orders/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("паника при обработке запроса",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Внутренняя ошибка сервера", err)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders: []string{"Content-Disposition"},
	}))

	e.Validator = utils.NewValidator(validator.New())

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("не удалось подключиться к Redis", zap.Error(err))
	}
	defer redisClient.Close()

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)

	workflowService := routes.InitRouter(e, dbConn, redisClient, jwtSvc, logger, cfg)

	removalJob := jobs.NewOrderRemovalJob(workflowService, cfg.Sweep.Interval, logger)
	if err := removalJob.Start(); err != nil {
		logger.Fatal("не удалось запустить фоновую финализацию", zap.Error(err))
	}
	defer removalJob.Stop()

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("сервер остановлен с ошибкой", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("получен сигнал остановки, завершаем работу")
	if err := e.Shutdown(context.Background()); err != nil {
		logger.Error("ошибка при остановке сервера", zap.Error(err))
	}
}
