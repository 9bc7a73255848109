package jobs

import (
	"context"
	"fmt"
	"time"

	"bathhouse-orders/internal/services"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// OrderRemovalJob периодически финализирует заказы, помеченные на
// удаление: после истечения льготного периода TO_REMOVE переводится
// в REMOVED. Повторный проход по уже финализированным заказам ничего
// не делает.
type OrderRemovalJob struct {
	workflow services.OrderWorkflowServiceInterface
	cron     *cron.Cron
	interval time.Duration
	logger   *zap.Logger
}

func NewOrderRemovalJob(workflow services.OrderWorkflowServiceInterface, interval time.Duration, logger *zap.Logger) *OrderRemovalJob {
	return &OrderRemovalJob{
		workflow: workflow,
		cron:     cron.New(cron.WithSeconds()),
		interval: interval,
		logger:   logger,
	}
}

func (j *OrderRemovalJob) Start() error {
	spec := fmt.Sprintf("@every %s", j.interval)
	_, err := j.cron.AddFunc(spec, func() {
		ctx := context.Background()
		finalized, err := j.workflow.FinalizeExpiredRemovals(ctx)
		if err != nil {
			j.logger.Error("проход финализации удалённых заказов завершился ошибкой", zap.Error(err))
			return
		}
		if finalized > 0 {
			j.logger.Info("финализированы удалённые заказы", zap.Int("count", finalized))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("фоновая финализация удалённых заказов запущена",
		zap.Duration("interval", j.interval))
	return nil
}

func (j *OrderRemovalJob) Stop() {
	ctx := j.cron.Stop()
	// Дожидаемся завершения текущего прохода.
	<-ctx.Done()
	j.logger.Info("фоновая финализация удалённых заказов остановлена")
}
