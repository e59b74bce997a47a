package cron

import (
	"context"
	"fmt"
	"time"

	"bakehouse/config"
	"bakehouse/services/order"
	"bakehouse/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeOrderSweep is the task type for the unpaid-order auto-cancellation
// sweep.
const TypeOrderSweep = "orders:sweep"

// InitSweepWorker starts the asynq worker and registers the periodic
// sweep. One sweep also runs immediately so a long-stopped server catches
// up on startup.
func InitSweepWorker(orderSvc order.OrderService) {
	logger := utils.GetLogger()
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeOrderSweep, handleSweepTask(orderSvc))

	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Fatal("sweep worker failed to start", zap.Error(err))
		}
	}()

	interval := config.AppConfig.SweepIntervalMinutes
	if interval <= 0 {
		interval = 60
	}
	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	if _, err := scheduler.Register(
		fmt.Sprintf("@every %dm", interval),
		asynq.NewTask(TypeOrderSweep, nil),
	); err != nil {
		logger.Fatal("failed to register sweep schedule", zap.Error(err))
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Fatal("sweep scheduler failed to start", zap.Error(err))
		}
	}()

	// Startup catch-up pass.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if _, err := orderSvc.SweepUnpaid(ctx); err != nil {
			logger.Error("startup sweep failed", zap.Error(err))
		}
	}()
}

func handleSweepTask(orderSvc order.OrderService) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		cancelled, err := orderSvc.SweepUnpaid(ctx)
		if err != nil {
			utils.GetLogger().Error("sweep task failed", zap.Error(err))
			return err
		}
		utils.GetLogger().Debug("sweep task completed", zap.Int("cancelled", cancelled))
		return nil
	}
}
