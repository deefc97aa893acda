package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-server/api"
	"github.com/carson-networks/bank-server/internal/config"
	"github.com/carson-networks/bank-server/internal/logging"
	"github.com/carson-networks/bank-server/internal/operator"
	"github.com/carson-networks/bank-server/internal/registry"
	"github.com/carson-networks/bank-server/internal/scheduler"
	"github.com/carson-networks/bank-server/internal/service"
	"github.com/carson-networks/bank-server/internal/storage"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		logrus.WithError(err).Fatal("config.LoadDotEnv")
		return
	}

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("bank-server starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bankStorage := storage.NewStorage(registry.New(logger))
	op := operator.NewOperatorDelegator(bankStorage, envConfig.OperatorWorkers, envConfig.OperatorQueueSize, logger)
	op.Start()

	svc := service.NewService(bankStorage, op, logger)

	var cron *scheduler.Scheduler
	if envConfig.EndOfMonthSchedule != "" {
		cron = scheduler.NewScheduler(svc.Account, logger, envConfig.EndOfMonthSchedule)
		if err := cron.Start(); err != nil {
			logger.WithError(err).Fatal("scheduler.Start")
			return
		}
	} else {
		logger.Info("scheduler disabled")
	}

	httpRest := api.Rest{
		Logger:   logger,
		Port:     envConfig.HTTPPort,
		Service:  svc,
		Operator: op,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("api.Serve")
	}

	if cron != nil {
		<-cron.Stop().Done()
	}
	op.Stop()
	logger.Info("bank-server stopped")
}
