package main

import (
	"context"
	"options-strategy/config"
	"options-strategy/controllers"
	"options-strategy/interfaces"
	"options-strategy/logging"
	"options-strategy/metrics"
	"options-strategy/server"
	"options-strategy/services"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create logger")
	}

	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var loader interfaces.OptionChainLoader
	if cfg.OptionChain.URL != "" {
		loader = services.NewHTTPOptionChainLoader(cfg.OptionChain.URL, cfg.OptionChain.Timeout)
	} else {
		loader = services.NewFileOptionChainLoader(cfg.OptionChain.Path)
	}

	optionChain, err := services.NewOptionChainService(ctx, loader, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load option chain")
	}

	simulator, err := services.NewPayoffSimulator(cfg.Sampling)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create payoff simulator")
	}
	sampling := simulator.Config()
	logger.WithFields(logrus.Fields{
		"mode":          sampling.Mode,
		"step":          sampling.Step,
		"step_fraction": sampling.StepFraction,
		"max_points":    sampling.MaxPoints,
	}).Info("Payoff sampling configured")
	if sampling.Mode == services.StepModeFixed {
		logger.Info("Fixed payoff step in use; low-priced underlyings may produce sparse curves")
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.NewMetrics("options_strategy")
	}

	strategyService := services.NewStrategyService(simulator, services.NewAdjustmentAdvisor(), m, logger)

	router := server.NewRouter(server.Dependencies{
		StrategyController: controllers.NewStrategyController(strategyService),
		OptionsController:  controllers.NewOptionsController(optionChain),
		Metrics:            m,
		Logger:             logger,
	})

	if err := server.NewGinServer(router, cfg.Server.Addr(), logger).Start(ctx); err != nil {
		logger.WithError(err).Fatal("HTTP server failed")
	}

	logger.Info("Server stopped")
}
