package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"gocoach/internal/config"
	"gocoach/internal/logging"
	"gocoach/internal/scoring"
	"gocoach/internal/server"
	"gocoach/ports"
	"gocoach/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(appConfig.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, appConfig, logger)
	stop()
	if err != nil {
		logger.Error("UI server stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// run serves the HTML surface until ctx is done
func run(ctx context.Context, appConfig *config.Config, logger *zap.Logger) error {
	var evaluator ports.StrategyEvaluator = scoring.NewEngine()
	if appConfig.Engine.Memoize {
		evaluator = scoring.NewMemo(evaluator)
	}

	app, err := ui.NewApp(ui.Config{
		Evaluator: evaluator,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	logger.Info("Starting gocoach UI", zap.String("url", "http://localhost:"+appConfig.Server.UIPort))
	return server.Serve(ctx, server.New(appConfig.Server.UIPort, app), appConfig.Server.ShutdownTimeout, logger)
}
