package main

import (
	"context"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"gocoach/internal/api"
	"gocoach/internal/config"
	"gocoach/internal/logging"
	"gocoach/internal/scoring"
	"gocoach/internal/server"
	"gocoach/ports"
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
		logger.Error("API server stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// run serves the API until ctx is done
func run(ctx context.Context, appConfig *config.Config, logger *zap.Logger) error {
	gin.SetMode(appConfig.Server.GinMode)

	ruleset := scoring.Reference()
	var evaluator ports.StrategyEvaluator = scoring.NewEngineWithRuleset(ruleset)
	var memo *scoring.Memo
	if appConfig.Engine.Memoize {
		memo = scoring.NewMemo(evaluator)
		evaluator = memo
	}
	logger.Info("Decision engine ready",
		zap.String("ruleset", ruleset.Fingerprint().Short()),
		zap.Bool("memoize", appConfig.Engine.Memoize))

	handler := api.NewStrategyHandler(evaluator, ruleset, logger)
	router := api.NewRouter(handler, logger)

	// pprof registers on the default mux, kept off the public router
	if appConfig.Profiling.Enabled {
		go func() {
			logger.Info("🚀 Performance profiling server starting", zap.String("port", appConfig.Profiling.Port))
			if err := http.ListenAndServe(":"+appConfig.Profiling.Port, nil); err != nil {
				logger.Error("❌ pprof server failed", zap.Error(err))
			}
		}()
	}

	logger.Info("🚀 Starting gocoach API", zap.String("port", appConfig.Server.Port))
	srv := server.New(appConfig.Server.Port, router)
	if err := server.Serve(ctx, srv, appConfig.Server.ShutdownTimeout, logger); err != nil {
		return err
	}

	if memo != nil {
		stats := memo.Stats()
		logger.Info("Memo cache at shutdown",
			zap.Int("entries", stats.Entries),
			zap.Uint64("hits", stats.Hits),
			zap.Uint64("misses", stats.Misses))
	}
	logger.Info("API server stopped")
	return nil
}
