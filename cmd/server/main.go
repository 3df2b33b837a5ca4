package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/eugenenazirov/trading-signal-bot/internal/api"
	"github.com/eugenenazirov/trading-signal-bot/internal/application"
	"github.com/eugenenazirov/trading-signal-bot/internal/config"
	"github.com/eugenenazirov/trading-signal-bot/internal/logging"
)

var signalNotify = signal.Notify

func main() {
	kingpinApp := kingpin.New("trading-signal-bot", "Trading signal service - environment-driven configuration with an HTTP health endpoint")
	configFile := kingpinApp.Flag("config", "Path to YAML server configuration file").String()
	envFile := kingpinApp.Flag("env-file", "Path to a .env file loaded before the environment is read").String()
	port := kingpinApp.Flag("port", "HTTP port exposed by the service").String()
	rateLimitRPSFlag := kingpinApp.Flag("rate-limit-rps", "Requests per second allowed (set 0 to disable)").Default("-1").Float64()
	rateLimitBurstFlag := kingpinApp.Flag("rate-limit-burst", "Burst capacity for rate limiter (set 0 to disable)").Default("-1").Int()

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			panic(fmt.Sprintf("failed to load env file %s: %v", *envFile, err))
		}
	}

	// Trading configuration is validated before anything listens: a process
	// with bad credentials or risk parameters must not come up at all.
	tradingCfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("invalid trading configuration: %v", err))
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *port != "" {
		overrides.Port = port
	}

	if *rateLimitRPSFlag >= 0 {
		overrides.RateLimitRPS = rateLimitRPSFlag
	}

	if *rateLimitBurstFlag >= 0 {
		overrides.RateLimitBurst = rateLimitBurstFlag
	}

	serverCfg, err := config.LoadServer(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load server configuration: %v", err))
	}

	logger, err := logging.New(api.ServiceName)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := application.New(tradingCfg, serverCfg, logger)

	if err := app.Start(); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}

	shutdown(app.Server(), serverCfg.ShutdownGracePeriod, logger)
}

func shutdown(server *http.Server, timeout time.Duration, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
}
