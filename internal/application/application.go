package application

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/trading-signal-bot/internal/api"
	"github.com/eugenenazirov/trading-signal-bot/internal/config"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	handler *api.Handler
	router  http.Handler
	logger  *zap.Logger
	server  *http.Server
}

// New wires the HTTP surface from the provided configuration. The trading
// configuration has already been validated by config.Load; it is logged here
// (credentials excluded) so operators can confirm what the process runs with.
func New(tradingCfg config.Config, serverCfg config.ServerConfig, logger *zap.Logger) *App {
	handler := api.NewHandler()
	router := api.NewRouter(handler, logger,
		api.WithLogging(serverCfg.EnableRequestLogging),
		api.WithRateLimit(serverCfg.RateLimitRPS, serverCfg.RateLimitBurst),
	)

	logger.Info("trading configuration loaded",
		zap.Strings("trading_pairs", tradingCfg.TradingPairs),
		zap.Int("risk_reward_ratio", tradingCfg.RiskRewardRatio),
		zap.Int("max_position_size", tradingCfg.MaxPositionSize),
		zap.Float64("stop_loss_percentage", tradingCfg.StopLossPercentage),
	)

	return &App{
		handler: handler,
		router:  router,
		logger:  logger,
		server:  NewServer(serverCfg, router),
	}
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}
