package application

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/trading-signal-bot/internal/config"
)

func testTradingConfig() config.Config {
	return config.Config{
		APIKey:             "test_key",
		APISecret:          "test_secret",
		TradingPairs:       []string{"EURUSD", "GBPUSD", "XAUUSD"},
		RiskRewardRatio:    2,
		MaxPositionSize:    1000,
		StopLossPercentage: 2.0,
	}
}

func testServerConfig() config.ServerConfig {
	return config.ServerConfig{
		Port:                 "8080",
		EnableRequestLogging: false,
		RateLimitRPS:         0,
		RateLimitBurst:       0,
	}
}

func TestNewServerNormalizesAddr(t *testing.T) {
	cfg := testServerConfig()
	cfg.Port = "9090"

	server := NewServer(cfg, http.NotFoundHandler())
	if server.Addr != ":9090" {
		t.Fatalf("expected bare port to gain colon prefix, got %q", server.Addr)
	}

	cfg.Port = "127.0.0.1:9090"
	server = NewServer(cfg, http.NotFoundHandler())
	if server.Addr != "127.0.0.1:9090" {
		t.Fatalf("expected host:port to pass through, got %q", server.Addr)
	}
}

func TestNewWiresRouterIntoServer(t *testing.T) {
	logger := zaptest.NewLogger(t)
	app := New(testTradingConfig(), testServerConfig(), logger)

	server := app.Server()
	if server == nil {
		t.Fatalf("expected server instance")
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected wired router to serve health, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown path, got %d", rec.Code)
	}
}
