package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func unsetServerVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		unsetEnv(t, key)
	}
}

func TestLoadServerDefaults(t *testing.T) {
	unsetServerVars(t)

	cfg, err := LoadServer(nil)
	if err != nil {
		t.Fatalf("LoadServer returned error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.ShutdownGracePeriod != 10*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
	if !cfg.EnableRequestLogging {
		t.Fatalf("expected request logging enabled by default")
	}
	if cfg.RateLimitRPS != defaultRateLimitRPS || cfg.RateLimitBurst != defaultRateLimitBurst {
		t.Fatalf("unexpected rate limit defaults: %g/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadServerEnvOverrides(t *testing.T) {
	unsetServerVars(t)
	t.Setenv("PORT", "9000")
	t.Setenv("RATE_LIMIT_RPS", "5")
	t.Setenv("RATE_LIMIT_BURST", "10")

	cfg, err := LoadServer(nil)
	if err != nil {
		t.Fatalf("LoadServer returned error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Fatalf("expected overridden port, got %s", cfg.Port)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Fatalf("unexpected rate limits: %g/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadServerIgnoresInvalidEnv(t *testing.T) {
	unsetServerVars(t)
	t.Setenv("RATE_LIMIT_RPS", "not-a-number")
	t.Setenv("RATE_LIMIT_BURST", "-3")

	cfg, err := LoadServer(nil)
	if err != nil {
		t.Fatalf("LoadServer returned error: %v", err)
	}

	if cfg.RateLimitRPS != defaultRateLimitRPS {
		t.Fatalf("expected invalid RPS to be ignored, got %g", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != defaultRateLimitBurst {
		t.Fatalf("expected negative burst to be ignored, got %d", cfg.RateLimitBurst)
	}
}

func TestLoadServerYAMLFile(t *testing.T) {
	unsetServerVars(t)

	path := filepath.Join(t.TempDir(), "server.yaml")
	data := []byte(`port: "7070"
shutdown_grace_period: 3s
write_timeout: 20s
enable_request_logging: true
rate_limit:
  rps: 2
  burst: 4
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := LoadServer(&CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("LoadServer returned error: %v", err)
	}

	if cfg.Port != "7070" {
		t.Fatalf("expected YAML port, got %s", cfg.Port)
	}
	if cfg.ShutdownGracePeriod != 3*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
	if cfg.WriteTimeout != 20*time.Second {
		t.Fatalf("unexpected write timeout: %s", cfg.WriteTimeout)
	}
	if cfg.RateLimitRPS != 2 || cfg.RateLimitBurst != 4 {
		t.Fatalf("unexpected rate limits: %g/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadServerMissingYAMLFile(t *testing.T) {
	unsetServerVars(t)

	if _, err := LoadServer(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "absent.yaml")}); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLoadServerPrecedence(t *testing.T) {
	unsetServerVars(t)
	t.Setenv("PORT", "9000")

	path := filepath.Join(t.TempDir(), "server.yaml")
	if err := os.WriteFile(path, []byte("port: \"7070\"\nenable_request_logging: true\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	// Env beats YAML.
	cfg, err := LoadServer(&CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("LoadServer returned error: %v", err)
	}
	if cfg.Port != "9000" {
		t.Fatalf("expected env to override YAML, got %s", cfg.Port)
	}

	// CLI beats env.
	cliPort := "6060"
	cfg, err = LoadServer(&CLIOverrides{ConfigFile: path, Port: &cliPort})
	if err != nil {
		t.Fatalf("LoadServer returned error: %v", err)
	}
	if cfg.Port != "6060" {
		t.Fatalf("expected CLI to override env, got %s", cfg.Port)
	}
}
