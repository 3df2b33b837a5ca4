// Package config loads runtime configuration for the trading signal service.
// Trading parameters (credentials, pairs, risk limits) come strictly from
// environment variables and are validated at startup with a fixed error
// taxonomy; HTTP server tuning is resolved from multiple sources (YAML files,
// environment variables, CLI flags) with precedence: CLI flags > YAML config >
// Environment variables > Defaults.
package config
