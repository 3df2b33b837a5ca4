package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	defaultRiskRewardRatio    = 2
	defaultMaxPositionSize    = 1000
	defaultStopLossPercentage = 2.0
)

// defaultTradingPairs returns a fresh slice so callers can never mutate the
// defaults of a later Load.
func defaultTradingPairs() []string {
	return []string{"EURUSD", "GBPUSD", "XAUUSD"}
}

// Config holds the validated trading parameters read from the environment.
// It is an immutable value: once Load returns, no field is ever updated.
type Config struct {
	APIKey             string
	APISecret          string
	TradingPairs       []string
	RiskRewardRatio    int
	MaxPositionSize    int
	StopLossPercentage float64
}

// Load reads the trading configuration from the current environment and
// validates it. The environment is re-read on every call; nothing is cached.
//
// Validation stops at the first violation, in fixed field order: API_KEY,
// API_SECRET, RISK_REWARD_RATIO, MAX_POSITION_SIZE, STOP_LOSS_PERCENTAGE.
// The returned error is always a *FieldError matchable against
// ErrMissingCredential, ErrInvalidType, or ErrInvalidValue.
func Load() (Config, error) {
	apiKey := os.Getenv("API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		return Config{}, missingCredential("API_KEY")
	}

	apiSecret := os.Getenv("API_SECRET")
	if strings.TrimSpace(apiSecret) == "" {
		return Config{}, missingCredential("API_SECRET")
	}

	cfg := Config{
		APIKey:             apiKey,
		APISecret:          apiSecret,
		TradingPairs:       parseTradingPairs(os.Getenv("TRADING_PAIRS")),
		RiskRewardRatio:    defaultRiskRewardRatio,
		MaxPositionSize:    defaultMaxPositionSize,
		StopLossPercentage: defaultStopLossPercentage,
	}

	if raw, ok := os.LookupEnv("RISK_REWARD_RATIO"); ok {
		value, err := parsePositiveInt("RISK_REWARD_RATIO", raw)
		if err != nil {
			return Config{}, err
		}
		cfg.RiskRewardRatio = value
	}

	if raw, ok := os.LookupEnv("MAX_POSITION_SIZE"); ok {
		value, err := parsePositiveInt("MAX_POSITION_SIZE", raw)
		if err != nil {
			return Config{}, err
		}
		cfg.MaxPositionSize = value
	}

	if raw, ok := os.LookupEnv("STOP_LOSS_PERCENTAGE"); ok {
		value, err := parsePositiveFloat("STOP_LOSS_PERCENTAGE", raw)
		if err != nil {
			return Config{}, err
		}
		cfg.StopLossPercentage = value
	}

	return cfg, nil
}

// parseTradingPairs splits a comma-separated list of pair symbols, trimming
// surrounding whitespace and dropping empty entries. Symbols are accepted
// verbatim; there is no case normalization. An unset variable or a list that
// filters down to nothing falls back to the defaults.
func parseTradingPairs(raw string) []string {
	parts := strings.Split(raw, ",")
	pairs := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		pairs = append(pairs, part)
	}
	if len(pairs) == 0 {
		return defaultTradingPairs()
	}
	return pairs
}

// parsePositiveInt parses a strictly positive integer. Decimal strings are
// rejected even when numeric ("2.5" is not an integer); leading zeros are
// accepted ("003" is 3).
func parsePositiveInt(field, raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, invalidType(field, "integer")
	}
	if value <= 0 {
		return 0, invalidValue(field, "integer")
	}
	return value, nil
}

// parsePositiveFloat parses a strictly positive real number, accepting
// integer-formatted, decimal, and scientific-notation strings.
func parsePositiveFloat(field, raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, invalidType(field, "number")
	}
	if value <= 0 {
		return 0, invalidValue(field, "number")
	}
	return value, nil
}
