package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`

	SentryEnabled bool `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// prometheus metrics server
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// generative text service
	LLMBaseURL   string `toml:"llm_base_url"`
	LLMModel     string `toml:"llm_model"`
	LLMMaxTokens int    `toml:"llm_max_tokens"`

	// nutrient database service
	NutrientAPIBaseURL string `toml:"nutrient_api_base_url"`

	// plan (re)generation throttling, per user
	PlanGenerationPerMin int `toml:"plan_generation_per_min"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	tomlBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var configToml Toml
	if err := toml.Unmarshal(tomlBytes, &configToml); err != nil {
		return nil, fmt.Errorf("unmarshal config file: %w", err)
	}

	cfg, err := configToml.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] is empty", env)
	}

	cfg.Environment = env
	if cfg.PlanGenerationPerMin <= 0 {
		cfg.PlanGenerationPerMin = 1
	}

	return cfg, nil
}
