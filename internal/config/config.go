package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ecoeval/schema"
)

// Config is the service configuration: defaults, then the YAML file, then
// ECOEVAL_* environment variables.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Engine  EngineConfig  `yaml:"engine"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig covers the HTTP listeners and request limits. TrustProxy
// takes the client address from X-Forwarded-For / X-Real-IP; enable it only
// behind a proxy that sets those headers.
type ServerConfig struct {
	Port            int  `yaml:"port"`
	MetricsPort     int  `yaml:"metrics_port"`
	RateLimitPerMin int  `yaml:"rate_limit_per_min"`
	MaxBodyBytes    int  `yaml:"max_body_bytes"`
	TrustProxy      bool `yaml:"trust_proxy"`
}

// EngineConfig holds the defaults applied to jobs that leave a setting empty.
type EngineConfig struct {
	Method               string  `yaml:"method"`
	Shift                float64 `yaml:"shift"`
	WeightUsage          string  `yaml:"weight_usage"`
	AHPMethod            string  `yaml:"ahp_method"`
	Oversize             string  `yaml:"oversize"`
	ConsistencyThreshold float64 `yaml:"consistency_threshold"`
	TieRule              string  `yaml:"tie_rule"`
}

// LoggingConfig selects the slog level and handler ("json" or "text").
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Defaults converts the engine section for schema.Job.ApplyDefaults.
func (c *Config) Defaults() schema.Defaults {
	return schema.Defaults{
		Method:               c.Engine.Method,
		Shift:                c.Engine.Shift,
		WeightUsage:          c.Engine.WeightUsage,
		AHPMethod:            c.Engine.AHPMethod,
		Oversize:             c.Engine.Oversize,
		ConsistencyThreshold: c.Engine.ConsistencyThreshold,
		TieRule:              c.Engine.TieRule,
	}
}

// Load builds a validated Config; an empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            8700,
			MetricsPort:     8701,
			RateLimitPerMin: 120,
			MaxBodyBytes:    1 << 20,
		},
		Engine: EngineConfig{
			Method:               "minmax",
			Shift:                0.01,
			WeightUsage:          "both",
			AHPMethod:            "geometric",
			Oversize:             "abort",
			ConsistencyThreshold: 0.1,
			TieRule:              "competition",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects engine defaults that every job would then fail on.
func (c *Config) Validate() error {
	sample := schema.Job{
		Indicators: []schema.IndicatorSpec{{Name: "sample", Type: "max"}},
		Values:     [][]float64{{1}},
	}
	sample.ApplyDefaults(c.Defaults())
	if err := sample.Validate(); err != nil {
		return fmt.Errorf("engine config: %w", err)
	}
	if c.Engine.ConsistencyThreshold <= 0 {
		return fmt.Errorf("engine config: consistency_threshold must be > 0, got %g", c.Engine.ConsistencyThreshold)
	}
	if c.Server.RateLimitPerMin < 0 {
		return fmt.Errorf("server config: rate_limit_per_min must be >= 0, got %d", c.Server.RateLimitPerMin)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ECOEVAL_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("ECOEVAL_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("ECOEVAL_RATE_LIMIT_PER_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RateLimitPerMin = n
		}
	}
	if v := os.Getenv("ECOEVAL_TRUST_PROXY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Server.TrustProxy = b
		}
	}
	if v := os.Getenv("ECOEVAL_METHOD"); v != "" {
		cfg.Engine.Method = v
	}
	if v := os.Getenv("ECOEVAL_SHIFT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Engine.Shift = f
		}
	}
	if v := os.Getenv("ECOEVAL_WEIGHT_USAGE"); v != "" {
		cfg.Engine.WeightUsage = v
	}
	if v := os.Getenv("ECOEVAL_AHP_METHOD"); v != "" {
		cfg.Engine.AHPMethod = v
	}
	if v := os.Getenv("ECOEVAL_OVERSIZE"); v != "" {
		cfg.Engine.Oversize = v
	}
	if v := os.Getenv("ECOEVAL_CONSISTENCY_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Engine.ConsistencyThreshold = f
		}
	}
	if v := os.Getenv("ECOEVAL_TIE_RULE"); v != "" {
		cfg.Engine.TieRule = v
	}
	if v := os.Getenv("ECOEVAL_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ECOEVAL_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
