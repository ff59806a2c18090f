package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"
)

// EnvPrefix marks environment overrides. A double underscore separates
// nested keys, so LEDGER_HTTP__PORT sets http.port.
const EnvPrefix = "LEDGER_"

var validate = validator.New()

type Config struct {
	HTTP     HTTPConfig     `koanf:"http"`
	Log      LogConfig      `koanf:"log"`
	Operator OperatorConfig `koanf:"operator"`
	Ledger   LedgerConfig   `koanf:"ledger"`
	Seed     SeedConfig     `koanf:"seed"`
}

type HTTPConfig struct {
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
}

type OperatorConfig struct {
	Workers   int `koanf:"workers" validate:"min=1"`
	QueueSize int `koanf:"queue_size" validate:"min=1"`
}

type LedgerConfig struct {
	DefaultPageSize      int    `koanf:"default_page_size" validate:"min=1,ltefield=MaxPageSize"`
	MaxPageSize          int    `koanf:"max_page_size" validate:"min=1"`
	MinAmount            string `koanf:"min_amount" validate:"required"`
	MaxAmount            string `koanf:"max_amount" validate:"required"`
	MaxDescriptionLength int    `koanf:"max_description_length" validate:"min=1"`
}

// Limits returns the parsed amount bounds. Load has already checked them.
func (l LedgerConfig) Limits() (minAmount, maxAmount decimal.Decimal) {
	return decimal.RequireFromString(l.MinAmount), decimal.RequireFromString(l.MaxAmount)
}

type SeedConfig struct {
	Enabled bool  `koanf:"enabled"`
	Count   int   `koanf:"count" validate:"min=0"`
	Random  int64 `koanf:"random"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"http.port":                     9446,
		"http.shutdown_timeout":         "10s",
		"log.level":                     "info",
		"operator.workers":              4,
		"operator.queue_size":           1000,
		"ledger.default_page_size":      10,
		"ledger.max_page_size":          100,
		"ledger.min_amount":             "0.01",
		"ledger.max_amount":             "9999999999.99",
		"ledger.max_description_length": 255,
		"seed.enabled":                  false,
		"seed.count":                    25,
		"seed.random":                   0,
	}
}

// Load layers defaults, the optional YAML file at path and LEDGER_
// environment variables, in that order, then validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("config: invalid: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config: invalid: %w", err)
	}

	minAmount, err := decimal.NewFromString(c.Ledger.MinAmount)
	if err != nil {
		return fmt.Errorf("config: ledger.min_amount: %w", err)
	}
	maxAmount, err := decimal.NewFromString(c.Ledger.MaxAmount)
	if err != nil {
		return fmt.Errorf("config: ledger.max_amount: %w", err)
	}
	if !minAmount.IsPositive() {
		return errors.New("config: ledger.min_amount must be positive")
	}
	if minAmount.GreaterThan(maxAmount) {
		return errors.New("config: ledger.min_amount exceeds ledger.max_amount")
	}
	return nil
}
