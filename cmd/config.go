package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the defaults of the CLI flags, read from the environment.
type Config struct {
	Currency    string `env:"STATEMENT_CURRENCY" envDefault:"USD"`
	LogLevel    string `env:"STATEMENT_LOG_LEVEL" envDefault:"warn"`
	TradesPath  string `env:"STATEMENT_TRADES_PATH" envDefault:"$.actions"`
	ActionsPath string `env:"STATEMENT_ACTIONS_PATH" envDefault:"$.stock_actions"`
	Format      string `env:"STATEMENT_FORMAT" envDefault:"text"`
	Style       string `env:"STATEMENT_STYLE" envDefault:"dark"`
	Width       int    `env:"STATEMENT_WIDTH" envDefault:"100"`
	GeminiModel string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
}

// LoadConfig reads the configuration from the environment, after loading
// the optional .env files.
func LoadConfig(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("cannot load %q: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config error: %w", err)
	}
	return cfg, nil
}

// SetupLogger installs the default structured logger, writing to stderr.
func SetupLogger(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return nil
}
