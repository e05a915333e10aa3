package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/akyairhashvil/sessionplan/internal/util"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the runtime configuration read from the environment.
type Config struct {
	DataDir             string  `env:"DATA_DIR"`
	DBFile              string  `env:"DB_FILE"`
	Project             string  `env:"PROJECT" envDefault:"personal"`
	Theme               string  `env:"THEME" envDefault:"default"`
	LogFile             string  `env:"LOG_FILE"`
	ReportsDir          string  `env:"REPORTS_DIR"`
	DefaultSessionHours float64 `env:"DEFAULT_SESSION_HOURS" envDefault:"2"`
}

// ParseEnv loads SESSIONPLAN_* variables into target.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the optional dotenv files, then the environment, and fills in
// path defaults.
func Load(dotenvFiles ...string) (Config, error) {
	if err := loadDotenv(dotenvFiles...); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.DataDir == "" {
		cfg.DataDir = util.DataDir(AppName)
	}
	if cfg.DBFile == "" {
		cfg.DBFile = filepath.Join(cfg.DataDir, DBFileName)
	}
	if cfg.ReportsDir == "" {
		cfg.ReportsDir = util.ReportsDir(AppName)
	}
	if cfg.DefaultSessionHours <= 0 || cfg.DefaultSessionHours > MaxSessionHours {
		return Config{}, fmt.Errorf("parse env: %sDEFAULT_SESSION_HOURS must be in (0, %g]", EnvPrefix, MaxSessionHours)
	}
	return cfg, nil
}

// loadDotenv applies the given files (or ./.env) without overriding variables
// that are already set. Missing files are ignored.
func loadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}
