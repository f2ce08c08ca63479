package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix   = "CRONOGRAMA"
	DefaultUser = "default"

	KeyDB        = "db"
	KeyUser      = "user"
	KeyDebug     = "debug"
	KeyConfigDir = "config_dir"
)

// Config is the resolved runtime configuration.
type Config struct {
	DBPath    string
	User      string
	Debug     bool
	ConfigDir string
}

// DefaultConfigDir returns ~/.cronograma, or a relative .cronograma when the
// home directory cannot be determined.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cronograma"
	}
	return filepath.Join(home, ".cronograma")
}

// New returns a viper instance with defaults and environment binding set up.
// Environment variables take the form CRONOGRAMA_DB, CRONOGRAMA_USER, ...
func New() *viper.Viper {
	v := viper.New()
	v.SetTypeByDefaultValue(true)
	v.SetDefault(KeyConfigDir, DefaultConfigDir())
	v.SetDefault(KeyDB, "")
	v.SetDefault(KeyUser, DefaultUser)
	v.SetDefault(KeyDebug, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load resolves the configuration. A .env file and a config.yaml in the
// config directory are both optional; environment variables win over the
// file, and flags bound to v win over both.
func Load(v *viper.Viper) (*Config, error) {
	dir := v.GetString(KeyConfigDir)

	dotEnv := filepath.Join(dir, ".env")
	if _, err := os.Stat(dotEnv); err == nil {
		if err := godotenv.Load(dotEnv); err != nil {
			return nil, fmt.Errorf("loading %s: %w", dotEnv, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking %s: %w", dotEnv, err)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{
		DBPath:    v.GetString(KeyDB),
		User:      strings.TrimSpace(v.GetString(KeyUser)),
		Debug:     v.GetBool(KeyDebug),
		ConfigDir: dir,
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(dir, "cronograma.db")
	}
	if cfg.User == "" {
		cfg.User = DefaultUser
	}
	return cfg, nil
}
