package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/dph/portal/internal/contactpage"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Contact  ContactConfig  `mapstructure:"contact"`
	Kiosk    KioskConfig    `mapstructure:"kiosk"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path        string        `mapstructure:"path"`
	BusyTimeout time.Duration `mapstructure:"busy_timeout"`
}

// ServerConfig holds REST API settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig holds logger settings. An empty File logs to stderr.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// ContactConfig holds contact settings caching.
type ContactConfig struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// KioskConfig holds presentation settings for the terminal kiosk.
type KioskConfig struct {
	APIURL            string        `mapstructure:"api_url"`
	HighlightInterval time.Duration `mapstructure:"highlight_interval"`
	CarouselInterval  time.Duration `mapstructure:"carousel_interval"`
	ContentOrder      []string      `mapstructure:"content_order"`
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "portal")
}

// DefaultPath is the config file used when neither a flag nor PORTAL_CONFIG
// names one.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "portal", "config.toml")
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(dataDir(), "portal.db"))
	v.SetDefault("database.busy_timeout", 5*time.Second)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("contact.cache_ttl", 30*time.Second)
	v.SetDefault("kiosk.api_url", "")
	v.SetDefault("kiosk.highlight_interval", 1500*time.Millisecond)
	v.SetDefault("kiosk.carousel_interval", 5*time.Second)
	v.SetDefault("kiosk.content_order", contactpage.DefaultOrder())

	v.SetConfigType("toml")
	v.SetEnvPrefix("PORTAL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Load reads configuration from path (or PORTAL_CONFIG, or the default
// location) and the environment. Env var overrides use prefix PORTAL_.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	v := newViper()

	if path == "" {
		path = os.Getenv("PORTAL_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	// An explicitly empty content_order means the full page.
	if len(c.Kiosk.ContentOrder) == 0 {
		c.Kiosk.ContentOrder = contactpage.DefaultOrder()
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that would otherwise fail late at runtime.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Database.Path) == "" && c.Kiosk.APIURL == "" {
		return fmt.Errorf("config: database.path is required")
	}
	if c.Database.BusyTimeout < 0 {
		return fmt.Errorf("config: database.busy_timeout must not be negative, got %s", c.Database.BusyTimeout)
	}
	if c.Kiosk.HighlightInterval <= 0 {
		return fmt.Errorf("config: kiosk.highlight_interval must be positive, got %s", c.Kiosk.HighlightInterval)
	}
	if c.Kiosk.CarouselInterval <= 0 {
		return fmt.Errorf("config: kiosk.carousel_interval must be positive, got %s", c.Kiosk.CarouselInterval)
	}
	if len(c.Kiosk.ContentOrder) > 0 {
		if err := contactpage.ValidateOrder(c.Kiosk.ContentOrder); err != nil {
			return fmt.Errorf("config: kiosk.content_order: %w", err)
		}
	}
	return nil
}

// Save writes the provided config to path, creating the config directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.busy_timeout", cfg.Database.BusyTimeout.String())
	v.Set("server.addr", cfg.Server.Addr)
	v.Set("server.shutdown_timeout", cfg.Server.ShutdownTimeout.String())
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	v.Set("contact.cache_ttl", cfg.Contact.CacheTTL.String())
	v.Set("kiosk.api_url", cfg.Kiosk.APIURL)
	v.Set("kiosk.highlight_interval", cfg.Kiosk.HighlightInterval.String())
	v.Set("kiosk.carousel_interval", cfg.Kiosk.CarouselInterval.String())
	v.Set("kiosk.content_order", cfg.Kiosk.ContentOrder)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
