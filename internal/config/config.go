package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "daylist"

const (
	defaultTimeout   = 30 * time.Second
	defaultFormat    = "mp3"
	defaultTick      = 200 * time.Millisecond
	defaultQueueSize = 100
	defaultLogLevel  = "debug"
	defaultLogLines  = 200
)

type Config struct {
	Catalog CatalogConfig `koanf:"catalog"`
	Cache   CacheConfig   `koanf:"cache"`
	UI      UIConfig      `koanf:"ui"`
	Queue   QueueConfig   `koanf:"queue"`
	Log     LogConfig     `koanf:"log"`
}

// CatalogConfig holds the remote catalog settings.
type CatalogConfig struct {
	URL     string        `koanf:"url"`     // e.g., "https://music.example.com/api"
	Token   string        `koanf:"token"`   // sent as a bearer token
	Timeout time.Duration `koanf:"timeout"` // per-request timeout (default: 30s)
}

// CacheConfig holds the download cache settings.
type CacheConfig struct {
	Dir    string `koanf:"dir"`    // where downloaded tracks are kept
	Format string `koanf:"format"` // file extension of downloads (default: mp3)
}

// UIConfig holds render loop settings.
type UIConfig struct {
	Tick time.Duration `koanf:"tick"` // refresh period (default: 200ms)
}

// QueueConfig holds the background request queue settings.
type QueueConfig struct {
	Size int `koanf:"size"` // capacity (default: 100)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `koanf:"level"` // logrus level name (default: debug)
	Lines int    `koanf:"lines"` // lines kept for the log pane (default: 200)
	File  string `koanf:"file"`  // optional log file
}

// Load reads the config files in priority order (last wins). An explicit
// path, when given, must exist.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	if explicit != "" {
		if err := k.Load(file.Provider(expandPath(explicit)), toml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.Catalog.URL = strings.TrimSuffix(c.Catalog.URL, "/")
	if c.Catalog.Timeout <= 0 {
		c.Catalog.Timeout = defaultTimeout
	}

	if c.Cache.Dir == "" {
		c.Cache.Dir = filepath.Join(xdg.CacheHome, appName)
	}
	c.Cache.Dir = expandPath(c.Cache.Dir)
	c.Cache.Format = strings.TrimPrefix(strings.ToLower(c.Cache.Format), ".")
	if c.Cache.Format == "" {
		c.Cache.Format = defaultFormat
	}

	if c.UI.Tick <= 0 {
		c.UI.Tick = defaultTick
	}
	if c.Queue.Size <= 0 {
		c.Queue.Size = defaultQueueSize
	}

	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Log.Lines <= 0 {
		c.Log.Lines = defaultLogLines
	}
	if c.Log.File != "" {
		c.Log.File = expandPath(c.Log.File)
	}
}

// HasCatalog returns true if a catalog URL is configured.
func (c *Config) HasCatalog() bool {
	return c.Catalog.URL != ""
}

// IndexPath returns the path of the downloads index database.
func IndexPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, appName+".db"))
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/daylist/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
