package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/marcin-skalski/lol-cooldowns/internal/lol"
	"github.com/marcin-skalski/lol-cooldowns/internal/staticdata"
)

const appName = "lol-cooldowns"

type Config struct {
	Region          string        `yaml:"region"`
	Summoner        string        `yaml:"summoner"`
	APIKey          string        `yaml:"api_key"`
	KeyFile         string        `yaml:"key_file"`
	CheckForUpdates *bool         `yaml:"check_for_updates,omitempty"`
	Monitor         bool          `yaml:"monitor"`
	CacheFile       string        `yaml:"cache_file"`
	IdleInterval    time.Duration `yaml:"-"`
	RawIdle         string        `yaml:"idle_interval"`
	ActiveInterval  time.Duration `yaml:"-"`
	RawActive       string        `yaml:"active_interval"`
	LogFile         string        `yaml:"log_file"`
	Log             LogConfig     `yaml:"log"`
	TUI             TUIConfig     `yaml:"tui"`
	API             APIConfig     `yaml:"api"`
	Redis           RedisConfig   `yaml:"redis"`
	Discord         DiscordConfig `yaml:"discord"`
	Journal         JournalConfig `yaml:"journal"`

	Platform lol.Platform `yaml:"-"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type TUIConfig struct {
	RefreshInterval time.Duration `yaml:"-"`
	RawInterval     string        `yaml:"refresh_interval"`
}

type APIConfig struct {
	BaseURL       string        `yaml:"base_url"`
	StaticBaseURL string        `yaml:"static_base_url"`
	Timeout       time.Duration `yaml:"-"`
	RawTimeout    string        `yaml:"timeout"`
}

type RedisConfig struct {
	URL    string        `yaml:"url"`
	TTL    time.Duration `yaml:"-"`
	RawTTL string        `yaml:"ttl"`
}

type DiscordConfig struct {
	WebhookURL string `yaml:"webhook_url"`
}

type JournalConfig struct {
	Path string `yaml:"path"`
}

// Overrides are values given on the command line. Empty fields leave the file and
// environment values alone.
type Overrides struct {
	Region         string
	Summoner       string
	APIKey         string
	KeyFile        string
	Monitor        bool
	NoCheckUpdates bool
	CacheFile      string
	LogFile        string
}

// Load builds the configuration from, in increasing precedence: the key file, the
// YAML file at path (skipped when path is empty), .env and the environment, and o.
func Load(path string, o Overrides) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyOverrides(o)

	if err := cfg.setDefaults(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// DefaultPath returns the first existing config file among ./lol-cooldowns.yaml and
// <user config dir>/lol-cooldowns/config.yaml, or "" when there is none.
func DefaultPath() string {
	candidates := []string{appName + ".yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, appName, "config.yaml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func (c *Config) applyEnv() {
	if v := os.Getenv("RIOT_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		c.Redis.URL = v
	}
	if v := os.Getenv("DISCORD_WEBHOOK_URL"); v != "" {
		c.Discord.WebhookURL = v
	}
}

func (c *Config) applyOverrides(o Overrides) {
	if o.Region != "" {
		c.Region = o.Region
	}
	if o.Summoner != "" {
		c.Summoner = o.Summoner
	}
	if o.APIKey != "" {
		c.APIKey = o.APIKey
	}
	if o.KeyFile != "" {
		c.KeyFile = o.KeyFile
	}
	if o.Monitor {
		c.Monitor = true
	}
	if o.NoCheckUpdates {
		off := false
		c.CheckForUpdates = &off
	}
	if o.CacheFile != "" {
		c.CacheFile = o.CacheFile
	}
	if o.LogFile != "" {
		c.LogFile = o.LogFile
	}
}

func (c *Config) setDefaults() error {
	if c.CheckForUpdates == nil {
		defaultTrue := true
		c.CheckForUpdates = &defaultTrue
	}

	dataDir := "."
	if dir, err := os.UserCacheDir(); err == nil {
		dataDir = filepath.Join(dir, appName)
	}
	if c.CacheFile == "" {
		c.CacheFile = filepath.Join(dataDir, staticdata.DefaultFileName)
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(dataDir, "logs", appName+".log")
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.KeyFile == "" {
		c.KeyFile = "key"
	}

	if c.APIKey == "" {
		key, err := readKeyFile(c.KeyFile)
		if err != nil {
			return err
		}
		c.APIKey = key
	}

	var err error
	if c.IdleInterval, err = parseDuration("idle_interval", &c.RawIdle, "30s"); err != nil {
		return err
	}
	if c.ActiveInterval, err = parseDuration("active_interval", &c.RawActive, "60s"); err != nil {
		return err
	}
	if c.TUI.RefreshInterval, err = parseDuration("tui.refresh_interval", &c.TUI.RawInterval, "1s"); err != nil {
		return err
	}
	if c.API.Timeout, err = parseDuration("api.timeout", &c.API.RawTimeout, "15s"); err != nil {
		return err
	}
	if c.Redis.TTL, err = parseDuration("redis.ttl", &c.Redis.RawTTL, "24h"); err != nil {
		return err
	}

	return nil
}

func parseDuration(name string, raw *string, def string) (time.Duration, error) {
	if *raw == "" {
		*raw = def
	}
	d, err := time.ParseDuration(*raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", name, *raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", name, *raw)
	}
	return d, nil
}

// readKeyFile returns the trimmed key file contents; a missing file yields "".
func readKeyFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read key file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (c *Config) validate() error {
	if c.Region == "" {
		return fmt.Errorf("region required (one of %s)", strings.Join(lol.Regions(), ", "))
	}
	p, err := lol.ParsePlatform(c.Region)
	if err != nil {
		return err
	}
	c.Platform = p

	if strings.TrimSpace(c.Summoner) == "" {
		return fmt.Errorf("summoner name required")
	}
	if c.APIKey == "" {
		return fmt.Errorf("api key required (--key, RIOT_API_KEY or %s)", c.KeyFile)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level %q (debug|info|warn|error)", c.Log.Level)
	}
	return nil
}
