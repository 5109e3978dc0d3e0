package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".together"
	envPrefix  = "TOGETHER"
)

const (
	KeyStateURL         = "state.url"
	KeyStateTimeout     = "state.timeout"
	KeyProfilePath      = "profile.path"
	KeySnapshotBackend  = "snapshot.backend"
	KeySnapshotPath     = "snapshot.path"
	KeyRedisAddr        = "redis.addr"
	KeyRedisDB          = "redis.db"
	KeyRedisPrefix      = "redis.prefix"
	KeyNotifyBackend    = "notify.backend"
	KeyNotifyWebhookURL = "notify.webhook_url"
	KeyNotifyCommand    = "notify.command"
	KeyPollInterval     = "poll.interval"
	KeyPeriodicInterval = "periodic.interval"
	KeyPeriodicBackoff  = "periodic.backoff_max"
	KeyMetricsAddr      = "metrics.addr"
	KeyLogLevel         = "log.level"
	KeyLogFormat        = "log.format"
)

const (
	SnapshotTOML   = "toml"
	SnapshotMemory = "memory"
	SnapshotRedis  = "redis"

	NotifyDesktop        = "desktop"
	NotifyWebhook        = "webhook"
	NotifyConsole        = "console"
	NotifyDesktopWebhook = "desktop+webhook"
)

var (
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrStateURLMissing = errors.New("state.url is not set (config file or TOGETHER_STATE_URL)")
)

type Config struct {
	State    StateConfig
	Profile  ProfileConfig
	Snapshot SnapshotConfig
	Redis    RedisConfig
	Notify   NotifyConfig
	Poll     PollConfig
	Periodic PeriodicConfig
	Metrics  MetricsConfig
	Log      LogConfig

	// File is the config file that was read, empty when none was found.
	File string
}

type StateConfig struct {
	URL     string
	Timeout time.Duration
}

type ProfileConfig struct {
	Path string
}

type SnapshotConfig struct {
	Backend string
	Path    string
}

type RedisConfig struct {
	Addr   string
	DB     int
	Prefix string
}

type NotifyConfig struct {
	Backend    string
	WebhookURL string
	Command    string
}

type PollConfig struct {
	Interval time.Duration
}

type PeriodicConfig struct {
	Interval   time.Duration
	BackoffMax time.Duration
}

type MetricsConfig struct {
	Addr string
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads ~/.together/config.toml when present, applies TOGETHER_* env
// overrides, and validates the result. cfg keeps the merged values so stores
// constructed from it see the same settings.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, configDir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(baseDir)

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	setDefaults(cfg, baseDir)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		State: StateConfig{
			URL:     strings.TrimSpace(cfg.GetString(KeyStateURL)),
			Timeout: cfg.GetDuration(KeyStateTimeout),
		},
		Profile: ProfileConfig{Path: cfg.GetString(KeyProfilePath)},
		Snapshot: SnapshotConfig{
			Backend: strings.ToLower(strings.TrimSpace(cfg.GetString(KeySnapshotBackend))),
			Path:    cfg.GetString(KeySnapshotPath),
		},
		Redis: RedisConfig{
			Addr:   cfg.GetString(KeyRedisAddr),
			DB:     cfg.GetInt(KeyRedisDB),
			Prefix: cfg.GetString(KeyRedisPrefix),
		},
		Notify: NotifyConfig{
			Backend:    strings.ToLower(strings.TrimSpace(cfg.GetString(KeyNotifyBackend))),
			WebhookURL: strings.TrimSpace(cfg.GetString(KeyNotifyWebhookURL)),
			Command:    cfg.GetString(KeyNotifyCommand),
		},
		Poll: PollConfig{Interval: cfg.GetDuration(KeyPollInterval)},
		Periodic: PeriodicConfig{
			Interval:   cfg.GetDuration(KeyPeriodicInterval),
			BackoffMax: cfg.GetDuration(KeyPeriodicBackoff),
		},
		Metrics: MetricsConfig{Addr: cfg.GetString(KeyMetricsAddr)},
		Log: LogConfig{
			Level:  cfg.GetString(KeyLogLevel),
			Format: cfg.GetString(KeyLogFormat),
		},
		File: cfg.ConfigFileUsed(),
	}

	if err := loaded.Validate(); err != nil {
		return Config{}, err
	}

	return loaded, nil
}

func setDefaults(cfg *viper.Viper, baseDir string) {
	cfg.SetDefault(KeyStateURL, "")
	cfg.SetDefault(KeyStateTimeout, time.Duration(0))
	cfg.SetDefault(KeyProfilePath, filepath.Join(baseDir, "profile.json"))
	cfg.SetDefault(KeySnapshotBackend, SnapshotTOML)
	cfg.SetDefault(KeySnapshotPath, filepath.Join(baseDir, "snapshots.toml"))
	cfg.SetDefault(KeyRedisAddr, "localhost:6379")
	cfg.SetDefault(KeyRedisDB, 0)
	cfg.SetDefault(KeyRedisPrefix, "together:")
	cfg.SetDefault(KeyNotifyBackend, NotifyDesktop)
	cfg.SetDefault(KeyNotifyWebhookURL, "")
	cfg.SetDefault(KeyNotifyCommand, "notify-send")
	cfg.SetDefault(KeyPollInterval, 15*time.Second)
	cfg.SetDefault(KeyPeriodicInterval, 15*time.Minute)
	cfg.SetDefault(KeyPeriodicBackoff, time.Hour)
	cfg.SetDefault(KeyMetricsAddr, "")
	cfg.SetDefault(KeyLogLevel, "info")
	cfg.SetDefault(KeyLogFormat, "text")
}

func (c Config) Validate() error {
	var errs []error

	if c.State.URL != "" {
		if err := validateHTTPURL(c.State.URL); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", KeyStateURL, err))
		}
	}
	if c.State.Timeout < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", KeyStateTimeout))
	}

	switch c.Snapshot.Backend {
	case SnapshotTOML, SnapshotMemory:
	case SnapshotRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, fmt.Errorf("%s is required for the redis snapshot backend", KeyRedisAddr))
		}
	default:
		errs = append(errs, fmt.Errorf("%s %q is not one of toml, memory, redis", KeySnapshotBackend, c.Snapshot.Backend))
	}

	switch c.Notify.Backend {
	case NotifyDesktop, NotifyConsole:
	case NotifyWebhook, NotifyDesktopWebhook:
		if c.Notify.WebhookURL == "" {
			errs = append(errs, fmt.Errorf("%s is required for the %s notify backend", KeyNotifyWebhookURL, c.Notify.Backend))
		} else if err := validateHTTPURL(c.Notify.WebhookURL); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", KeyNotifyWebhookURL, err))
		}
	default:
		errs = append(errs, fmt.Errorf("%s %q is not one of desktop, webhook, console, desktop+webhook", KeyNotifyBackend, c.Notify.Backend))
	}

	if c.Poll.Interval <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyPollInterval))
	}
	if c.Periodic.Interval <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyPeriodicInterval))
	}
	if c.Periodic.BackoffMax <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyPeriodicBackoff))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// RequireStateURL is checked by commands that fetch.
func (c Config) RequireStateURL() error {
	if c.State.URL == "" {
		return ErrStateURLMissing
	}
	return nil
}

func validateHTTPURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return errors.New("missing host")
	}
	return nil
}
