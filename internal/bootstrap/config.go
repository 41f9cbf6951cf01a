package bootstrap

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"gobang/internal/engine"
)

type Config struct {
	ListenAddr   string        `mapstructure:"listen_addr"`
	WebDir       string        `mapstructure:"web_dir"`
	MobileDir    string        `mapstructure:"mobile_dir"`
	LogLevel     string        `mapstructure:"log_level"`
	DefaultDepth int           `mapstructure:"default_depth"`
	EvalCacheCap int           `mapstructure:"eval_cache_cap"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	OpenBrowser  bool          `mapstructure:"open_browser"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen_addr", ":2888")
	v.SetDefault("web_dir", "./web")
	v.SetDefault("mobile_dir", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("default_depth", engine.DefaultDepth)
	v.SetDefault("eval_cache_cap", 1<<20)
	v.SetDefault("poll_interval", 100*time.Millisecond)
	v.SetDefault("open_browser", true)
}

// Setup reads cfgPath when it is non-empty, then applies GOBANG_* environment
// overrides on top of the defaults.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("GOBANG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DefaultDepth < engine.MinDepth || c.DefaultDepth > engine.MaxDepth {
		return fmt.Errorf("default_depth %d: %w", c.DefaultDepth, engine.ErrInvalidDepth)
	}
	if c.EvalCacheCap <= 0 {
		return errors.New("eval_cache_cap must be positive")
	}
	if c.PollInterval <= 0 {
		return errors.New("poll_interval must be positive")
	}
	if c.ListenAddr == "" {
		return errors.New("listen_addr is empty")
	}
	return nil
}
