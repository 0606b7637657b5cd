// Package config loads the render core's startup tunables and watches
// the config file for live changes, adapted from EdgxCloud-EdgeFlow's
// internal/config.Load.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Backend selects which backend.Kind to dispatch to at startup.
type Backend string

const (
	BackendScalar Backend = "scalar"
	BackendSIMD   Backend = "simd"
	BackendGPU    Backend = "gpu"
)

// Tunables is the startup configuration. DeviceType is loaded (default
// "keyboard") so a config file still names it explicitly, but the render
// loop does not read it: it always selects the first keyboard device.
type Tunables struct {
	RenderPeriod time.Duration `mapstructure:"render_period"`
	Backend      Backend       `mapstructure:"backend"`
	DeviceType   string        `mapstructure:"device_type"`

	Logger LoggerConfig `mapstructure:"logger"`
	Strip  StripConfig  `mapstructure:"strip"`
	Status StatusConfig `mapstructure:"status"`
}

type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	Path     string `mapstructure:"path"`
	MaxSizeM int    `mapstructure:"max_size_mb"`
	MaxAgeD  int    `mapstructure:"max_age_days"`
	Backups  int    `mapstructure:"backups"`
}

// StripConfig configures the Linux WS281x fallback adapter used when no
// vendor lighting SDK is present on the build target.
type StripConfig struct {
	GPIOPin    int `mapstructure:"gpio_pin"`
	LedCount   int `mapstructure:"led_count"`
	Brightness int `mapstructure:"brightness"`
}

// StatusConfig configures the HTTP+WebSocket observability surface.
type StatusConfig struct {
	Addr string `mapstructure:"addr"`
}

// Loader owns the live viper instance so callers can attach a reload
// callback after the initial Load.
type Loader struct {
	v *viper.Viper
}

// Load reads tunables from configPath (or the default search locations
// if empty), falling back to defaults for anything unset.
func Load(configPath string) (*Tunables, *Loader, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("remapper")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/ledcore")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix("LEDCORE")
	v.AutomaticEnv()

	var t Tunables
	if err := v.Unmarshal(&t); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &t, &Loader{v: v}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("render_period", "100ms")
	v.SetDefault("backend", string(BackendScalar))
	v.SetDefault("device_type", "keyboard")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.path", "./logs/remapper.log")
	v.SetDefault("logger.max_size_mb", 50)
	v.SetDefault("logger.max_age_days", 14)
	v.SetDefault("logger.backups", 5)

	v.SetDefault("strip.gpio_pin", 18)
	v.SetDefault("strip.led_count", 64)
	v.SetDefault("strip.brightness", 128)

	v.SetDefault("status.addr", ":8090")
}

// Watch starts watching the config file and invokes onChange with the
// freshly re-unmarshalled Tunables on every write, matching viper's own
// fsnotify-backed WatchConfig/OnConfigChange pair.
func (l *Loader) Watch(onChange func(Tunables)) {
	l.v.OnConfigChange(func(e fsnotify.Event) {
		var t Tunables
		if err := l.v.Unmarshal(&t); err != nil {
			return
		}
		onChange(t)
	})
	l.v.WatchConfig()
}
