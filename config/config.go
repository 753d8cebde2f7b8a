package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. HERORUN_LEVEL.
const EnvPrefix = "HERORUN"

var ErrInvalid = errors.New("config: invalid")

// Config is the runtime configuration of the game and the simulator.
type Config struct {
	Title       string `mapstructure:"title"`
	Width       int    `mapstructure:"width"`
	Height      int    `mapstructure:"height"`
	TPS         int    `mapstructure:"tps"`
	Level       string `mapstructure:"level"`
	Debug       bool   `mapstructure:"debug"`
	Watch       bool   `mapstructure:"watch"`
	AutoRespawn bool   `mapstructure:"auto-respawn"`
	Mute        bool   `mapstructure:"mute"`
	LogLevel    string `mapstructure:"log-level"`
	LogFormat   string `mapstructure:"log-format"`
}

// Defaults is used for any key not set by a flag, the environment or the
// config file.
func Defaults() Config {
	return Config{
		Title:     "herorun",
		Width:     640,
		Height:    480,
		TPS:       60,
		Level:     "level-1",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// RegisterFlags adds the config flags, plus --config, to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.String("config", "", "config file (default ./herorun.yaml)")
	fs.String("title", d.Title, "window title")
	fs.Int("width", d.Width, "window width in pixels")
	fs.Int("height", d.Height, "window height in pixels")
	fs.Int("tps", d.TPS, "simulation ticks per second")
	fs.String("level", d.Level, "level to load")
	fs.Bool("debug", d.Debug, "panic on illegal transitions and draw colliders")
	fs.Bool("watch", d.Watch, "reload prefabs and levels when they change on disk")
	fs.Bool("auto-respawn", d.AutoRespawn, "respawn without waiting for the restart key")
	fs.Bool("mute", d.Mute, "disable sound effects")
	fs.String("log-level", d.LogLevel, "log level")
	fs.String("log-format", d.LogFormat, "log format: text or json")
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault("config", "")
	v.SetDefault("title", d.Title)
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("tps", d.TPS)
	v.SetDefault("level", d.Level)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("watch", d.Watch)
	v.SetDefault("auto-respawn", d.AutoRespawn)
	v.SetDefault("mute", d.Mute)
	v.SetDefault("log-level", d.LogLevel)
	v.SetDefault("log-format", d.LogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load resolves the configuration. Precedence is flags, environment, config
// file, defaults. A missing ./herorun.yaml is fine; a missing --config file
// is not.
func Load(v *viper.Viper, fs *pflag.FlagSet) (Config, error) {
	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	} else {
		v.SetConfigName("herorun")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config: read: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS)
	case c.Level == "":
		return fmt.Errorf("%w: empty level", ErrInvalid)
	}
	return nil
}

// DT is the fixed simulation step in seconds.
func (c Config) DT() float64 { return 1 / float64(c.TPS) }
