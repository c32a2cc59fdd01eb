package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/corsair/constant"
)

// ErrInvalidConfig is returned when a configuration value is out of range
var ErrInvalidConfig = errors.New("invalid config")

// Config is the immutable run configuration, passed by value
type Config struct {
	Title    string  `mapstructure:"title"`
	Width    int     `mapstructure:"width"`
	Height   int     `mapstructure:"height"`
	Zoom     float64 `mapstructure:"zoom"`
	Seed     uint64  `mapstructure:"seed"`
	FPS      int     `mapstructure:"fps"`
	Audio    bool    `mapstructure:"audio"`
	Debug    bool    `mapstructure:"debug"`
	BossArms bool    `mapstructure:"boss_arms"`
	LogDir   string  `mapstructure:"log_dir"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() Config {
	return Config{
		Title:  "corsair",
		Width:  80,
		Height: 40,
		Zoom:   constant.DefaultZoom,
		FPS:    int(1e9 / constant.FrameUpdateInterval.Nanoseconds()),
		Audio:  true,
		LogDir: "logs",
	}
}

// NewViper creates a viper instance carrying defaults and CORSAIR_* env overrides
func NewViper() *viper.Viper {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("title", def.Title)
	v.SetDefault("width", def.Width)
	v.SetDefault("height", def.Height)
	v.SetDefault("zoom", def.Zoom)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("fps", def.FPS)
	v.SetDefault("audio", def.Audio)
	v.SetDefault("debug", def.Debug)
	v.SetDefault("boss_arms", def.BossArms)
	v.SetDefault("log_dir", def.LogDir)

	v.SetEnvPrefix("CORSAIR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags maps command line flags onto config keys
// --mute inverts into audio
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	binds := map[string]string{
		"seed":      "seed",
		"debug":     "debug",
		"fps":       "fps",
		"boss_arms": "boss-arms",
	}
	for key, name := range binds {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	if f := fs.Lookup("mute"); f != nil && f.Changed && f.Value.String() == "true" {
		v.Set("audio", false)
	}
	return nil
}

// LoadConfig reads an optional config file into v and produces a validated Config
func LoadConfig(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	switch {
	case c.FPS < 1 || c.FPS > 240:
		return fmt.Errorf("%w: fps %d outside 1..240", ErrInvalidConfig, c.FPS)
	case c.Zoom <= 0:
		return fmt.Errorf("%w: zoom must be positive, got %g", ErrInvalidConfig, c.Zoom)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	return nil
}
