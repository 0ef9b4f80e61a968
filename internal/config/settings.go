// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds everything that can be tuned at startup.
type Settings struct {
	Window     WindowConfig     `mapstructure:"window" yaml:"window"`
	Simulation SimulationConfig `mapstructure:"simulation" yaml:"simulation"`
	Input      InputConfig      `mapstructure:"input" yaml:"input"`
	Logger     LoggerConfig     `mapstructure:"logger" yaml:"logger"`
}

type WindowConfig struct {
	Width     int    `mapstructure:"width" yaml:"width"`
	Height    int    `mapstructure:"height" yaml:"height"`
	Title     string `mapstructure:"title" yaml:"title"`
	Resizable bool   `mapstructure:"resizable" yaml:"resizable"`
}

// SimulationConfig carries the initial angular speed and the slider range.
type SimulationConfig struct {
	AngularSpeed    float64 `mapstructure:"angular_speed" yaml:"angular_speed"`
	MinAngularSpeed float64 `mapstructure:"min_angular_speed" yaml:"min_angular_speed"`
	MaxAngularSpeed float64 `mapstructure:"max_angular_speed" yaml:"max_angular_speed"`
	ProjectileSpeed float64 `mapstructure:"projectile_speed" yaml:"projectile_speed"`
}

// InputConfig names the launch, reset and pause keys as ebiten key names.
type InputConfig struct {
	LaunchKey string `mapstructure:"launch_key" yaml:"launch_key"`
	ResetKey  string `mapstructure:"reset_key" yaml:"reset_key"`
	PauseKey  string `mapstructure:"pause_key" yaml:"pause_key"`
}

// LoggerConfig configures zap and the optional rotating log file.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	// -- Window --
	v.SetDefault("window.width", ScreenWidth)
	v.SetDefault("window.height", ScreenHeight)
	v.SetDefault("window.title", "Coriolis")
	v.SetDefault("window.resizable", true)

	// -- Simulation --
	v.SetDefault("simulation.angular_speed", DefaultAngularSpeed)
	v.SetDefault("simulation.min_angular_speed", MinAngularSpeed)
	v.SetDefault("simulation.max_angular_speed", MaxAngularSpeed)
	v.SetDefault("simulation.projectile_speed", ProjectileSpeed)

	// -- Input --
	v.SetDefault("input.launch_key", "Space")
	v.SetDefault("input.reset_key", "R")
	v.SetDefault("input.pause_key", "P")

	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "coriolis")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)
}

// NewViper returns a viper instance with defaults, env binding and the
// optional config file path wired in. An empty path searches the working
// directory for coriolis.yaml.
func NewViper(path string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("coriolis")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix("CORIOLIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (a missing default file is fine) and
// unmarshals the result.
func Load(v *viper.Viper) (*Settings, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper unmarshals and validates without touching the filesystem.
func FromViper(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &s, nil
}

// NewDefaultSettings returns the defaults only.
func NewDefaultSettings() *Settings {
	v := viper.New()
	SetDefaults(v)
	s, err := FromViper(v)
	if err != nil {
		panic(fmt.Sprintf("failed to build default settings: %v", err))
	}
	return s
}

// Validate checks the settings that would otherwise break the layout or the slider.
func (s *Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= HUDHeight {
		return fmt.Errorf("window %dx%d is too small", s.Window.Width, s.Window.Height)
	}
	sim := s.Simulation
	if sim.MinAngularSpeed >= sim.MaxAngularSpeed {
		return fmt.Errorf("min_angular_speed (%g) must be below max_angular_speed (%g)", sim.MinAngularSpeed, sim.MaxAngularSpeed)
	}
	if sim.AngularSpeed < sim.MinAngularSpeed || sim.AngularSpeed > sim.MaxAngularSpeed {
		return fmt.Errorf("angular_speed %g outside [%g, %g]", sim.AngularSpeed, sim.MinAngularSpeed, sim.MaxAngularSpeed)
	}
	if sim.ProjectileSpeed <= 0 {
		return errors.New("projectile_speed must be positive")
	}
	if s.Input.LaunchKey == "" || s.Input.ResetKey == "" {
		return errors.New("launch_key and reset_key are required")
	}
	keys := []string{s.Input.LaunchKey, s.Input.ResetKey, s.Input.PauseKey}
	for i := range keys {
		for j := i + 1; j < len(keys); j++ {
			if keys[j] != "" && strings.EqualFold(keys[i], keys[j]) {
				return fmt.Errorf("input keys must differ, %q is bound twice", keys[i])
			}
		}
	}
	return nil
}
