package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	Profile  ProfileConfig
}

// DatabaseConfig holds sqlite settings for the item catalog.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Animation   bool
	AnimationMs int `mapstructure:"animation_ms"`
	FPS         int
}

// ProfileConfig feeds the profile destination on the main tab.
type ProfileConfig struct {
	Name  string
	Email string
}

// TransitionDuration returns the configured animation length.
func (u UIConfig) TransitionDuration() time.Duration {
	if u.AnimationMs <= 0 {
		return 0
	}
	return time.Duration(u.AnimationMs) * time.Millisecond
}

// Load reads configuration from file and env. Env var overrides use prefix WAYPOINT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "waypoint", "catalog.db"))
	v.SetDefault("ui.animation", true)
	v.SetDefault("ui.animation_ms", 300)
	v.SetDefault("ui.fps", 30)
	v.SetDefault("profile.name", "Demo User")
	v.SetDefault("profile.email", "demo@example.com")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("WAYPOINT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "waypoint"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WAYPOINT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the settings destination to persist the animation toggle.
func Save(cfg Config) error {
	path := os.Getenv("WAYPOINT_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "waypoint", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.animation", cfg.UI.Animation)
	v.Set("ui.animation_ms", cfg.UI.AnimationMs)
	v.Set("ui.fps", cfg.UI.FPS)
	v.Set("profile.name", cfg.Profile.Name)
	v.Set("profile.email", cfg.Profile.Email)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
