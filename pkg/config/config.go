package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/karthickk/welcome/pkg/sequencer"
	"github.com/karthickk/welcome/pkg/typewriter"
	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Splash   SplashConfig `mapstructure:"splash"`
	Site     SiteConfig   `mapstructure:"site"`
	LogLevel string       `mapstructure:"log_level"`
	LogFile  string       `mapstructure:"log_file"`
}

// SplashConfig holds the welcome screen timing and effects
type SplashConfig struct {
	SecondaryDelay time.Duration `mapstructure:"secondary_delay"`
	Duration       time.Duration `mapstructure:"duration"`
	ExitDelay      time.Duration `mapstructure:"exit_delay"`
	TypewriterTick time.Duration `mapstructure:"typewriter_tick"`
	FrameRate      time.Duration `mapstructure:"frame_rate"`
	Particles      int           `mapstructure:"particles"`
	Stars          int           `mapstructure:"stars"`
	Seed           uint64        `mapstructure:"seed"`
	SkipOnKeypress bool          `mapstructure:"skip_on_keypress"`
}

// SiteConfig holds what the site page shows once the splash is gone
type SiteConfig struct {
	Owner   string   `mapstructure:"owner"`
	Heading string   `mapstructure:"heading"`
	Title   string   `mapstructure:"title"`
	URL     string   `mapstructure:"url"`
	GitHub  string   `mapstructure:"github"`
	Links   []string `mapstructure:"links"`
}

var cfg *Config

// Load loads the configuration from file and environment variables
func Load() (*Config, error) {
	// Reset viper to ensure fresh load
	viper.Reset()

	viper.SetConfigName("welcome")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	homeDir := os.Getenv("HOME")
	if homeDir != "" {
		viper.AddConfigPath(filepath.Join(homeDir, ".config", "welcome"))
	}
	viper.AddConfigPath("/etc/welcome")

	setDefaults()

	viper.SetEnvPrefix("WELCOME")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is ok, defaults apply
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return cfg, nil
}

// LoadFile loads the configuration from an explicit file
func LoadFile(path string) (*Config, error) {
	viper.Reset()
	viper.SetConfigFile(path)
	setDefaults()

	viper.SetEnvPrefix("WELCOME")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return cfg, nil
}

// Reload rebuilds the configuration from viper's current state, picking up
// flags bound after Load
func Reload() (*Config, error) {
	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return cfg, nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		cfg, _ = Load()
	}
	return cfg
}

// Save saves the current configuration to file
func Save() error {
	if cfg == nil {
		return fmt.Errorf("no configuration to save")
	}

	if used := viper.ConfigFileUsed(); used != "" {
		return viper.WriteConfigAs(used)
	}

	configDir := filepath.Join(os.Getenv("HOME"), ".config", "welcome")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	configFile := filepath.Join(configDir, "welcome.yaml")
	return viper.WriteConfigAs(configFile)
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("splash.secondary_delay", sequencer.DefaultSecondaryDelay)
	viper.SetDefault("splash.duration", sequencer.DefaultLoadingDuration)
	viper.SetDefault("splash.exit_delay", sequencer.DefaultExitDelay)
	viper.SetDefault("splash.typewriter_tick", typewriter.DefaultTick)
	viper.SetDefault("splash.frame_rate", 50*time.Millisecond)
	viper.SetDefault("splash.particles", 20)
	viper.SetDefault("splash.stars", 50)
	viper.SetDefault("splash.seed", 0)
	viper.SetDefault("splash.skip_on_keypress", true)
	viper.SetDefault("site.owner", "ogijksn")
	viper.SetDefault("site.heading", "Welcome To My")
	viper.SetDefault("site.title", "Portfolio")
	viper.SetDefault("site.url", "www.ogijksn.my.id")
	viper.SetDefault("site.github", "github.com/ogijksn")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_file", "")
}

// Update updates a configuration value
func Update(key string, value interface{}) error {
	viper.Set(key, value)

	// Reload config
	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("error unmarshaling updated config: %w", err)
	}

	return Save()
}

// Timing converts the splash settings to sequencer timing
func (c *Config) Timing() sequencer.Timing {
	return sequencer.Timing{
		SecondaryDelay:  c.Splash.SecondaryDelay,
		LoadingDuration: c.Splash.Duration,
		ExitDelay:       c.Splash.ExitDelay,
	}
}

// Validate validates the current configuration
func (c *Config) Validate() error {
	if err := c.Timing().Validate(); err != nil {
		return err
	}

	if c.Splash.TypewriterTick <= 0 {
		return fmt.Errorf("typewriter tick must be positive")
	}

	if c.Splash.FrameRate <= 0 {
		return fmt.Errorf("frame rate must be positive")
	}

	if c.Splash.Particles < 0 || c.Splash.Stars < 0 {
		return fmt.Errorf("particle and star counts must not be negative")
	}

	if c.Site.URL == "" {
		return fmt.Errorf("site URL is required")
	}

	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	return nil
}
