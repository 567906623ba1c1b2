package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config holds the configuration for the Genvault server and its dependencies.
type Config struct {
	// Listen is the address the Genvault server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// LogLevel is the log level for the server (debug, info, warn, error).
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	// SecretKey is the key used to sign bearer tokens.
	SecretKey string `yaml:"secret_key" mapstructure:"secret_key"`
	// SessionKey is the key used to encrypt session data.
	SessionKey string `yaml:"session_key" mapstructure:"session_key"`
	// SessionMaxAge is the maximum age of a session in seconds.
	SessionMaxAge int `yaml:"session_max_age" mapstructure:"session_max_age"`
	// StaticDir is the directory containing the prebuilt client bundle.
	StaticDir string `yaml:"static_dir" mapstructure:"static_dir"`
	// Database holds the database configuration.
	Database *DatabaseConfig `yaml:"database" mapstructure:"database"`
	// OpenAI holds the configuration for the upstream text-generation service.
	OpenAI *OpenAIConfig `yaml:"openai" mapstructure:"openai"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	// Path is the path to the sqlite database file.
	Path string `yaml:"path" mapstructure:"path"`
}

// OpenAIConfig holds the configuration for the upstream text-generation service.
type OpenAIConfig struct {
	// APIKey is the API key for the text-generation service.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	// BaseURL overrides the default API endpoint. Mainly useful for
	// proxies and tests.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// Model is the model identifier used for every completion request.
	Model string `yaml:"model" mapstructure:"model"`
}

// Load reads the configuration from the specified path and returns a Config struct.
// If path is empty, it will use default search paths for config files.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("GENVAULT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.genvault")
		v.AddConfigPath("/etc/genvault")
	}

	if err := v.ReadInConfig(); err != nil {
		// If no config file is found, use defaults and env vars only.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// setDefaults sets default values for the configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "0.0.0.0:8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("session_max_age", 86400) // 24 hours
	v.SetDefault("static_dir", "./client/static")

	v.SetDefault("database.path", "./data/genvault.db")

	v.SetDefault("openai.model", "gpt-3.5-turbo")
	v.SetDefault("openai.base_url", "")
}

// validateConfig validates the configuration.
func validateConfig(c *Config) error {
	if c == nil {
		return fmt.Errorf("missing genvault config")
	}
	if c.Listen == "" {
		return fmt.Errorf("listen address is required")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret key is required")
	}
	if c.SessionKey == "" {
		return fmt.Errorf("session key is required")
	}
	if c.Database == nil || c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}
	if c.OpenAI == nil || c.OpenAI.APIKey == "" {
		return fmt.Errorf("openai API key is required")
	}
	if c.OpenAI.Model == "" {
		return fmt.Errorf("openai model is required")
	}
	return nil
}
