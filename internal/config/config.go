// Package config loads application settings from an optional .env file,
// an optional config file and PEREKLADACH_* environment variables, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "PEREKLADACH"

// Services lists the backends the application knows how to build.
var Services = []string{"googlefree", "google", "mymemory", "systran", "openrouter", "ollama"}

type Config struct {
	Service    string `mapstructure:"service"`
	LogLevel   string `mapstructure:"log_level"`
	LogFormat  string `mapstructure:"log_format"`
	UILocale   string `mapstructure:"ui_locale"`
	SourceLang string `mapstructure:"source_lang"`
	TargetLang string `mapstructure:"target_lang"`

	Google     GoogleConfig     `mapstructure:"google"`
	MyMemory   MyMemoryConfig   `mapstructure:"mymemory"`
	Systran    SystranConfig    `mapstructure:"systran"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
	Ollama     OllamaConfig     `mapstructure:"ollama"`
}

type GoogleConfig struct {
	Credentials string `mapstructure:"credentials"`
}

type MyMemoryConfig struct {
	Email string `mapstructure:"email"`
}

type SystranConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type OpenRouterConfig struct {
	APIKey  string   `mapstructure:"api_key"`
	BaseURL string   `mapstructure:"base_url"`
	Models  []string `mapstructure:"models"`
}

type OllamaConfig struct {
	URL    string   `mapstructure:"url"`
	Models []string `mapstructure:"models"`
}

// New returns a viper instance with defaults and environment binding set up.
// Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("service", "googlefree")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("ui_locale", "en")
	v.SetDefault("source_lang", "")
	v.SetDefault("target_lang", "")
	v.SetDefault("google.credentials", "")
	v.SetDefault("mymemory.email", "")
	v.SetDefault("systran.api_key", "")
	v.SetDefault("openrouter.api_key", "")
	v.SetDefault("openrouter.base_url", "")
	v.SetDefault("openrouter.models", []string{})
	v.SetDefault("ollama.url", "http://localhost:11434")
	v.SetDefault("ollama.models", []string{})

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads .env (if present) and the config file, then decodes and
// validates the result. An empty configFile searches for perekladach.* in
// the working directory; a missing file there is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	// .env is optional when the variables come from the real environment.
	_ = godotenv.Load()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("perekladach")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	c.Service = strings.ToLower(strings.TrimSpace(c.Service))

	known := false
	for _, name := range Services {
		if c.Service == name {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("config: unknown service %q (available: %s)", c.Service, strings.Join(Services, ", "))
	}

	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("config: log_format must be \"console\" or \"json\", got %q", c.LogFormat)
	}

	return nil
}
