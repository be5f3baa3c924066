package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
)

type Config struct {
	Port      string          `mapstructure:"port"`
	Provider  string          `mapstructure:"provider"`
	Relay     RelayConfig     `mapstructure:"relay"`
	Anthropic AnthropicConfig `mapstructure:"anthropic"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Server    ServerConfig    `mapstructure:"server"`
	Cors      CorsConfig      `mapstructure:"cors"`
	Log       LogConfig       `mapstructure:"log"`
}

type RelayConfig struct {
	MaxTokens           int `mapstructure:"max_tokens"`
	DiagnosticMaxTokens int `mapstructure:"diagnostic_max_tokens"`
}

type AnthropicConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type ServerConfig struct {
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type CorsConfig struct {
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("provider", ProviderAnthropic)
	v.SetDefault("relay.max_tokens", 1024)
	v.SetDefault("relay.diagnostic_max_tokens", 100)
	v.SetDefault("anthropic.model", "claude-3-sonnet-20240229")
	v.SetDefault("anthropic.base_url", "")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("gemini.model", "gemini-1.5-flash")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 90*time.Second)
	v.SetDefault("server.request_timeout", 60*time.Second)
	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// LoadConfig reads the YAML file at configPath when it exists, then layers
// environment variables on top. An empty or missing path yields defaults.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Nested keys are reachable as MOTIVATE_RELAY_MAX_TOKENS etc.
	v.SetEnvPrefix("motivate")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Provider credentials keep their conventional unprefixed names.
	v.BindEnv("anthropic.api_key", "ANTHROPIC_API_KEY")
	v.BindEnv("openai.api_key", "OPENAI_API_KEY")
	v.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	v.BindEnv("port", "MOTIVATE_PORT", "PORT")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderAnthropic, ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("unknown provider %q: must be anthropic, openai or gemini", c.Provider)
	}
	if c.Relay.MaxTokens <= 0 {
		return fmt.Errorf("relay.max_tokens must be positive, got %d", c.Relay.MaxTokens)
	}
	if c.Relay.DiagnosticMaxTokens <= 0 {
		return fmt.Errorf("relay.diagnostic_max_tokens must be positive, got %d", c.Relay.DiagnosticMaxTokens)
	}
	return nil
}

// APIKey returns the credential of the selected provider.
func (c *Config) APIKey() string {
	switch c.Provider {
	case ProviderOpenAI:
		return c.OpenAI.APIKey
	case ProviderGemini:
		return c.Gemini.APIKey
	default:
		return c.Anthropic.APIKey
	}
}

// Model returns the model name of the selected provider.
func (c *Config) Model() string {
	switch c.Provider {
	case ProviderOpenAI:
		return c.OpenAI.Model
	case ProviderGemini:
		return c.Gemini.Model
	default:
		return c.Anthropic.Model
	}
}
