package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Env is the runtime configuration. Values are layered: defaults, then the
// optional YAML file, then environment variables.
type Env struct {
	AppAddr string `yaml:"app_addr" env:"APP_ADDR"`
	GinMode string `yaml:"gin_mode" env:"GIN_MODE"`

	LLMProvider     string        `yaml:"llm_provider"     env:"LLM_PROVIDER"`
	GeminiAPIKey    string        `yaml:"gemini_api_key"   env:"GEMINI_API_KEY"`
	GeminiModel     string        `yaml:"gemini_model"     env:"GEMINI_MODEL"`
	OpenAIAPIKey    string        `yaml:"openai_api_key"   env:"OPENAI_API_KEY"`
	OpenAIModel     string        `yaml:"openai_model"     env:"OPENAI_MODEL"`
	OpenAIBaseURL   string        `yaml:"openai_base_url"  env:"OPENAI_BASE_URL"`
	GenerateTimeout time.Duration `yaml:"generate_timeout" env:"GENERATE_TIMEOUT"`
	ListModels      bool          `yaml:"list_models"      env:"LIST_MODELS_ON_START"`

	CORSAllowedOrigins []string `yaml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	BrandTitle         string   `yaml:"brand_title"          env:"BRAND_TITLE"`

	HTTPReadTimeout  time.Duration `yaml:"http_read_timeout"  env:"HTTP_READ_TIMEOUT"`
	HTTPWriteTimeout time.Duration `yaml:"http_write_timeout" env:"HTTP_WRITE_TIMEOUT"`
}

// Defaults returns the built-in configuration.
func Defaults() Env {
	return Env{
		AppAddr:          ":5000",
		LLMProvider:      "gemini",
		GeminiModel:      "gemini-2.5-flash",
		OpenAIModel:      "gpt-4o-mini",
		BrandTitle:       "Muzammils Travel Plan AI",
		HTTPReadTimeout:  20 * time.Second,
		HTTPWriteTimeout: 180 * time.Second,
	}
}

// LoadEnv reads .env (when present), the YAML file at path (when non-empty)
// and the process environment.
func LoadEnv(path string) (Env, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Env{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Defaults()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Env{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Env{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse environment: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Env{}, err
	}
	return cfg, nil
}

func (e *Env) normalize() {
	e.AppAddr = strings.TrimSpace(e.AppAddr)
	e.GinMode = strings.TrimSpace(e.GinMode)
	e.LLMProvider = strings.ToLower(strings.TrimSpace(e.LLMProvider))
	e.GeminiAPIKey = strings.TrimSpace(e.GeminiAPIKey)
	e.OpenAIAPIKey = strings.TrimSpace(e.OpenAIAPIKey)

	origins := e.CORSAllowedOrigins[:0]
	for _, o := range e.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	e.CORSAllowedOrigins = origins
}

// Validate checks that the selected provider has what it needs to start.
func (e Env) Validate() error {
	if e.AppAddr == "" {
		return errors.New("APP_ADDR must not be empty")
	}
	switch e.LLMProvider {
	case "gemini":
		if e.GeminiAPIKey == "" {
			return errors.New("GEMINI_API_KEY is required for llm provider gemini")
		}
	case "openai":
		if e.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY is required for llm provider openai")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", e.LLMProvider)
	}
	if e.GenerateTimeout < 0 {
		return errors.New("GENERATE_TIMEOUT must not be negative")
	}
	return nil
}

// APIKey returns the key of the selected provider.
func (e Env) APIKey() string {
	if e.LLMProvider == "openai" {
		return e.OpenAIAPIKey
	}
	return e.GeminiAPIKey
}

// Model returns the model of the selected provider.
func (e Env) Model() string {
	if e.LLMProvider == "openai" {
		return e.OpenAIModel
	}
	return e.GeminiModel
}
