package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

const (
	DefaultBaseURL        = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultModel          = "gemini-2.0-flash"
	DefaultTargetLang     = "en"
	DefaultPort           = "8080"
	DefaultRequestTimeout = 60 * time.Second
)

// ErrMissingAPIKey is returned by Load when GEMINI_API_KEY is unset or blank.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

var validate = validator.New()

// Config is the run configuration. It is built once at startup and never mutated.
type Config struct {
	APIKey         string        `validate:"required"`
	BaseURL        string        `validate:"required,url"`
	Model          string        `validate:"required"`
	TargetLang     language.Tag  `validate:"-"`
	RequestTimeout time.Duration `validate:"gt=0"`
	Port           string        `validate:"required,numeric"`
	FrontendURL    string
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		return Config{}, ErrMissingAPIKey
	}

	tag, err := language.Parse(getenv("TARGET_LANG", DefaultTargetLang))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TARGET_LANG: %w", err)
	}

	timeout := DefaultRequestTimeout
	if v := strings.TrimSpace(os.Getenv("REQUEST_TIMEOUT")); v != "" {
		timeout, err = time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
		}
	}

	cfg := Config{
		APIKey:         apiKey,
		BaseURL:        strings.TrimRight(getenv("GEMINI_BASE_URL", DefaultBaseURL), "/"),
		Model:          getenv("GEMINI_MODEL", DefaultModel),
		TargetLang:     tag,
		RequestTimeout: timeout,
		Port:           getenv("PORT", DefaultPort),
		FrontendURL:    getenv("FRONTEND_URL", "*"),
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
