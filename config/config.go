package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	NLUProviderWit    = "wit"
	NLUProviderOpenAI = "openai"

	StateStoreMemory = "memory"
	StateStoreRedis  = "redis"
)

type Config struct {
	Port string `yaml:"port" envconfig:"PORT"`

	AppSecret       string `yaml:"app_secret" envconfig:"MESSENGER_APP_SECRET"`
	ValidationToken string `yaml:"validation_token" envconfig:"MESSENGER_VALIDATION_TOKEN"`
	PageAccessToken string `yaml:"page_access_token" envconfig:"MESSENGER_PAGE_ACCESS_TOKEN"`
	GraphAPIURL     string `yaml:"graph_api_url" envconfig:"GRAPH_API_URL"`
	ServerURL       string `yaml:"server_url" envconfig:"SERVER_URL"`

	NLUProvider   string `yaml:"nlu_provider" envconfig:"NLU_PROVIDER"`
	WitToken      string `yaml:"wit_access_token" envconfig:"WIT_TOKEN"`
	WitURL        string `yaml:"wit_url" envconfig:"WIT_URL"`
	WitAPIVersion string `yaml:"wit_api_version" envconfig:"WIT_API_VERSION"`
	OpenAIKey     string `yaml:"openai_api_key" envconfig:"OPENAI_API_KEY"`
	OpenAIModel   string `yaml:"openai_model" envconfig:"OPENAI_MODEL"`

	ProductURL  string `yaml:"product_url" envconfig:"PRODUCT_URL"`
	PhoneURL    string `yaml:"phone_url" envconfig:"PHONE_URL"`
	PaymentURL  string `yaml:"payment_url" envconfig:"PAYMENT_URL"`
	SMSURL      string `yaml:"sms_url" envconfig:"SMS_URL"`
	APIClientID string `yaml:"api_client_id" envconfig:"API_CLIENT_ID"`

	PhoneRegion string `yaml:"phone_region" envconfig:"PHONE_REGION"`
	Currency    string `yaml:"currency" envconfig:"CURRENCY"`

	StateStore    string        `yaml:"state_store" envconfig:"STATE_STORE"`
	StateTTL      time.Duration `yaml:"state_ttl" envconfig:"STATE_TTL"`
	RedisAddr     string        `yaml:"redis_addr" envconfig:"REDIS_ADDR"`
	RedisPassword string        `yaml:"redis_password" envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `yaml:"redis_db" envconfig:"REDIS_DB"`

	CallTimeout time.Duration `yaml:"call_timeout" envconfig:"CALL_TIMEOUT"`
	LogLevel    string        `yaml:"log_level" envconfig:"LOG_LEVEL"`
}

// Load reads an optional .env file, then the YAML file at path (skipped when
// it does not exist), then the process environment. Environment values win
// over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse YAML config: %w", err)
			}
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.Port, "5000")
	setDefault(&c.GraphAPIURL, "https://graph.facebook.com/v2.9")
	setDefault(&c.NLUProvider, NLUProviderWit)
	setDefault(&c.WitURL, "https://api.wit.ai")
	setDefault(&c.WitAPIVersion, "20170307")
	setDefault(&c.OpenAIModel, "gpt-4.1-mini")
	setDefault(&c.PhoneRegion, "BR")
	setDefault(&c.Currency, "BRL")
	setDefault(&c.StateStore, StateStoreMemory)
	setDefault(&c.RedisAddr, "localhost:6379")
	setDefault(&c.LogLevel, "info")

	c.NLUProvider = strings.ToLower(strings.TrimSpace(c.NLUProvider))
	c.StateStore = strings.ToLower(strings.TrimSpace(c.StateStore))
	c.ServerURL = strings.TrimRight(c.ServerURL, "/")

	if c.StateTTL <= 0 {
		c.StateTTL = 30 * time.Minute
	}
	if c.CallTimeout <= 0 {
		c.CallTimeout = 10 * time.Second
	}
}

// Validate checks the values the intent-only flow cannot run without.
func (c *Config) Validate() error {
	var missing []string

	required := []struct {
		name  string
		value string
	}{
		{"MESSENGER_APP_SECRET", c.AppSecret},
		{"MESSENGER_VALIDATION_TOKEN", c.ValidationToken},
		{"MESSENGER_PAGE_ACCESS_TOKEN", c.PageAccessToken},
		{"SERVER_URL", c.ServerURL},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.name)
		}
	}

	switch c.NLUProvider {
	case NLUProviderWit:
		if c.WitToken == "" {
			missing = append(missing, "WIT_TOKEN")
		}
	case NLUProviderOpenAI:
		if c.OpenAIKey == "" {
			missing = append(missing, "OPENAI_API_KEY")
		}
	default:
		return fmt.Errorf("invalid NLU_PROVIDER %q; allowed: wit, openai", c.NLUProvider)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	switch c.StateStore {
	case StateStoreMemory, StateStoreRedis:
	default:
		return fmt.Errorf("invalid STATE_STORE %q; allowed: memory, redis", c.StateStore)
	}

	return nil
}

func setDefault(field *string, value string) {
	if strings.TrimSpace(*field) == "" {
		*field = value
	}
}
