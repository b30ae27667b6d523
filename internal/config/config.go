package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings for the storefront web tier.
// Values are read from STORE_WEB_* environment variables; a local .env file
// is honored when present.
type Config struct {
	Env      string `envconfig:"ENV" default:"dev"`
	Addr     string `envconfig:"ADDR" default:":8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// APIBaseURL is the base URL of the remote store API that owns all
	// catalog, cart, and order state.
	APIBaseURL string        `envconfig:"API_BASE_URL" default:"https://acoustic-seahorse-440.convex.site/api/store/hair-palace"`
	APITimeout time.Duration `envconfig:"API_TIMEOUT" default:"10s"`

	TemplatesDir string `envconfig:"TEMPLATES_DIR" default:"templates"`
	PublicDir    string `envconfig:"PUBLIC_DIR" default:"public"`
	ContentDir   string `envconfig:"CONTENT_DIR" default:"content"`

	// SessionSigningKey signs the session cookie. Required in prod; an
	// ephemeral key is generated for other environments when unset.
	SessionSigningKey string `envconfig:"SESSION_SIGNING_KEY"`

	// CartIdleTTL bounds how long an idle per-session cart cache is kept
	// in memory before it is evicted and rebuilt from the API on demand.
	CartIdleTTL time.Duration `envconfig:"CART_IDLE_TTL" default:"30m"`

	DevMode bool `envconfig:"DEV" default:"false"`
}

// Load reads configuration from the environment (and .env when present).
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("STORE_WEB", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	base := strings.TrimSpace(c.APIBaseURL)
	if base == "" {
		return fmt.Errorf("config: STORE_WEB_API_BASE_URL is required")
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: STORE_WEB_API_BASE_URL %q is not an absolute URL", base)
	}
	if c.IsProd() && strings.TrimSpace(c.SessionSigningKey) == "" {
		return fmt.Errorf("config: STORE_WEB_SESSION_SIGNING_KEY is required in prod")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("config: STORE_WEB_API_TIMEOUT must be positive")
	}
	return nil
}

// IsProd reports whether the configured environment is production.
func (c Config) IsProd() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "prod")
}
