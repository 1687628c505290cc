package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Redis     RedisConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
	Checkout  CheckoutConfig
	Shipping  ShippingConfig
	Notify    NotifyConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Checkout.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Shipping.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"STOREFRONT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type HTTPConfig struct {
	ReadTimeout     time.Duration `envconfig:"STOREFRONT_HTTP_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"STOREFRONT_HTTP_WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"STOREFRONT_HTTP_SHUTDOWN_TIMEOUT" default:"15s"`
	CORSOrigins     []string      `envconfig:"STOREFRONT_CORS_ORIGINS" default:"http://localhost:3000"`
}

// RedisConfig is optional; when neither URL nor address is set the service
// runs without idempotency records or rate limits.
type RedisConfig struct {
	URL          string        `envconfig:"STOREFRONT_REDIS_URL"`
	Address      string        `envconfig:"STOREFRONT_REDIS_ADDR"`
	Password     string        `envconfig:"STOREFRONT_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOREFRONT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOREFRONT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOREFRONT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOREFRONT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type SessionConfig struct {
	CookieName    string        `envconfig:"STOREFRONT_SESSION_COOKIE" default:"storefront_session"`
	IdleTTL       time.Duration `envconfig:"STOREFRONT_SESSION_IDLE_TTL" default:"12h"`
	SweepInterval time.Duration `envconfig:"STOREFRONT_SESSION_SWEEP_INTERVAL" default:"10m"`
	SecureCookie  bool          `envconfig:"STOREFRONT_SESSION_SECURE_COOKIE" default:"false"`
}

type RateLimitConfig struct {
	AddItemWindow time.Duration `envconfig:"STOREFRONT_RATE_LIMIT_ADD_ITEM_WINDOW" default:"1m"`
	AddItemLimit  int           `envconfig:"STOREFRONT_RATE_LIMIT_ADD_ITEM_LIMIT" default:"120"`
}

type CheckoutConfig struct {
	ContactEndpoint string `envconfig:"STOREFRONT_CHECKOUT_CONTACT_ENDPOINT" default:"https://wa.me/6282359486948"`
	ShopName        string `envconfig:"STOREFRONT_CHECKOUT_SHOP_NAME" default:"Tenun Pringgasela"`
	LocalLabel      string `envconfig:"STOREFRONT_CHECKOUT_LOCAL_LABEL" default:"Dalam Daerah ( Lombok )"`
	RegularLabel    string `envconfig:"STOREFRONT_CHECKOUT_REGULAR_LABEL" default:"Reguler"`
	FastLabel       string `envconfig:"STOREFRONT_CHECKOUT_FAST_LABEL" default:"Cepat"`
	CargoLabel      string `envconfig:"STOREFRONT_CHECKOUT_CARGO_LABEL" default:"Kargo"`
}

func (c CheckoutConfig) validate() error {
	u, err := url.Parse(c.ContactEndpoint)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", EnvCheckoutContactEndpoint, err)
	}
	if u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute https url", EnvCheckoutContactEndpoint)
	}
	if u.RawQuery != "" {
		return fmt.Errorf("%s must not carry a query string", EnvCheckoutContactEndpoint)
	}
	return nil
}

// ShippingConfig holds the fixed interlocal tier costs in whole rupiah.
type ShippingConfig struct {
	RegularCost int64 `envconfig:"STOREFRONT_SHIPPING_REGULAR_COST" default:"25000"`
	FastCost    int64 `envconfig:"STOREFRONT_SHIPPING_FAST_COST" default:"50000"`
	CargoCost   int64 `envconfig:"STOREFRONT_SHIPPING_CARGO_COST" default:"100000"`
}

func (s ShippingConfig) validate() error {
	costs := []struct {
		env  string
		cost int64
	}{
		{EnvShippingRegularCost, s.RegularCost},
		{EnvShippingFastCost, s.FastCost},
		{EnvShippingCargoCost, s.CargoCost},
	}
	for _, c := range costs {
		if c.cost < 0 {
			return fmt.Errorf("%s must be non-negative", c.env)
		}
	}
	return nil
}

type NotifyConfig struct {
	ToastTTL time.Duration `envconfig:"STOREFRONT_NOTIFY_TOAST_TTL" default:"3s"`
}
