package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}
	if cfg.App.Port != "8081" {
		t.Fatalf("unexpected port %q", cfg.App.Port)
	}
	if cfg.Redis.URL != "redis://localhost:6379/0" || !cfg.Redis.Enabled() {
		t.Fatalf("unexpected Redis config: %+v", cfg.Redis)
	}
	if got := cfg.Notify.ToastTTL; got != 3*time.Second {
		t.Fatalf("expected toast ttl 3s, got %v", got)
	}
	if cfg.Checkout.ContactEndpoint != "https://wa.me/6282359486948" {
		t.Fatalf("unexpected contact endpoint %q", cfg.Checkout.ContactEndpoint)
	}
	if cfg.Shipping.RegularCost != 25000 || cfg.Shipping.FastCost != 50000 || cfg.Shipping.CargoCost != 100000 {
		t.Fatalf("unexpected shipping tiers: %+v", cfg.Shipping)
	}
	if len(cfg.HTTP.CORSOrigins) != 2 {
		t.Fatalf("expected 2 cors origins, got %v", cfg.HTTP.CORSOrigins)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RejectsInsecureContactEndpoint(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvCheckoutContactEndpoint, "http://wa.me/6281")

	if _, err := Load(); err == nil {
		t.Fatal("expected http contact endpoint to be rejected")
	}
}

func TestLoad_RejectsNegativeShippingCost(t *testing.T) {
	for _, key := range []string{EnvShippingRegularCost, EnvShippingFastCost, EnvShippingCargoCost} {
		setMinimalEnv(t)
		t.Setenv(key, "-1")

		_, err := Load()
		if err == nil {
			t.Fatalf("expected negative %s to be rejected", key)
		}
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("expected error to name %s, got %v", key, err)
		}
		t.Setenv(key, "0")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvShippingRegularCost, "20000")
	t.Setenv(EnvShippingFastCost, "40000")
	t.Setenv(EnvNotifyToastTTL, "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.App.LogLevel != "debug" {
		t.Fatalf("unexpected log level %q", cfg.App.LogLevel)
	}
	if cfg.Shipping.RegularCost != 20000 || cfg.Shipping.FastCost != 40000 {
		t.Fatalf("unexpected shipping tiers: %+v", cfg.Shipping)
	}
	if cfg.Notify.ToastTTL != 5*time.Second {
		t.Fatalf("expected toast ttl 5s, got %v", cfg.Notify.ToastTTL)
	}
}

func TestLoad_RedisOptional(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvRedisURL); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvRedisURL, err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Redis.Enabled() {
		t.Fatalf("redis should be disabled without url or address")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "8081")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	t.Setenv(EnvCORSOrigins, "http://localhost:3000,https://tenunpringgasela.id")
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
	if prodConfig.IsDev() {
		t.Fatalf("expected IsDev false for %q", prodConfig.Env)
	}
}
