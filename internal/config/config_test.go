package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestDecodeDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := decode(v)
	if err != nil {
		t.Fatalf("decode defaults failed: %v", err)
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Fatalf("unexpected addr: %s", cfg.Server.Addr())
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("unexpected driver: %s", cfg.Database.Driver)
	}
	if cfg.Order.EstimatedDeliveryDays != 5 {
		t.Fatalf("unexpected estimated delivery days: %d", cfg.Order.EstimatedDeliveryDays)
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Fatalf("unexpected metrics path: %s", cfg.Metrics.Path)
	}
}

func TestDecodeFromYAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := []byte("server:\n  port: \"9090\"\norder:\n  estimated_delivery_days: 3\nredis:\n  enabled: true\n  prefix: shop\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), content, 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(filepath.Join(dir, "config.yml"))
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("read config failed: %v", err)
	}
	cfg, err := decode(v)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("port want 9090 got %s", cfg.Server.Port)
	}
	if cfg.Order.EstimatedDeliveryDays != 3 {
		t.Fatalf("estimated delivery days want 3 got %d", cfg.Order.EstimatedDeliveryDays)
	}
	if !cfg.Redis.Enabled || cfg.Redis.Prefix != "shop" {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Fatalf("default host should survive, got %s", cfg.Server.Host)
	}
}
