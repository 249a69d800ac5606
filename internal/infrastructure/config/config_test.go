package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("unexpected default port: %s", cfg.Port)
	}
	if cfg.TokenTTL != 168*time.Hour {
		t.Fatalf("unexpected default token ttl: %v", cfg.TokenTTL)
	}
	if cfg.Mongo.Database != "client_portal" {
		t.Fatalf("unexpected default database: %s", cfg.Mongo.Database)
	}
	if cfg.S3.URLTTL != 60*time.Second {
		t.Fatalf("unexpected default url ttl: %v", cfg.S3.URLTTL)
	}
	if cfg.Production() {
		t.Fatalf("development must not report production")
	}
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}
}

func TestLoad_RejectsNonPositiveTokenTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Setenv("TOKEN_TTL", "-1h")
	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error for negative TOKEN_TTL")
	}

	t.Setenv("TOKEN_TTL", "0s")
	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error for zero TOKEN_TTL")
	}
}

func TestLoad_Production(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENV", "production")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !cfg.Production() {
		t.Fatalf("expected production mode")
	}
}
