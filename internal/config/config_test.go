package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GEMINI_MODEL_ID", "")
	t.Setenv("DESTINATION_POLICY", "")
	cfg := Load()
	if cfg.Port != "3000" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.GeminiModelID != "gemini-1.5-flash" {
		t.Fatalf("expected default gemini model, got %s", cfg.GeminiModelID)
	}
	if cfg.GenerationTimeout != 60*time.Second {
		t.Fatalf("expected default generation timeout, got %s", cfg.GenerationTimeout)
	}
	if cfg.ExportDir != "arquivos" {
		t.Fatalf("expected default export dir, got %s", cfg.ExportDir)
	}
	if cfg.DestinationPolicy != DestinationPolicyAllowlist {
		t.Fatalf("expected allowlist policy by default, got %s", cfg.DestinationPolicy)
	}
	if cfg.SessionBackend != SessionBackendMemory {
		t.Fatalf("expected memory session backend by default, got %s", cfg.SessionBackend)
	}
	if cfg.CORSAllowedOrigins != nil {
		t.Fatalf("expected no CORS origins by default, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GEMINI_KEY", "test-key")
	t.Setenv("GENERATION_TIMEOUT", "45s")
	t.Setenv("DESTINATION_POLICY", "OPEN")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.GeminiKey != "test-key" {
		t.Fatalf("expected gemini key override, got %s", cfg.GeminiKey)
	}
	if cfg.GenerationTimeout != 45*time.Second {
		t.Fatalf("expected generation timeout override, got %s", cfg.GenerationTimeout)
	}
	if cfg.DestinationPolicy != DestinationPolicyOpen {
		t.Fatalf("expected open policy, got %s", cfg.DestinationPolicy)
	}
	if cfg.SessionBackend != SessionBackendRedis {
		t.Fatalf("expected redis backend, got %s", cfg.SessionBackend)
	}
	if cfg.RedisAddr != "redis:6380" {
		t.Fatalf("expected redis addr override, got %s", cfg.RedisAddr)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Fatalf("expected session ttl override, got %s", cfg.SessionTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("expected CORS origins parsed, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestNormalizePolicyFallsBackToAllowlist(t *testing.T) {
	t.Setenv("DESTINATION_POLICY", "whatever")
	cfg := Load()
	if cfg.DestinationPolicy != DestinationPolicyAllowlist {
		t.Fatalf("unknown policy should fall back to allowlist, got %s", cfg.DestinationPolicy)
	}
}
