package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected load to succeed: %v", err)
	}

	if cfg.AppEnv != "development" {
		t.Errorf("Expected default env development, got %s", cfg.AppEnv)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("Expected default log format json, got %s", cfg.LogFormat)
	}
	if cfg.SweepPoints != 50 {
		t.Errorf("Expected default sweep points 50, got %d", cfg.SweepPoints)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("Expected default shutdown timeout 10s, got %v", cfg.ShutdownTimeout)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SWEEP_POINTS", "25")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected load to succeed: %v", err)
	}

	if cfg.AppEnv != "production" {
		t.Errorf("Expected env production, got %s", cfg.AppEnv)
	}
	if cfg.HTTPAddr() != ":9090" {
		t.Errorf("Expected addr :9090, got %s", cfg.HTTPAddr())
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Errorf("Expected two trimmed origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.SweepPoints != 25 {
		t.Errorf("Expected sweep points 25, got %d", cfg.SweepPoints)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("Expected shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
	}
}

func TestLoad_InvalidSweepPoints(t *testing.T) {
	t.Setenv("SWEEP_POINTS", "1")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error for sweep points below 2, got none")
	}
}

func TestHTTPAddr(t *testing.T) {
	testCases := []struct {
		name string
		port string
		want string
	}{
		{"bare port", "8080", ":8080"},
		{"prefixed port", ":8081", ":8081"},
		{"empty port", "", ":8080"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{Port: tc.port}
			if got := cfg.HTTPAddr(); got != tc.want {
				t.Errorf("Expected addr %s, got %s", tc.want, got)
			}
		})
	}
}
