package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.SessionBackend != "redis" {
		t.Errorf("SessionBackend = %q, want redis", cfg.SessionBackend)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v, want 24h", cfg.SessionTTL)
	}
}

func TestLoadSessionTTL(t *testing.T) {
	t.Setenv("SESSION_TTL", "30m")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v, want 30m", cfg.SessionTTL)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("malformed ttl", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "soon")
		if _, err := Load(); err == nil {
			t.Error("Load() accepted a malformed SESSION_TTL")
		}
	})

	t.Run("negative ttl", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "-1h")
		if _, err := Load(); err == nil {
			t.Error("Load() accepted a negative SESSION_TTL")
		}
	})

	t.Run("unknown session backend", func(t *testing.T) {
		t.Setenv("SESSION_BACKEND", "cookie-jar")
		if _, err := Load(); err == nil {
			t.Error("Load() accepted an unknown SESSION_BACKEND")
		}
	})
}
