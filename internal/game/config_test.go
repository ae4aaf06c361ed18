package game

import (
	"context"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Width != 50 || cfg.Height != 50 {
		t.Errorf("size = %dx%d, want 50x50", cfg.Width, cfg.Height)
	}
	if cfg.PlayerFOV != 6 || cfg.EnemyFOV != 4 {
		t.Errorf("FOV = %d/%d, want 6/4", cfg.PlayerFOV, cfg.EnemyFOV)
	}
	if cfg.TickRate != time.Second/60 {
		t.Errorf("TickRate = %v", cfg.TickRate)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("DUNGEN_SEED", "1234")
	t.Setenv("DUNGEN_WIDTH", "60")
	t.Setenv("DUNGEN_HEIGHT", "40")
	t.Setenv("DUNGEN_LOADING_TICKS", "0")
	t.Setenv("DUNGEN_LOCALE_DIR", "/tmp/locales")
	t.Setenv("DUNGEN_LANG", "es_ES")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error = %v", err)
	}
	if cfg.Seed != 1234 || cfg.Width != 60 || cfg.Height != 40 || cfg.LoadingTicks != 0 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.LocaleDir != "/tmp/locales" || cfg.Language != "es_ES" {
		t.Errorf("locale = %q/%q", cfg.LocaleDir, cfg.Language)
	}
}

func TestConfigFromEnvErrors(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"DUNGEN_SEED", "abc"},
		{"DUNGEN_WIDTH", "wide"},
		{"DUNGEN_HEIGHT", "8"},
		{"DUNGEN_LOADING_TICKS", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := ConfigFromEnv(); err == nil {
				t.Errorf("%s=%q should fail", tt.key, tt.value)
			}
		})
	}
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 4
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if _, err := NewSession(ctx, cfg); err == nil {
		t.Error("NewSession() should reject a tiny map")
	}
}
