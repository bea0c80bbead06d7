package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/manav03panchal/arbeitszeit/internal/errors"
	"github.com/manav03panchal/arbeitszeit/internal/model"
)

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	if cfg.Thresholds.MinimumWork != 7*time.Hour+36*time.Minute {
		t.Errorf("expected Thresholds.MinimumWork = 7h36m, got %v", cfg.Thresholds.MinimumWork)
	}
	if cfg.Thresholds.MaximumWork != 9*time.Hour {
		t.Errorf("expected Thresholds.MaximumWork = 9h, got %v", cfg.Thresholds.MaximumWork)
	}
	if cfg.Thresholds.Break != 30*time.Minute {
		t.Errorf("expected Thresholds.Break = 30m, got %v", cfg.Thresholds.Break)
	}
	if cfg.Display.TickInterval != time.Second {
		t.Errorf("expected Display.TickInterval = 1s, got %v", cfg.Display.TickInterval)
	}
	if cfg.Display.TransitionDelay != 500*time.Millisecond {
		t.Errorf("expected Display.TransitionDelay = 500ms, got %v", cfg.Display.TransitionDelay)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestThresholdPolicies(t *testing.T) {
	policies := DefaultRuntimeConfig().ThresholdPolicies()
	if len(policies) != 2 {
		t.Fatalf("expected 2 policies, got %d", len(policies))
	}
	if policies[0].Kind != model.ThresholdMinimum || policies[0].Offset() != 486*time.Minute {
		t.Errorf("unexpected minimum policy %+v", policies[0])
	}
	if policies[1].Kind != model.ThresholdMaximum || policies[1].Offset() != 570*time.Minute {
		t.Errorf("unexpected maximum policy %+v", policies[1])
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RuntimeConfig)
	}{
		{"zero_minimum", func(c *RuntimeConfig) { c.Thresholds.MinimumWork = 0 }},
		{"negative_break", func(c *RuntimeConfig) { c.Thresholds.Break = -time.Minute }},
		{"zero_tick", func(c *RuntimeConfig) { c.Display.TickInterval = 0 }},
		{"max_below_min", func(c *RuntimeConfig) { c.Thresholds.MaximumWork = time.Hour }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRuntimeConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	t.Run("zero_break_allowed", func(t *testing.T) {
		cfg := DefaultRuntimeConfig()
		cfg.Thresholds.Break = 0
		if err := cfg.Validate(); err != nil {
			t.Errorf("zero break should be allowed, got %v", err)
		}
	})
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should not fail, got %v", err)
	}
	if cfg.Thresholds.MaximumWork != 9*time.Hour {
		t.Errorf("expected defaults, got %v", cfg.Thresholds.MaximumWork)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `thresholds:
  minimum_work: 8h
  break: 45m
display:
  tick_interval: 2s
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Thresholds.MinimumWork != 8*time.Hour {
		t.Errorf("expected MinimumWork = 8h, got %v", cfg.Thresholds.MinimumWork)
	}
	if cfg.Thresholds.Break != 45*time.Minute {
		t.Errorf("expected Break = 45m, got %v", cfg.Thresholds.Break)
	}
	if cfg.Thresholds.MaximumWork != 9*time.Hour {
		t.Errorf("expected MaximumWork to keep default, got %v", cfg.Thresholds.MaximumWork)
	}
	if cfg.Display.TickInterval != 2*time.Second {
		t.Errorf("expected TickInterval = 2s, got %v", cfg.Display.TickInterval)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	dir := t.TempDir()

	t.Run("bad_duration", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		os.WriteFile(path, []byte("thresholds:\n  break: soon\n"), 0o644)

		_, err := Load(path)
		if !errors.Is(err, errors.ErrInvalidDuration) {
			t.Errorf("expected ErrInvalidDuration, got %v", err)
		}
	})

	t.Run("bad_yaml", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		os.WriteFile(path, []byte("thresholds: [unclosed\n"), 0o644)

		_, err := Load(path)
		if !errors.IsUserError(err) {
			t.Errorf("expected a user error, got %v", err)
		}
	})
}

func TestConfigLoadFromEnv(t *testing.T) {
	t.Setenv("ARBEITSZEIT_MAX_WORK", "10h")
	t.Setenv("ARBEITSZEIT_BREAK", "15m")
	t.Setenv("ARBEITSZEIT_TRANSITION_DELAY", "0s")

	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()

	if cfg.Thresholds.MaximumWork != 10*time.Hour {
		t.Errorf("expected MaximumWork = 10h from env, got %v", cfg.Thresholds.MaximumWork)
	}
	if cfg.Thresholds.Break != 15*time.Minute {
		t.Errorf("expected Break = 15m from env, got %v", cfg.Thresholds.Break)
	}
	if cfg.Display.TransitionDelay != 0 {
		t.Errorf("expected TransitionDelay = 0 from env, got %v", cfg.Display.TransitionDelay)
	}
}

func TestConfigLoadFromEnvInvalidValues(t *testing.T) {
	t.Setenv("ARBEITSZEIT_MIN_WORK", "invalid")
	t.Setenv("ARBEITSZEIT_TICK_INTERVAL", "not-a-duration")

	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()

	if cfg.Thresholds.MinimumWork != 7*time.Hour+36*time.Minute {
		t.Errorf("expected MinimumWork default, got %v", cfg.Thresholds.MinimumWork)
	}
	if cfg.Display.TickInterval != time.Second {
		t.Errorf("expected TickInterval default, got %v", cfg.Display.TickInterval)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("thresholds:\n  maximum_work: 9h30m\n"), 0o644)
	t.Setenv("ARBEITSZEIT_MAX_WORK", "10h")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Thresholds.MaximumWork != 10*time.Hour {
		t.Errorf("expected env to win, got %v", cfg.Thresholds.MaximumWork)
	}
}

func TestDefaultPath(t *testing.T) {
	if !strings.HasSuffix(DefaultPath(), filepath.Join(AppName, "config.yaml")) {
		t.Errorf("unexpected default path %s", DefaultPath())
	}

	t.Setenv("ARBEITSZEIT_CONFIG", "/tmp/custom.yaml")
	if DefaultPath() != "/tmp/custom.yaml" {
		t.Errorf("expected env override, got %s", DefaultPath())
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	cfg.Thresholds.Break = 20 * time.Minute

	data, err := cfg.YAML()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "break: 20m0s") {
		t.Errorf("expected break in output, got:\n%s", data)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, data, 0o644)
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Thresholds.Break != 20*time.Minute {
		t.Errorf("expected Break = 20m after reload, got %v", loaded.Thresholds.Break)
	}
}
