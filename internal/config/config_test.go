package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Safety.CacheCapacity != 500 {
		t.Errorf("CacheCapacity = %d, want 500", cfg.Safety.CacheCapacity)
	}
	if cfg.Limits.MaxCoordinate != 10000 {
		t.Errorf("MaxCoordinate = %d, want 10000", cfg.Limits.MaxCoordinate)
	}
	if cfg.Limits.MaxScrollAmount != 100 {
		t.Errorf("MaxScrollAmount = %d, want 100", cfg.Limits.MaxScrollAmount)
	}
	if cfg.Limits.MaxWaitSeconds != 60 {
		t.Errorf("MaxWaitSeconds = %v, want 60", cfg.Limits.MaxWaitSeconds)
	}
	if cfg.Limits.MaxTextLength != 10000 {
		t.Errorf("MaxTextLength = %d, want 10000", cfg.Limits.MaxTextLength)
	}
	if cfg.Telemetry.Service != "computer-use-guard" {
		t.Errorf("Service = %q", cfg.Telemetry.Service)
	}
}

func TestLoadOverridesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guard.yaml")
	data := `safety:
  cache_capacity: 64
  whitelist:
    - "echo ok"
  custom_patterns:
    - "(?i)internal-tool"
limits:
  max_coordinate: 3840
telemetry:
  enabled: true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Safety.CacheCapacity != 64 {
		t.Errorf("CacheCapacity = %d, want 64", cfg.Safety.CacheCapacity)
	}
	if len(cfg.Safety.Whitelist) != 1 || cfg.Safety.Whitelist[0] != "echo ok" {
		t.Errorf("Whitelist = %v", cfg.Safety.Whitelist)
	}
	if len(cfg.Safety.CustomPatterns) != 1 {
		t.Errorf("CustomPatterns = %v", cfg.Safety.CustomPatterns)
	}
	if cfg.Limits.MaxCoordinate != 3840 {
		t.Errorf("MaxCoordinate = %d, want 3840", cfg.Limits.MaxCoordinate)
	}
	if cfg.Limits.MaxScrollAmount != 100 {
		t.Errorf("MaxScrollAmount default not applied: %d", cfg.Limits.MaxScrollAmount)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("safety: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted malformed YAML")
	}
}
