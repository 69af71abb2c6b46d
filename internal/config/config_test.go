package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, name := range []string{"DRAFTLENS_ADDR", "DRAFTLENS_MODEL", "DRAFTLENS_WORKERS"} {
		t.Setenv(name, "")
	}
	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Fatalf("expected default model, got %q", cfg.Model)
	}
	if cfg.Workers != 0 {
		t.Fatalf("expected workers default 0, got %d", cfg.Workers)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DRAFTLENS_ADDR", ":9000")
	t.Setenv("DRAFTLENS_WORKERS", "4")
	cfg := Load()
	if cfg.Addr != ":9000" || cfg.Workers != 4 {
		t.Fatalf("expected env overrides, got %+v", cfg)
	}
}

func TestGetenvIntRejectsGarbage(t *testing.T) {
	t.Setenv("DRAFTLENS_WORKERS", "not-a-number")
	if got := getenvInt("DRAFTLENS_WORKERS", 2); got != 2 {
		t.Fatalf("expected fallback for garbage value, got %d", got)
	}
}
