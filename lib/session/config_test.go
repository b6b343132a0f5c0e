package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsStrict(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.AllowEmptyVersion || cfg.WideDataAlphabet || cfg.LenientVersionDirection {
		t.Errorf("DefaultConfig() = %+v, want all knobs off", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "config.toml")
	content := `
allow_empty_version = true
wide_data_alphabet = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if !cfg.AllowEmptyVersion {
		t.Error("AllowEmptyVersion = false, want true")
	}
	if !cfg.WideDataAlphabet {
		t.Error("WideDataAlphabet = false, want true")
	}

	// Keys absent from the file keep their strict defaults.
	if cfg.LenientVersionDirection {
		t.Error("LenientVersionDirection = true, want default false")
	}
}

func TestLoadConfigEmptyFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig(empty) = %+v, want defaults", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("LoadConfig(missing) error = nil, want error")
	}

	path := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(path, []byte("allow_empty_version = {"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig(broken) error = nil, want error")
	}
}
