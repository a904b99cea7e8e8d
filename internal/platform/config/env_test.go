package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"KITTY_REGISTRY_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("KITTY_REGISTRY_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage != StorageMemory {
		t.Fatalf("expected memory storage, got %q", cfg.Storage)
	}
	if cfg.CreatePrice != 1000 || cfg.MaxOwned != 8 {
		t.Fatalf("unexpected kitty defaults: %+v", cfg)
	}
	if cfg.MaxKittyID != 4294967295 {
		t.Fatalf("expected max id to default to uint32 max, got %d", cfg.MaxKittyID)
	}
}

func TestLoadNormalizesStorageDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", " Badger ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage != StorageBadger {
		t.Fatalf("expected badger, got %q", cfg.Storage)
	}
}
