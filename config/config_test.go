package config

import (
	"context"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deskshell", "config.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Language != "en" || cfg.LogLevel != "info" || !cfg.RestoreWindow {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	key, err := hex.DecodeString(cfg.InstanceKey)
	if err != nil || len(key) != 32 {
		t.Errorf("instance key = %q, want 64 hex digits", cfg.InstanceKey)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("generated key was not saved: %v", err)
	}

	again, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.InstanceKey != cfg.InstanceKey {
		t.Error("instance key changed between loads")
	}
}

func TestLoadFromKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"language":"fr","instance_key":"abc"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Language != "fr" || cfg.InstanceKey != "abc" {
		t.Errorf("file values lost: %+v", cfg)
	}
	if cfg.LogLevel != "info" || !cfg.RestoreWindow {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadFromInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for invalid json")
	}
}

func TestSetLanguagePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := cfg.SetLanguage("fr"); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}

	reloaded, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Language != "fr" {
		t.Errorf("language = %q, want fr", reloaded.Language)
	}
}

func TestSaveWithoutPath(t *testing.T) {
	if err := Default().Save(); err == nil {
		t.Error("expected error saving a config without a path")
	}
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c *Config) { changes <- c })
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	cfg.Language = "fr"
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(filepath.Dir(path), "other.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case c := <-changes:
			if c.Language == "fr" {
				cancel()
				if err := <-done; err != nil {
					t.Errorf("Watch: %v", err)
				}
				return
			}
		case <-timeout:
			t.Fatal("no reload after the config changed")
		}
	}
}

func TestRecoverAtReplacesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected error for invalid json")
	}

	cfg := RecoverAt(path)
	if cfg.Path() != path {
		t.Errorf("path = %q, want %q", cfg.Path(), path)
	}
	if cfg.InstanceKey == "" {
		t.Error("no instance key generated")
	}
	if err := cfg.SetLanguage("fr"); err != nil {
		t.Fatalf("SetLanguage after recovery: %v", err)
	}

	reloaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("reload after recovery: %v", err)
	}
	if reloaded.Language != "fr" || reloaded.InstanceKey != cfg.InstanceKey {
		t.Errorf("reloaded %+v", reloaded)
	}
	if data, err := os.ReadFile(path + ".bak"); err != nil || string(data) != "{" {
		t.Errorf("backup = %q, %v", data, err)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadFrom(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "config.json" {
		t.Errorf("dir entries = %v", entries)
	}
}

func TestWatchCollapsesPartialWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if _, err := LoadFrom(path); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 16)
	go func() {
		_ = watch(ctx, path, 100*time.Millisecond, func(c *Config) { changes <- c })
	}()
	time.Sleep(100 * time.Millisecond)

	// A truncating writer shows the file empty, then partial, then whole.
	for _, data := range []string{"", "{", `{"language":"fr","instance_key":"abc"}`} {
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case c := <-changes:
		if c.Language != "fr" {
			t.Errorf("reloaded language = %q, want fr", c.Language)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after the config changed")
	}

	select {
	case c := <-changes:
		t.Errorf("extra reload: %+v", c)
	case <-time.After(300 * time.Millisecond):
	}
}
