package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partscout.yaml")
	writeFile(t, path, "ui:\n  examples: [\"A1\"]\n")

	changes := make(chan *Config, 4)
	w, err := Watch(newIsolatedLoader(t), path, path, func(cfg *Config) { changes <- cfg }, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	writeFile(t, path, "ui:\n  examples: [\"B2\", \"C3\"]\n")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changes:
			if len(cfg.UI.Examples) == 2 && cfg.UI.Examples[0] == "B2" {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatchReportsInvalidReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partscout.yaml")
	writeFile(t, path, "ui:\n  examples: [\"A1\"]\n")

	errs := make(chan error, 4)
	w, err := Watch(newIsolatedLoader(t), path, path, nil, func(err error) { errs <- err })
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	writeFile(t, path, "ui:\n  examples: []\n")

	select {
	case <-errs:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}
}

func TestWatchRequiresPath(t *testing.T) {
	if _, err := Watch(NewLoader(), "", "", nil, nil); err == nil {
		t.Fatal("Expected error for empty path")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	w, err := Watch(newIsolatedLoader(t), "", filepath.Join(t.TempDir(), "x.yaml"), nil, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	w.Close()
	w.Close()
}

func TestWatchReloadKeepsSearchPathLayers(t *testing.T) {
	dir := t.TempDir()
	high := filepath.Join(dir, "high.yaml")
	low := filepath.Join(dir, "low.yaml")
	writeFile(t, low, "log:\n  file: low.log\n")
	writeFile(t, high, "ui:\n  examples: [\"A1\"]\n")

	loader := &Loader{configPaths: []string{high, low}}
	_, source, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	changes := make(chan *Config, 4)
	w, err := Watch(loader, "", source, func(cfg *Config) { changes <- cfg }, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	writeFile(t, high, "ui:\n  examples: [\"B2\"]\n")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changes:
			if len(cfg.UI.Examples) != 1 || cfg.UI.Examples[0] != "B2" {
				continue
			}
			if cfg.Log.File != "low.log" {
				t.Fatalf("reload dropped the lower priority layer: log.file=%q", cfg.Log.File)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}
