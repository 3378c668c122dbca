package config

import (
	"os"
	"path/filepath"
	"testing"
)

func testSettingsManager(t *testing.T) *SettingsManager {
	t.Helper()
	return NewSettingsManager(NewPaths(t.TempDir()))
}

func TestSettingsManager_Path(t *testing.T) {
	baseDir := t.TempDir()
	sm := NewSettingsManager(NewPaths(baseDir))

	if got, want := sm.Path(), filepath.Join(baseDir, "settings.yaml"); got != want {
		t.Fatalf("Path() = %q, want %q", got, want)
	}
}

func TestSettingsManager_Load_MissingFile(t *testing.T) {
	sm := testSettingsManager(t)

	got, err := sm.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *got != (Settings{}) {
		t.Errorf("Load() = %+v, want empty settings so defaults apply", *got)
	}
}

func TestSettingsManager_SaveAndLoad(t *testing.T) {
	sm := testSettingsManager(t)

	want := &Settings{
		InstallRoot:    "/opt/hms-sandbox",
		HiveVersion:    "3.1.2",
		HadoopVersion:  "3.3.6",
		SparkVersion:   "3.5.1",
		IcebergVersion: "1.5.0",
	}
	if err := sm.Save(want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := sm.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *got != *want {
		t.Fatalf("Load() = %+v, want %+v", *got, *want)
	}
}

func TestSettingsManager_Load_TrimsWhitespace(t *testing.T) {
	sm := testSettingsManager(t)

	raw := "hive-version: \" 3.1.3 \"\nspark-version: \"3.5.1\"\n"
	if err := os.WriteFile(sm.Path(), []byte(raw), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := sm.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.HiveVersion != "3.1.3" {
		t.Errorf("HiveVersion = %q, want padding stripped", got.HiveVersion)
	}
	if got.SparkVersion != "3.5.1" {
		t.Errorf("SparkVersion = %q, want %q", got.SparkVersion, "3.5.1")
	}
}

func TestSettingsManager_Load_InvalidYAML(t *testing.T) {
	sm := testSettingsManager(t)

	if err := os.WriteFile(sm.Path(), []byte("hive-version: [unclosed"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := sm.Load(); err == nil {
		t.Fatal("Load() expected error for invalid YAML")
	}
}
