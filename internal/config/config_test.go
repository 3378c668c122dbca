package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearVersionEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"HIVE_VERSION", "HADOOP_VERSION", "SPARK_VERSION", "ICEBERG_VERSION"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	baseDir := t.TempDir()
	t.Setenv("HMS_SANDBOX_HOME", baseDir)
	clearVersionEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Paths.BaseDir != baseDir {
		t.Errorf("BaseDir = %q, want %q", cfg.Paths.BaseDir, baseDir)
	}
	if cfg.InstallRoot != baseDir {
		t.Errorf("InstallRoot = %q, want %q", cfg.InstallRoot, baseDir)
	}
	if cfg.HiveVersion != DefaultHiveVersion {
		t.Errorf("HiveVersion = %q, want %q", cfg.HiveVersion, DefaultHiveVersion)
	}
	if cfg.HadoopVersion != DefaultHadoopVersion {
		t.Errorf("HadoopVersion = %q, want %q", cfg.HadoopVersion, DefaultHadoopVersion)
	}
	if cfg.IcebergVersion != DefaultIcebergVersion {
		t.Errorf("IcebergVersion = %q, want %q", cfg.IcebergVersion, DefaultIcebergVersion)
	}
	if cfg.SparkVersion != "" {
		t.Errorf("SparkVersion = %q, want empty", cfg.SparkVersion)
	}
}

func TestLoad_EnvOverridesSettings(t *testing.T) {
	baseDir := t.TempDir()
	t.Setenv("HMS_SANDBOX_HOME", baseDir)
	clearVersionEnv(t)
	t.Setenv("HIVE_VERSION", "2.3.9")

	settings := "hive-version: 3.1.2\nspark-version: 3.4.0\n"
	if err := os.WriteFile(filepath.Join(baseDir, "settings.yaml"), []byte(settings), 0644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.HiveVersion != "2.3.9" {
		t.Errorf("HiveVersion = %q, want env override %q", cfg.HiveVersion, "2.3.9")
	}
	if cfg.SparkVersion != "3.4.0" {
		t.Errorf("SparkVersion = %q, want settings value %q", cfg.SparkVersion, "3.4.0")
	}
}

func TestLoad_SettingsInstallRoot(t *testing.T) {
	baseDir := t.TempDir()
	installRoot := t.TempDir()
	t.Setenv("HMS_SANDBOX_HOME", baseDir)
	clearVersionEnv(t)

	settings := "install-root: " + installRoot + "\n"
	if err := os.WriteFile(filepath.Join(baseDir, "settings.yaml"), []byte(settings), 0644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.InstallRoot != installRoot {
		t.Errorf("InstallRoot = %q, want %q", cfg.InstallRoot, installRoot)
	}
	if cfg.Paths.BaseDir != baseDir {
		t.Errorf("BaseDir = %q, want %q (install-root must not move state)", cfg.Paths.BaseDir, baseDir)
	}
}

func TestSparkMajorMinor(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"3.5.1", "3.5"},
		{"3.4.0", "3.4"},
		{"3.5", "3.5"},
		{"3", "3"},
		{"", ""},
		{"3.5.1.2", "3.5"},
	}

	for _, tt := range tests {
		cfg := &Config{SparkVersion: tt.version}
		if got := cfg.SparkMajorMinor(); got != tt.want {
			t.Errorf("SparkMajorMinor(%q) = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestIcebergArtifact(t *testing.T) {
	cfg := &Config{SparkVersion: "3.5.1"}

	want := "iceberg-spark-runtime-3.5_2.12"
	if got := cfg.IcebergArtifact(); got != want {
		t.Errorf("IcebergArtifact() = %q, want %q", got, want)
	}
}

func TestRequireSpark(t *testing.T) {
	cfg := &Config{}
	if err := cfg.RequireSpark(); err == nil {
		t.Errorf("RequireSpark() expected error when no version is pinned")
	}

	cfg.SparkVersion = "3.5.1"
	if err := cfg.RequireSpark(); err != nil {
		t.Errorf("RequireSpark() error: %v", err)
	}
}
