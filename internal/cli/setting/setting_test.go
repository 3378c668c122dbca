package setting

import (
	"bytes"
	"strings"
	"testing"

	"github.com/danieljhkim/hms-sandbox/internal/config"
)

func executeCommand(t *testing.T, cmdArgs ...string) (string, error) {
	t.Helper()

	cfg := &config.Config{Paths: config.NewPaths(t.TempDir())}

	cmd := NewSettingCmd(func() *config.Config { return cfg })
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(cmdArgs)

	err := cmd.Execute()
	return buf.String(), err
}

func TestSettingList_PrintsAllConfigurableKeys(t *testing.T) {
	out, err := executeCommand(t, "list")
	if err != nil {
		t.Fatalf("setting list returned error: %v", err)
	}

	keys := []string{"install-root=", "hive-version=", "hadoop-version=", "spark-version=", "iceberg-version="}
	for _, key := range keys {
		if !strings.Contains(out, key) {
			t.Fatalf("output missing %s key:\n%s", key, out)
		}
	}
}

func TestSettingSet_UpdatesValueInSettingsFile(t *testing.T) {
	cfg := &config.Config{Paths: config.NewPaths(t.TempDir())}
	cmd := NewSettingCmd(func() *config.Config { return cfg })
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"set", "spark-version", "3.5.1"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("setting set returned error: %v", err)
	}

	settings, err := config.NewSettingsManager(cfg.Paths).Load()
	if err != nil {
		t.Fatalf("failed to load settings: %v", err)
	}

	if settings.SparkVersion != "3.5.1" {
		t.Fatalf("SparkVersion = %q, want %q", settings.SparkVersion, "3.5.1")
	}
	if !strings.Contains(out.String(), "Updated spark-version in ") {
		t.Fatalf("expected update confirmation, got: %s", out.String())
	}
}

func TestSettingSet_PreservesOtherKeys(t *testing.T) {
	cfg := &config.Config{Paths: config.NewPaths(t.TempDir())}
	sm := config.NewSettingsManager(cfg.Paths)
	if err := sm.Save(&config.Settings{HiveVersion: "3.1.2"}); err != nil {
		t.Fatalf("failed to seed settings: %v", err)
	}

	cmd := NewSettingCmd(func() *config.Config { return cfg })
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"set", "hadoop-version", "3.3.6"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("setting set returned error: %v", err)
	}

	settings, err := sm.Load()
	if err != nil {
		t.Fatalf("failed to load settings: %v", err)
	}
	if settings.HiveVersion != "3.1.2" {
		t.Fatalf("HiveVersion = %q, want %q", settings.HiveVersion, "3.1.2")
	}
	if settings.HadoopVersion != "3.3.6" {
		t.Fatalf("HadoopVersion = %q, want %q", settings.HadoopVersion, "3.3.6")
	}
}

func TestSettingSet_RejectsUnknownKey(t *testing.T) {
	_, err := executeCommand(t, "set", "unknown", "value")
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "unknown setting key") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSettingListAfterSet_RoundTrips(t *testing.T) {
	cfg := &config.Config{Paths: config.NewPaths(t.TempDir())}
	getter := func() *config.Config { return cfg }

	set := NewSettingCmd(getter)
	set.SetOut(&bytes.Buffer{})
	set.SetErr(&bytes.Buffer{})
	set.SetArgs([]string{"set", "iceberg-version", "1.5.0"})
	if err := set.Execute(); err != nil {
		t.Fatalf("setting set returned error: %v", err)
	}

	list := NewSettingCmd(getter)
	buf := &bytes.Buffer{}
	list.SetOut(buf)
	list.SetErr(buf)
	list.SetArgs([]string{"list"})
	if err := list.Execute(); err != nil {
		t.Fatalf("setting list returned error: %v", err)
	}

	if !strings.Contains(buf.String(), "iceberg-version=1.5.0") {
		t.Fatalf("expected persisted value in list output:\n%s", buf.String())
	}
}
