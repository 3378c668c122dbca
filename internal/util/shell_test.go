package util

import (
	"testing"
)

func TestDeduplicatePath(t *testing.T) {
	tests := []struct {
		name     string
		fresh    []string
		existing string
		want     string
	}{
		{
			name:     "sandbox bins go first",
			fresh:    []string{"/opt/sandbox/apache-hive-3.1.3-bin/bin", "/opt/sandbox/hadoop-3.3.4/bin"},
			existing: "/usr/bin:/bin",
			want:     "/opt/sandbox/apache-hive-3.1.3-bin/bin:/opt/sandbox/hadoop-3.3.4/bin:/usr/bin:/bin",
		},
		{
			name:     "repeat run does not stack entries",
			fresh:    []string{"/opt/sandbox/apache-hive-3.1.3-bin/bin"},
			existing: "/opt/sandbox/apache-hive-3.1.3-bin/bin:/usr/bin",
			want:     "/opt/sandbox/apache-hive-3.1.3-bin/bin:/usr/bin",
		},
		{
			name:     "duplicate within existing PATH collapses",
			fresh:    nil,
			existing: "/usr/bin:/bin:/usr/bin",
			want:     "/usr/bin:/bin",
		},
		{
			name:     "empty existing PATH",
			fresh:    []string{"/opt/java/bin"},
			existing: "",
			want:     "/opt/java/bin",
		},
		{
			name:     "whitespace entries are dropped",
			fresh:    []string{" ", "/usr/local/bin"},
			existing: "/usr/bin: :/bin",
			want:     "/usr/local/bin:/usr/bin:/bin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeduplicatePath(tt.fresh, tt.existing); got != tt.want {
				t.Errorf("DeduplicatePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShellQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"warehouse", "'warehouse'"},
		{"/tmp/my state/warehouse", "'/tmp/my state/warehouse'"},
		{"it's", `'it'\''s'`},
		{"", "''"},
	}

	for _, tt := range tests {
		if got := ShellQuote(tt.in); got != tt.want {
			t.Errorf("ShellQuote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestShellEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"install dir passes through", "/opt/sandbox/apache-hive-3.1.3-bin", "/opt/sandbox/apache-hive-3.1.3-bin"},
		{"PATH list passes through", "/opt/hive/bin:/usr/bin:/bin", "/opt/hive/bin:/usr/bin:/bin"},
		{"thrift URI passes through", "thrift://localhost:9083", "thrift://localhost:9083"},
		{"space forces quoting", "/Users/dev/data platform/state", "'/Users/dev/data platform/state'"},
		{"dollar forces quoting", "$HOME/sandbox", "'$HOME/sandbox'"},
		{"semicolon forces quoting", "jdbc:derby:;databaseName=/tmp/db;create=true", "'jdbc:derby:;databaseName=/tmp/db;create=true'"},
		{"empty value gets quotes", "", "''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShellEscape(tt.in); got != tt.want {
				t.Errorf("ShellEscape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
