package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Default component versions, used when neither the environment nor the
// settings file pins one. Spark has no default: the Spark integration is
// opt-in and must be pinned explicitly.
const (
	DefaultHiveVersion    = "3.1.3"
	DefaultHadoopVersion  = "3.3.4"
	DefaultIcebergVersion = "1.4.3"

	// ScalaBinary is the Scala binary version the Iceberg Spark runtime
	// artifacts are published against.
	ScalaBinary = "2.12"
)

// Config is the fully resolved sandbox configuration. It is populated once
// at startup; nothing downstream consults the environment again.
type Config struct {
	Paths *Paths

	// InstallRoot is the directory distributions are unpacked into.
	InstallRoot string

	HiveVersion    string
	HadoopVersion  string
	IcebergVersion string

	// SparkVersion is empty unless the user pinned one.
	SparkVersion string
}

// Load resolves the configuration from the process environment, optional
// .env files in the working directory, and the persisted settings file,
// in that order of precedence, falling back to built-in defaults.
func Load() (*Config, error) {
	loadEnvFiles()

	paths := NewPaths(strings.TrimSpace(os.Getenv("HMS_SANDBOX_HOME")))
	settings, err := NewSettingsManager(paths).Load()
	if err != nil {
		return nil, err
	}

	installRoot := settings.InstallRoot
	if installRoot == "" {
		installRoot = paths.BaseDir
	}

	return &Config{
		Paths:          paths,
		InstallRoot:    installRoot,
		HiveVersion:    resolveVersion("HIVE_VERSION", settings.HiveVersion, DefaultHiveVersion),
		HadoopVersion:  resolveVersion("HADOOP_VERSION", settings.HadoopVersion, DefaultHadoopVersion),
		IcebergVersion: resolveVersion("ICEBERG_VERSION", settings.IcebergVersion, DefaultIcebergVersion),
		SparkVersion:   resolveVersion("SPARK_VERSION", settings.SparkVersion, ""),
	}, nil
}

// loadEnvFiles loads optional env files into the process environment.
// Variables already exported always win; .env.local wins over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

func resolveVersion(envKey, settingsValue, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	if settingsValue != "" {
		return settingsValue
	}
	return fallback
}

// RequireSpark fails when no Spark version is pinned. Callers must check
// this before touching any Spark-related work so nothing is downloaded for
// a doomed run.
func (c *Config) RequireSpark() error {
	if c.SparkVersion == "" {
		return fmt.Errorf("SPARK_VERSION is not set; pin one via the environment or 'hms-sandbox setting set spark-version <version>'")
	}
	return nil
}

// SparkMajorMinor returns the text before the second dot of the Spark
// version ("3.5.1" -> "3.5"). Versions with fewer than two dots are
// returned as-is.
func (c *Config) SparkMajorMinor() string {
	parts := strings.SplitN(c.SparkVersion, ".", 3)
	if len(parts) < 2 {
		return c.SparkVersion
	}
	return parts[0] + "." + parts[1]
}

// IcebergArtifact returns the Maven artifact name of the Iceberg Spark
// runtime matching the pinned Spark version.
func (c *Config) IcebergArtifact() string {
	return fmt.Sprintf("iceberg-spark-runtime-%s_%s", c.SparkMajorMinor(), ScalaBinary)
}
