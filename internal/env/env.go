package env

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/hms-sandbox/internal/config"
	"github.com/danieljhkim/hms-sandbox/internal/dist"
	"github.com/danieljhkim/hms-sandbox/internal/util"
)

// Environment holds the computed variables every managed process runs with
type Environment struct {
	JavaHome   string
	HadoopHome string
	HiveHome   string
	SparkHome  string

	Path string
}

// Compute derives the environment from the resolved configuration. The
// Hadoop, Hive and Spark homes point into the sandbox's own installs
// whether or not those exist yet; only Java is detected from the host.
func Compute(cfg *config.Config) *Environment {
	e := &Environment{
		JavaHome:   FindJavaHome(),
		HadoopHome: dist.Hadoop(cfg.HadoopVersion, cfg.InstallRoot).InstallDir,
		HiveHome:   dist.Hive(cfg.HiveVersion, cfg.InstallRoot).InstallDir,
	}
	if cfg.SparkVersion != "" {
		e.SparkHome = dist.Spark(cfg.SparkVersion, cfg.InstallRoot).InstallDir
	}
	e.Path = buildPath(e)
	return e
}

// buildPath constructs the PATH environment variable. New parts are placed
// ahead of the existing PATH so sandbox binaries win.
func buildPath(e *Environment) string {
	var newParts []string

	if e.JavaHome != "" {
		newParts = append(newParts, filepath.Join(e.JavaHome, "bin"))
	}
	newParts = append(newParts,
		filepath.Join(e.HadoopHome, "bin"),
		filepath.Join(e.HiveHome, "bin"),
	)
	if e.SparkHome != "" {
		newParts = append(newParts, filepath.Join(e.SparkHome, "bin"))
	}

	return util.DeduplicatePath(newParts, os.Getenv("PATH"))
}

// Export returns environment variables as []string for exec.Cmd.Env
func (e *Environment) Export() []string {
	var exports []string

	add := func(name, value string) {
		if value != "" {
			exports = append(exports, name+"="+value)
		}
	}

	add("JAVA_HOME", e.JavaHome)
	add("HADOOP_HOME", e.HadoopHome)
	add("HIVE_HOME", e.HiveHome)
	add("SPARK_HOME", e.SparkHome)
	add("PATH", e.Path)

	return exports
}

// PrintShell prints shell export statements, suitable for
// eval "$(hms-sandbox env)".
func (e *Environment) PrintShell() {
	emit := func(name, value string) {
		if value != "" {
			fmt.Printf("export %s=%s\n", name, util.ShellEscape(value))
		}
	}

	emit("JAVA_HOME", e.JavaHome)
	emit("HADOOP_HOME", e.HadoopHome)
	emit("HIVE_HOME", e.HiveHome)
	emit("SPARK_HOME", e.SparkHome)
	emit("PATH", e.Path)
}

// MergeWithCurrent merges this environment with the current process environment
// Returns a complete environment suitable for exec.Cmd.Env
func (e *Environment) MergeWithCurrent() []string {
	envMap := make(map[string]string)
	for _, entry := range os.Environ() {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) == 2 {
			envMap[parts[0]] = parts[1]
		}
	}

	// Override with the computed environment
	for _, entry := range e.Export() {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) == 2 {
			envMap[parts[0]] = parts[1]
		}
	}

	var result []string
	for key, value := range envMap {
		result = append(result, key+"="+value)
	}

	return result
}
