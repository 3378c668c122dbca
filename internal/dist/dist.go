// Package dist resolves and installs the Apache distributions the sandbox
// runs on.
package dist

import (
	"fmt"
	"path/filepath"
)

// Distribution describes a downloadable Apache distribution: where it comes
// from and where it lands. Values are resolved once and never mutated.
type Distribution struct {
	Name       string
	Version    string
	URL        string
	Archive    string
	InstallDir string
}

// Hadoop returns the Hadoop distribution descriptor for the given version,
// installed under installRoot.
func Hadoop(version, installRoot string) Distribution {
	archive := fmt.Sprintf("hadoop-%s.tar.gz", version)
	return Distribution{
		Name:       "hadoop",
		Version:    version,
		URL:        fmt.Sprintf("https://archive.apache.org/dist/hadoop/common/hadoop-%s/%s", version, archive),
		Archive:    archive,
		InstallDir: filepath.Join(installRoot, "hadoop-"+version),
	}
}

// Hive returns the Hive distribution descriptor for the given version,
// installed under installRoot.
func Hive(version, installRoot string) Distribution {
	archive := fmt.Sprintf("apache-hive-%s-bin.tar.gz", version)
	return Distribution{
		Name:       "hive",
		Version:    version,
		URL:        fmt.Sprintf("https://archive.apache.org/dist/hive/hive-%s/%s", version, archive),
		Archive:    archive,
		InstallDir: filepath.Join(installRoot, fmt.Sprintf("apache-hive-%s-bin", version)),
	}
}

// Spark returns the Spark distribution descriptor for the given version,
// installed under installRoot. Only the hadoop3 binary build is supported.
func Spark(version, installRoot string) Distribution {
	archive := fmt.Sprintf("spark-%s-bin-hadoop3.tgz", version)
	return Distribution{
		Name:       "spark",
		Version:    version,
		URL:        fmt.Sprintf("https://archive.apache.org/dist/spark/spark-%s/%s", version, archive),
		Archive:    archive,
		InstallDir: filepath.Join(installRoot, fmt.Sprintf("spark-%s-bin-hadoop3", version)),
	}
}

// ArchivePath returns where the downloaded archive is staged before
// extraction.
func (d Distribution) ArchivePath() string {
	return filepath.Join(filepath.Dir(d.InstallDir), d.Archive)
}

// IcebergJarURL returns the Maven Central URL of an Iceberg Spark runtime
// artifact.
func IcebergJarURL(artifact, version string) string {
	return fmt.Sprintf("https://repo1.maven.org/maven2/org/apache/iceberg/%s/%s/%s-%s.jar", artifact, version, artifact, version)
}
