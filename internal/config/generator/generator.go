package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/hms-sandbox/internal/config/schema"
	"github.com/danieljhkim/hms-sandbox/internal/util"
)

// WriteSiteXML writes properties as a Hadoop-style *-site.xml file,
// preserving their order.
func WriteSiteXML(props []schema.Property, path string) error {
	site := &util.SiteFile{}
	for _, p := range props {
		site.Put(p.Name, p.Value)
	}
	return site.Write(path)
}

// WriteHiveSite writes hive-site.xml at path, replacing any previous
// contents. Fresh Hive distributions ship no hive-site.xml, so a plain
// overwrite is safe.
func WriteHiveSite(props []schema.Property, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := WriteSiteXML(props, path); err != nil {
		return fmt.Errorf("hive-site.xml: %w", err)
	}
	return nil
}

// AppendIcebergCatalog rewrites spark-defaults.conf so the catalog block is
// the only active configuration: every pre-existing line is commented out
// (deactivated, never deleted) and the block is appended behind a sentinel.
// When the sentinel is already present the file is left untouched and false
// is returned.
func AppendIcebergCatalog(confPath string, props []schema.Property) (bool, error) {
	content, err := readOrSeedSparkConf(confPath)
	if err != nil {
		return false, err
	}
	if strings.Contains(content, schema.IcebergSentinel) {
		return false, nil
	}

	var b strings.Builder
	if content != "" {
		for _, line := range strings.Split(strings.TrimSuffix(content, "\n"), "\n") {
			b.WriteString("# ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(schema.IcebergSentinel)
	b.WriteString("\n")
	for _, p := range props {
		fmt.Fprintf(&b, "%s %s\n", p.Name, p.Value)
	}

	if err := os.WriteFile(confPath, []byte(b.String()), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", filepath.Base(confPath), err)
	}
	return true, nil
}

// IcebergConfigured reports whether spark-defaults.conf already carries the
// catalog block.
func IcebergConfigured(confPath string) bool {
	data, err := os.ReadFile(confPath)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), schema.IcebergSentinel)
}

// readOrSeedSparkConf returns the current contents of spark-defaults.conf.
// Fresh Spark distributions ship only spark-defaults.conf.template, so a
// missing conf falls back to the template; missing both means empty.
func readOrSeedSparkConf(confPath string) (string, error) {
	data, err := os.ReadFile(confPath)
	if err == nil {
		return string(data), nil
	}
	if !os.IsNotExist(err) {
		return "", err
	}

	template, err := os.ReadFile(confPath + ".template")
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(template), nil
}
