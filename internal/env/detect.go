package env

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// FindJavaHome locates the Java installation the sandbox runs on. JAVA_HOME
// wins when set. On macOS /usr/libexec/java_home is consulted, asking for 11
// first since Hive 3.x is happiest there, then for whatever is available.
// Failing that, the java binary on PATH is resolved through its symlinks and
// its enclosing JDK directory is used. Returns "" when nothing is found.
func FindJavaHome() string {
	if home := os.Getenv("JAVA_HOME"); home != "" {
		return home
	}

	const javaHomeTool = "/usr/libexec/java_home"
	if _, err := os.Stat(javaHomeTool); err == nil {
		if out, err := exec.Command(javaHomeTool, "-v", "11").Output(); err == nil {
			return strings.TrimSpace(string(out))
		}
		if out, err := exec.Command(javaHomeTool).Output(); err == nil {
			return strings.TrimSpace(string(out))
		}
	}

	if javaPath, err := exec.LookPath("java"); err == nil {
		if resolved, err := filepath.EvalSymlinks(javaPath); err == nil {
			// <jdk>/bin/java, two levels up is the JDK root.
			return filepath.Dir(filepath.Dir(resolved))
		}
	}

	return ""
}

// javaVersionRe pulls the quoted version out of the java -version banner.
var javaVersionRe = regexp.MustCompile(`version "([0-9._]+)"`)

// JavaMajorVersion reports the major version of the java binary on PATH, or
// 0 when java is missing or its banner cannot be parsed. The banner goes to
// stderr and looks like one of:
//
//	openjdk version "11.0.21" 2023-10-17
//	java version "1.8.0_392"
func JavaMajorVersion() int {
	out, err := exec.Command("java", "-version").CombinedOutput()
	if err != nil {
		return 0
	}
	m := javaVersionRe.FindSubmatch(out)
	if m == nil {
		return 0
	}
	return parseJavaMajor(string(m[1]))
}

// parseJavaMajor maps a version string to its major number, honoring the
// legacy "1.x" scheme: "1.8.0_392" is 8, "11.0.21" is 11.
func parseJavaMajor(v string) int {
	parts := strings.Split(v, ".")
	pick := parts[0]
	if pick == "1" && len(parts) > 1 {
		pick = parts[1]
	}
	major, err := strconv.Atoi(pick)
	if err != nil {
		return 0
	}
	return major
}

// HasCommand reports whether name resolves on the current PATH.
func HasCommand(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
