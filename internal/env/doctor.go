package env

import (
	"fmt"

	"github.com/danieljhkim/hms-sandbox/internal/util"
)

// HostCheck records one probed host dependency.
type HostCheck struct {
	Name     string
	Required bool
	Found    bool
}

// DoctorResult aggregates the host probe.
type DoctorResult struct {
	Checks      []HostCheck
	JavaMajor   int  // 0 when java is missing
	HasFailures bool // true when a required tool is absent
}

// RunDoctor probes the host for the tools the sandbox leans on. Java is the
// one hard requirement; lsof and tar only improve diagnostics (listener
// discovery degrades without lsof, archive extraction is native).
func RunDoctor() *DoctorResult {
	result := &DoctorResult{}

	probe := func(name string, required bool) {
		found := HasCommand(name)
		result.Checks = append(result.Checks, HostCheck{Name: name, Required: required, Found: found})
		if required && !found {
			result.HasFailures = true
		}
	}

	probe("java", true)
	probe("lsof", false)
	probe("tar", false)

	if HasCommand("java") {
		result.JavaMajor = JavaMajorVersion()
	}

	return result
}

// Print writes the probe outcome to stdout, one line per check.
func (dr *DoctorResult) Print() {
	util.Log("Doctor:")

	for _, check := range dr.Checks {
		switch {
		case check.Found:
			fmt.Printf("  %-4s %s\n", "OK", check.Name)
		case check.Required:
			fmt.Printf("  %-4s %s (required)\n", "FAIL", check.Name)
		default:
			fmt.Printf("  %-4s %s (optional)\n", "WARN", check.Name)
		}
	}

	if dr.JavaMajor > 11 {
		fmt.Printf("  WARN java major version is %d (Hive 3.x runs best on 8 or 11)\n", dr.JavaMajor)
		fmt.Printf("       Fix: install Java 11 and set JAVA_HOME\n")
	}
}

// ExitCode is 0 when every required tool is present, 1 otherwise.
func (dr *DoctorResult) ExitCode() int {
	if dr.HasFailures {
		return 1
	}
	return 0
}
