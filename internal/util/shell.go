package util

import (
	"regexp"
	"strings"
)

// DeduplicatePath builds a PATH string from the given bin directories and
// the caller's existing PATH, dropping repeats. The new entries go first so
// provisioned binaries shadow any system installs of the same tools.
func DeduplicatePath(newParts []string, existingPath string) string {
	seen := make(map[string]bool)
	var out []string

	add := func(p string) {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		out = append(out, p)
	}

	for _, p := range newParts {
		add(p)
	}
	for _, p := range strings.Split(existingPath, ":") {
		add(p)
	}

	return strings.Join(out, ":")
}

// ShellQuote single-quotes s for the shell, escaping embedded quotes.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// shellSafe matches values that may appear unquoted in an export statement.
// The set is deliberately narrow; anything outside it gets quoted.
var shellSafe = regexp.MustCompile(`^[a-zA-Z0-9_./:=@%+,-]+$`)

// ShellEscape returns s in a form safe to paste after "export NAME=".
// Plain paths and PATH-style lists pass through untouched.
func ShellEscape(s string) string {
	if shellSafe.MatchString(s) {
		return s
	}
	return ShellQuote(s)
}
