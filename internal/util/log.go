package util

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ANSI escape sequences for terminal output.
const (
	ansiReset    = "\033[0m"
	ansiBold     = "\033[1m"
	ansiDim      = "\033[2m"
	ansiRed      = "\033[31m"
	ansiGreen    = "\033[32m"
	ansiYellow   = "\033[33m"
	ansiBoldRed  = "\033[1;31m"
	ansiBoldCyan = "\033[1;36m"
)

var (
	stderrColor = sync.OnceValue(func() bool { return colorAllowed(os.Stderr) })
	stdoutColor = sync.OnceValue(func() bool { return colorAllowed(os.Stdout) })
)

// colorAllowed honors NO_COLOR and requires the stream to be a terminal.
func colorAllowed(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func paintErr(code, s string) string {
	if !stderrColor() {
		return s
	}
	return code + s + ansiReset
}

func paintOut(code, s string) string {
	if !stdoutColor() {
		return s
	}
	return code + s + ansiReset
}

// Log prints a progress message to stderr behind a cyan "==>" marker.
func Log(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", paintErr(ansiBoldCyan, "==>"), fmt.Sprintf(msg, args...))
}

// Success prints a green completion message to stderr.
func Success(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s\n", paintErr(ansiGreen, "==> "+fmt.Sprintf(msg, args...)))
}

// Section prints a bold phase header to stdout (e.g., "==> restart metastore").
func Section(msg string, args ...interface{}) {
	fmt.Println(paintOut(ansiBold, "==> "+fmt.Sprintf(msg, args...)))
}

// Warn prints a yellow warning to stderr.
func Warn(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s\n", paintErr(ansiYellow, "WARN: "+fmt.Sprintf(msg, args...)))
}

// Die prints an error to stderr and exits with status 1.
func Die(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s\n", paintErr(ansiBoldRed, "ERROR: "+fmt.Sprintf(msg, args...)))
	os.Exit(1)
}

// StatusTableRow is one line of the status report.
type StatusTableRow struct {
	Name   string
	Status string // display text for the status column
	Detail string // extra info (pid, port, path)
	Ok     bool   // green when true, red when false
}

// StatusTable prints rows as an aligned, colored table.
func StatusTable(rows []StatusTableRow) {
	if len(rows) == 0 {
		return
	}

	nameW, statusW := 0, 0
	for _, r := range rows {
		nameW = max(nameW, len(r.Name))
		statusW = max(statusW, len(r.Status))
	}

	for _, r := range rows {
		code := ansiGreen
		if !r.Ok {
			code = ansiRed
		}
		// Pad before colorizing so ANSI bytes don't break alignment.
		status := paintOut(code, fmt.Sprintf("%-*s", statusW, r.Status))
		detail := ""
		if r.Detail != "" {
			detail = paintOut(ansiDim, r.Detail)
		}
		fmt.Printf("  %-*s  %s  %s\n", nameW, r.Name, status, detail)
	}
}
